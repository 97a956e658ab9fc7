// internal/app/system/auditlog/logger.go

// Package auditlog records group mutations to structured logs and/or the
// audit_events collection, controlled by configuration. Audit recording
// is best-effort: a failed audit write is logged but never fails the
// mutation it describes.
package auditlog

import (
	"context"

	"github.com/google/uuid"
	"github.com/lbertrand/familyserve/internal/app/store/audit"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Modes for the audit_log config key.
const (
	ModeAll = "all" // MongoDB + zap
	ModeDB  = "db"  // MongoDB only
	ModeLog = "log" // zap only
	ModeOff = "off" // disabled
)

// Logger writes audit events. A nil *Logger is a no-op, which lets tests
// construct services without audit wiring.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	mode   string
}

func New(store *audit.Store, zapLog *zap.Logger, mode string) *Logger {
	return &Logger{store: store, zapLog: zapLog, mode: mode}
}

// Record logs one mutation event. The event ID is assigned here.
func (l *Logger) Record(ctx context.Context, action string, groupID primitive.ObjectID, memberID *primitive.ObjectID, success bool, detail string) {
	if l == nil || l.mode == ModeOff {
		return
	}

	e := audit.Event{
		EventID:  uuid.NewString(),
		Action:   action,
		GroupID:  groupID,
		MemberID: memberID,
		Success:  success,
		Detail:   detail,
	}

	if l.mode == ModeAll || l.mode == ModeLog {
		fields := []zap.Field{
			zap.Bool("audit", true),
			zap.String("event_id", e.EventID),
			zap.String("action", e.Action),
			zap.String("group_id", e.GroupID.Hex()),
			zap.Bool("success", e.Success),
		}
		if e.MemberID != nil {
			fields = append(fields, zap.String("member_id", e.MemberID.Hex()))
		}
		if e.Detail != "" {
			fields = append(fields, zap.String("detail", e.Detail))
		}
		if e.Success {
			l.zapLog.Info("audit event", fields...)
		} else {
			l.zapLog.Warn("audit event", fields...)
		}
	}

	if (l.mode == ModeAll || l.mode == ModeDB) && l.store != nil {
		if err := l.store.Insert(ctx, e); err != nil {
			l.zapLog.Warn("audit insert failed", zap.String("action", action), zap.Error(err))
		}
	}
}
