package auditlog

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestRecord_NilLoggerIsNoOp(t *testing.T) {
	var l *Logger
	// Must not panic.
	l.Record(context.Background(), "group.create", primitive.NewObjectID(), nil, true, "")
}

func TestRecord_OffModeIsNoOp(t *testing.T) {
	l := New(nil, zap.NewNop(), ModeOff)
	l.Record(context.Background(), "group.create", primitive.NewObjectID(), nil, true, "")
}

func TestRecord_LogMode(t *testing.T) {
	l := New(nil, zap.NewNop(), ModeLog)
	memberID := primitive.NewObjectID()
	l.Record(context.Background(), "member.update", primitive.NewObjectID(), &memberID, false, "validation rejected")
}
