// internal/app/store/audit/store.go
package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Event is one recorded mutation against a group aggregate.
type Event struct {
	EventID   string              `bson:"event_id" json:"eventId"`
	Action    string              `bson:"action" json:"action"`
	GroupID   primitive.ObjectID  `bson:"group_id" json:"groupId"`
	MemberID  *primitive.ObjectID `bson:"member_id,omitempty" json:"memberId,omitempty"`
	Success   bool                `bson:"success" json:"success"`
	Detail    string              `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"createdAt"`
}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("audit_events")}
}

// Insert records one event. The caller fills EventID; CreatedAt is
// stamped here if unset.
func (s *Store) Insert(ctx context.Context, e Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, e)
	return err
}

// RecentByGroup returns the newest events for one group, newest first.
func (s *Store) RecentByGroup(ctx context.Context, groupID primitive.ObjectID, limit int64) ([]Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{"group_id": groupID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []Event
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
