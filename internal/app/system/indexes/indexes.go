// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Errors are aggregated so every problem is visible and startup can fail
fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureGroups(ctx, db); err != nil {
		problems = append(problems, "groups: "+err.Error())
	}
	if err := ensureAuditEvents(ctx, db); err != nil {
		problems = append(problems, "audit_events: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureGroups(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("groups")
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// Unique on the folded shadow so "My Family" and "my family"
			// collide regardless of the lookup collation setting.
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetName("uniq_name_ci").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "members.first_name", Value: 1},
				{Key: "members.last_name", Value: 1},
			},
			Options: options.Index().SetName("members_name"),
		},
	})
	return err
}

func ensureAuditEvents(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("audit_events")
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "group_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("group_created"),
		},
	})
	return err
}
