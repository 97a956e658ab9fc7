// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates collections (if missing) and attaches JSON-Schema
// validators. On servers that don't support collMod/validators (e.g.
// some DocumentDB versions), we log and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if isNoSuchCommand(err) || isNotImplemented(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("groups", groupsSchema())
	ensure("audit_events", nil)

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// groupsSchema mirrors the domain invariants that must hold for every
// stored aggregate: a non-empty name, a members array whose elements
// carry the required attributes, and a dietary profile on each member.
// numberOfPeople is absent because it is never stored.
func groupsSchema() bson.M {
	enum := func(vals ...string) bson.M { return bson.M{"enum": vals} }

	restriction := bson.M{
		"bsonType": "object",
		"required": bson.A{"_id", "type", "reason"},
		"properties": bson.M{
			"_id":    bson.M{"bsonType": "objectId"},
			"type":   enum("FORBIDDEN", "REDUCED"),
			"reason": bson.M{"bsonType": "string", "minLength": 1},
			"notes":  bson.M{"bsonType": "string"},
		},
	}

	dietaryProfile := bson.M{
		"bsonType": "object",
		"required": bson.A{"preferences", "allergies", "restrictions"},
		"properties": bson.M{
			"preferences": bson.M{
				"bsonType": "object",
				"required": bson.A{"likes", "dislikes"},
				"properties": bson.M{
					"likes":    bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
					"dislikes": bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
				},
			},
			"allergies":    bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
			"restrictions": bson.M{"bsonType": "array", "items": restriction},
			"health_notes": bson.M{"bsonType": "string"},
		},
	}

	member := bson.M{
		"bsonType": "object",
		"required": bson.A{"_id", "role", "first_name", "last_name", "age", "gender", "dietary_profile"},
		"properties": bson.M{
			"_id":             bson.M{"bsonType": "objectId"},
			"role":            enum("ADMIN", "MEMBER"),
			"first_name":      bson.M{"bsonType": "string", "minLength": 1},
			"last_name":       bson.M{"bsonType": "string", "minLength": 1},
			"age":             bson.M{"bsonType": "int", "minimum": 0},
			"gender":          enum("MALE", "FEMALE"),
			"weight_kg":       bson.M{"bsonType": "double", "exclusiveMinimum": 0},
			"height_cm":       bson.M{"bsonType": "double", "exclusiveMinimum": 0},
			"activity_level":  enum("SEDENTARY", "LIGHTLY_ACTIVE", "MODERATELY_ACTIVE", "VERY_ACTIVE"),
			"dietary_profile": dietaryProfile,
			"meal_frequency":  bson.M{"bsonType": "int", "minimum": 1, "maximum": 10},
		},
	}

	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "name_ci", "members", "created_at", "updated_at"},
			"properties": bson.M{
				"name":       bson.M{"bsonType": "string", "minLength": 1, "maxLength": 200},
				"name_ci":    bson.M{"bsonType": "string", "minLength": 1},
				"members":    bson.M{"bsonType": "array", "items": member},
				"created_at": bson.M{"bsonType": "date"},
				"updated_at": bson.M{"bsonType": "date"},
			},
		},
	}
}

/* ---------------------- collection helpers & logging ---------------------- */

func ensureCollection(ctx context.Context, db *mongo.Database, name string) error {
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExistsErr(err) {
			return nil
		}
		return err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && strings.Contains(strings.ToLower(ce.Message), "not implemented") {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "not implemented")
}
