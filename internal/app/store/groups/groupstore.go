// internal/app/store/groups/groupstore.go

// Package groupstore is the aggregate mutation engine for the groups
// collection. Every mutation is expressed as exactly one atomic store
// operation (insert, set, push or pull) scoped to the fields being
// changed, so concurrent mutations on disjoint fields of the same group
// never lose updates. Concurrent writes to the *same* leaf field race at
// last-write-wins granularity; that is an accepted, documented property,
// not something the engine masks.
//
// A missing group or member surfaces as mongo.ErrNoDocuments. Store
// connectivity/timeout errors propagate unmodified; the engine never
// retries or swallows them.
package groupstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lbertrand/familyserve/internal/app/system/collation"
	"github.com/lbertrand/familyserve/internal/domain/models"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrEmptyName     = errors.New("group name must not be empty")
	ErrDuplicateName = errors.New("a group with this name already exists")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("groups")}
}

// Create inserts a new group with no members. Full name validation is
// the caller's job; only the empty-name check is repeated here so an
// unnamed aggregate can never reach the collection.
func (s *Store) Create(ctx context.Context, name string) (models.Group, error) {
	if strings.TrimSpace(name) == "" {
		return models.Group{}, ErrEmptyName
	}

	now := time.Now().UTC()
	g := models.Group{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Members:   []models.MemberProfile{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.c.InsertOne(ctx, g); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Group{}, ErrDuplicateName
		}
		return models.Group{}, err
	}
	return g, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// List returns all groups ordered by folded name.
func (s *Store) List(ctx context.Context) ([]models.Group, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Group
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByName looks up a group by exact name equality. When the collation
// configuration is enabled the comparison is locale-aware at the
// configured strength (strength 2 means case-insensitive); otherwise it
// is the store default, byte-exact.
func (s *Store) FindByName(ctx context.Context, name string) (models.Group, error) {
	opts := options.FindOne()
	if col := collation.NameSearch(); col != nil {
		opts.SetCollation(col)
	}

	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"name": name}, opts).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// Delete removes a group document. Members have no independent
// existence, so deleting the aggregate is the cascade. Returns the
// number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
