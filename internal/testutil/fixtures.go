package testutil

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	groupstore "github.com/lbertrand/familyserve/internal/app/store/groups"
	"github.com/lbertrand/familyserve/internal/domain/models"
)

// Fixtures seeds test data through the same store code the application
// uses, so fixtures and production writes can never drift apart.
type Fixtures struct {
	t     *testing.T
	Store *groupstore.Store
}

func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{t: t, Store: groupstore.New(db)}
}

// CreateGroup creates an empty group and fails the test on error.
func (f *Fixtures) CreateGroup(ctx context.Context, name string) models.Group {
	f.t.Helper()
	g, err := f.Store.Create(ctx, name)
	if err != nil {
		f.t.Fatalf("create group %q: %v", name, err)
	}
	return g
}

// AddMember appends a member to the group and returns the group as
// persisted after the push.
func (f *Fixtures) AddMember(ctx context.Context, g models.Group, m models.MemberProfile) models.Group {
	f.t.Helper()
	out, err := f.Store.AddMember(ctx, g.ID, m)
	if err != nil {
		f.t.Fatalf("add member to group %q: %v", g.Name, err)
	}
	return out
}

// SampleMember returns a plausible adult member with an empty dietary
// profile. Tests tweak fields as needed.
func SampleMember(first, last string) models.MemberProfile {
	return models.MemberProfile{
		Role:      models.RoleMember,
		FirstName: first,
		LastName:  last,
		Age:       34,
		Gender:    models.GenderFemale,
		DietaryProfile: models.DietaryProfile{
			Preferences: models.Preferences{
				Likes:    []string{},
				Dislikes: []string{},
			},
			Allergies:    []string{},
			Restrictions: []models.Restriction{},
		},
	}
}

// SampleRestriction returns a FORBIDDEN restriction for the given
// reason with no ID. The store assigns the ID on insert.
func SampleRestriction(reason string) models.Restriction {
	return models.Restriction{
		Type:   models.RestrictionForbidden,
		Reason: reason,
	}
}
