package dietview_test

import (
	"testing"

	"github.com/lbertrand/familyserve/internal/domain/dietview"
	"github.com/lbertrand/familyserve/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func member(name string, restrictions ...models.Restriction) models.MemberProfile {
	return models.MemberProfile{
		ID:        primitive.NewObjectID(),
		Role:      models.RoleMember,
		FirstName: name,
		LastName:  "Rivera",
		Age:       30,
		Gender:    models.GenderMale,
		DietaryProfile: models.DietaryProfile{
			Restrictions: restrictions,
		},
	}
}

func forbidden(reason string) models.Restriction {
	return models.Restriction{
		ID:     primitive.NewObjectID(),
		Type:   models.RestrictionForbidden,
		Reason: reason,
	}
}

func TestFilterByRestriction(t *testing.T) {
	g := models.Group{
		ID:   primitive.NewObjectID(),
		Name: "Rivera Household",
		Members: []models.MemberProfile{
			member("Ana", forbidden(models.ReasonGlutenFree)),
			member("Ben"),
			member("Cleo", forbidden(models.ReasonGlutenFree), forbidden(models.ReasonVegan)),
			member("Dov", models.Restriction{
				ID:     primitive.NewObjectID(),
				Type:   models.RestrictionReduced,
				Reason: models.ReasonGlutenFree,
			}),
		},
	}

	got := dietview.FilterByRestriction(g, models.RestrictionForbidden, models.ReasonGlutenFree)
	if len(got) != 2 {
		t.Fatalf("expected 2 matching members, got %d", len(got))
	}
	if got[0].FirstName != "Ana" || got[1].FirstName != "Cleo" {
		t.Errorf("expected Ana and Cleo in member order, got %s and %s", got[0].FirstName, got[1].FirstName)
	}
}

func TestFilterByRestriction_EmptyReasonMatchesAnyOfType(t *testing.T) {
	g := models.Group{
		Members: []models.MemberProfile{
			member("Ana", forbidden(models.ReasonVegan)),
			member("Ben", forbidden("no shellfish")),
			member("Cleo"),
		},
	}

	got := dietview.FilterByRestriction(g, models.RestrictionForbidden, "")
	if len(got) != 2 {
		t.Errorf("expected 2 matching members, got %d", len(got))
	}
}

func TestFilterByRestriction_NoMatchesReturnsEmptyNotNil(t *testing.T) {
	g := models.Group{Members: []models.MemberProfile{member("Ana")}}

	got := dietview.FilterByRestriction(g, models.RestrictionForbidden, models.ReasonKosher)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestSummarize(t *testing.T) {
	g := models.Group{
		ID:   primitive.NewObjectID(),
		Name: "Rivera Household",
		Members: []models.MemberProfile{
			member("Ana", forbidden(models.ReasonDairyFree)),
			member("Ben"),
			member("Cleo"),
		},
	}

	s := dietview.Summarize(g, models.RestrictionForbidden, models.ReasonDairyFree)

	if s.GroupID != g.ID.Hex() {
		t.Errorf("GroupID: got %q, want %q", s.GroupID, g.ID.Hex())
	}
	if s.Name != "Rivera Household" {
		t.Errorf("Name: got %q", s.Name)
	}
	if s.TotalMembers != 3 {
		t.Errorf("TotalMembers: got %d, want 3", s.TotalMembers)
	}
	if s.FilteredCount != 1 {
		t.Errorf("FilteredCount: got %d, want 1", s.FilteredCount)
	}
	if len(s.Members) != 1 || s.Members[0].FirstName != "Ana" {
		t.Errorf("Members: got %v", s.Members)
	}
}

func TestSummarize_DoesNotMutateGroup(t *testing.T) {
	g := models.Group{
		ID:      primitive.NewObjectID(),
		Name:    "Rivera Household",
		Members: []models.MemberProfile{member("Ana", forbidden(models.ReasonVegan))},
	}

	before := len(g.Members)
	_ = dietview.Summarize(g, models.RestrictionForbidden, "")
	if len(g.Members) != before {
		t.Error("summarize must not modify the group")
	}
}
