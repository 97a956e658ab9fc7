package groupsvc_test

import (
	"testing"

	groupsvc "github.com/lbertrand/familyserve/internal/app/service/groups"
	groupstore "github.com/lbertrand/familyserve/internal/app/store/groups"
	"github.com/lbertrand/familyserve/internal/app/system/inputval"
	"github.com/lbertrand/familyserve/internal/domain/models"
	"github.com/lbertrand/familyserve/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newService(t *testing.T) (*groupsvc.Service, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := groupsvc.New(groupstore.New(db), nil, zap.NewNop())
	return svc, testutil.NewFixtures(t, db)
}

func TestService_CreateGroup_ValidationBeforeStore(t *testing.T) {
	svc, _ := newService(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := svc.CreateGroup(ctx, "  Untrimmed ")
	if !inputval.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// Nothing was persisted.
	if got, err := svc.ListGroups(ctx); err != nil || len(got) != 0 {
		t.Errorf("expected no groups after failed create, got %v (err %v)", got, err)
	}
}

func TestService_CreateGroup(t *testing.T) {
	svc, _ := newService(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g, err := svc.CreateGroup(ctx, "Rivera Household")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if g.NumberOfPeople() != 0 {
		t.Errorf("new group should be empty, got %d members", g.NumberOfPeople())
	}
}

func TestService_AddMember_ValidationBeforeStore(t *testing.T) {
	svc, fixtures := newService(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "Rivera Household")

	bad := testutil.SampleMember("", "Rivera")
	if _, err := svc.AddMember(ctx, g.ID, bad); !inputval.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	got, err := svc.GetGroup(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if got.NumberOfPeople() != 0 {
		t.Error("invalid member must not be persisted")
	}
}

func TestService_AddMember_SanitizesFreeText(t *testing.T) {
	svc, fixtures := newService(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "Rivera Household")

	m := testutil.SampleMember("Ana", "Rivera")
	m.DietaryProfile.HealthNotes = "<script>alert(1)</script>mild lactose intolerance"
	m.FastingWindow = "<b>16:8</b>"

	updated, err := svc.AddMember(ctx, g.ID, m)
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	added := updated.Members[0]
	if added.DietaryProfile.HealthNotes != "mild lactose intolerance" {
		t.Errorf("HealthNotes not sanitized: %q", added.DietaryProfile.HealthNotes)
	}
	if added.FastingWindow != "16:8" {
		t.Errorf("FastingWindow not sanitized: %q", added.FastingWindow)
	}
}

func TestService_UpdateMember_SanitizesPatchNotes(t *testing.T) {
	svc, fixtures := newService(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "Rivera Household")
	g = fixtures.AddMember(ctx, g, testutil.SampleMember("Ana", "Rivera"))
	memberID := g.Members[0].ID

	notes := "<i>updated</i> after visit"
	patch := groupstore.MemberPatch{
		DietaryProfile: &groupstore.DietaryPatch{HealthNotes: &notes},
	}

	updated, err := svc.UpdateMember(ctx, g.ID, memberID, patch)
	if err != nil {
		t.Fatalf("UpdateMember failed: %v", err)
	}
	got, _ := updated.Member(memberID)
	if got.DietaryProfile.HealthNotes != "updated after visit" {
		t.Errorf("HealthNotes not sanitized: %q", got.DietaryProfile.HealthNotes)
	}
}

func TestService_ReplaceRestrictions_RejectsInvalid(t *testing.T) {
	svc, fixtures := newService(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "Rivera Household")
	g = fixtures.AddMember(ctx, g, testutil.SampleMember("Ana", "Rivera"))
	memberID := g.Members[0].ID

	bad := []models.Restriction{{Type: "SOMETIMES", Reason: models.ReasonVegan}}
	if _, err := svc.ReplaceRestrictions(ctx, g.ID, memberID, bad); !inputval.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_AddAllergy_RejectsBlank(t *testing.T) {
	svc, fixtures := newService(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "Rivera Household")
	g = fixtures.AddMember(ctx, g, testutil.SampleMember("Ana", "Rivera"))
	memberID := g.Members[0].ID

	if _, err := svc.AddAllergy(ctx, g.ID, memberID, "  "); !inputval.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_MergeMemberAllergies_PreservesSiblingLeaves(t *testing.T) {
	svc, fixtures := newService(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "Rivera Household")
	m := testutil.SampleMember("Ana", "Rivera")
	m.DietaryProfile.Allergies = []string{"peanuts"}
	m.DietaryProfile.Restrictions = []models.Restriction{testutil.SampleRestriction(models.ReasonVegan)}
	m.DietaryProfile.HealthNotes = "keeps a food diary"
	m.DietaryProfile.Preferences.Likes = []string{"lentils"}
	g = fixtures.AddMember(ctx, g, m)
	memberID := g.Members[0].ID

	updated, err := svc.MergeMemberAllergies(ctx, g.ID, memberID, []string{"soy", "sesame"})
	if err != nil {
		t.Fatalf("MergeMemberAllergies failed: %v", err)
	}

	got, _ := updated.Member(memberID)
	if len(got.DietaryProfile.Allergies) != 2 {
		t.Errorf("Allergies: got %v", got.DietaryProfile.Allergies)
	}
	if len(got.DietaryProfile.Restrictions) != 1 {
		t.Errorf("restrictions lost in merge: %v", got.DietaryProfile.Restrictions)
	}
	if got.DietaryProfile.HealthNotes != "keeps a food diary" {
		t.Errorf("health notes lost in merge: %q", got.DietaryProfile.HealthNotes)
	}
	if len(got.DietaryProfile.Preferences.Likes) != 1 {
		t.Errorf("likes lost in merge: %v", got.DietaryProfile.Preferences.Likes)
	}
}

func TestService_MergeMemberAllergies_UnknownMember(t *testing.T) {
	svc, fixtures := newService(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "Rivera Household")

	_, err := svc.MergeMemberAllergies(ctx, g.ID, primitive.NewObjectID(), []string{"soy"})
	if err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestService_RestrictionSummary(t *testing.T) {
	svc, fixtures := newService(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "Rivera Household")
	veg := testutil.SampleMember("Ana", "Rivera")
	veg.DietaryProfile.Restrictions = []models.Restriction{testutil.SampleRestriction(models.ReasonVegetarian)}
	g = fixtures.AddMember(ctx, g, veg)
	g = fixtures.AddMember(ctx, g, testutil.SampleMember("Ben", "Rivera"))

	s, err := svc.RestrictionSummary(ctx, g.ID, models.RestrictionForbidden, models.ReasonVegetarian)
	if err != nil {
		t.Fatalf("RestrictionSummary failed: %v", err)
	}
	if s.TotalMembers != 2 {
		t.Errorf("TotalMembers: got %d, want 2", s.TotalMembers)
	}
	if s.FilteredCount != 1 {
		t.Errorf("FilteredCount: got %d, want 1", s.FilteredCount)
	}
	if len(s.Members) != 1 || s.Members[0].FirstName != "Ana" {
		t.Errorf("Members: got %v", s.Members)
	}
}

func TestService_RestrictionSummary_BadType(t *testing.T) {
	svc, fixtures := newService(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "Rivera Household")

	_, err := svc.RestrictionSummary(ctx, g.ID, "SOMETIMES", "")
	if !inputval.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}
