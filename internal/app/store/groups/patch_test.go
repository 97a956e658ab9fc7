package groupstore

import (
	"encoding/json"
	"testing"

	"github.com/lbertrand/familyserve/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func TestMemberPatch_SetDoc_TopLevelFields(t *testing.T) {
	age := 41
	role := models.RoleAdmin
	p := MemberPatch{
		FirstName: strPtr("Nora"),
		Age:       &age,
		Role:      &role,
	}

	set := p.setDoc("members.$.")

	if len(set) != 3 {
		t.Fatalf("expected 3 paths, got %d: %v", len(set), set)
	}
	if got := set["members.$.first_name"]; got != "Nora" {
		t.Errorf("first_name: got %v, want %q", got, "Nora")
	}
	if got := set["members.$.age"]; got != 41 {
		t.Errorf("age: got %v, want 41", got)
	}
	if got := set["members.$.role"]; got != models.RoleAdmin {
		t.Errorf("role: got %v, want %v", got, models.RoleAdmin)
	}
	if _, ok := set["members.$.last_name"]; ok {
		t.Error("last_name was not patched but appears in the set document")
	}
}

func TestMemberPatch_SetDoc_DietaryLeavesAreIndependent(t *testing.T) {
	allergies := []string{"peanuts"}
	p := MemberPatch{
		DietaryProfile: &DietaryPatch{Allergies: &allergies},
	}

	set := p.setDoc("members.$.")

	if len(set) != 1 {
		t.Fatalf("expected exactly 1 path, got %d: %v", len(set), set)
	}
	if _, ok := set["members.$.dietary_profile.allergies"]; !ok {
		t.Fatalf("allergies leaf missing from set document: %v", set)
	}
	// Sibling leaves must not be addressed at all, or a one-leaf patch
	// would erase them.
	for _, sibling := range []string{
		"members.$.dietary_profile",
		"members.$.dietary_profile.restrictions",
		"members.$.dietary_profile.health_notes",
		"members.$.dietary_profile.preferences.likes",
	} {
		if _, ok := set[sibling]; ok {
			t.Errorf("unexpected sibling path %q in set document", sibling)
		}
	}
}

func TestMemberPatch_SetDoc_PreferenceListsAreIndependent(t *testing.T) {
	likes := []string{"lentils"}
	p := MemberPatch{
		DietaryProfile: &DietaryPatch{
			Preferences: &PreferencesPatch{Likes: &likes},
		},
	}

	set := p.setDoc("members.$.")

	if len(set) != 1 {
		t.Fatalf("expected exactly 1 path, got %d: %v", len(set), set)
	}
	if _, ok := set["members.$.dietary_profile.preferences.likes"]; !ok {
		t.Fatalf("likes leaf missing from set document: %v", set)
	}
	if _, ok := set["members.$.dietary_profile.preferences.dislikes"]; ok {
		t.Error("dislikes was not patched but appears in the set document")
	}
}

func TestMemberPatch_IsZero(t *testing.T) {
	if !(MemberPatch{}).IsZero() {
		t.Error("empty patch should be zero")
	}
	if !(MemberPatch{DietaryProfile: &DietaryPatch{}}).IsZero() {
		t.Error("dietary patch with no leaves should be zero")
	}
	name := "Omar"
	if (MemberPatch{FirstName: &name}).IsZero() {
		t.Error("patch with a field should not be zero")
	}
}

func TestMemberPatch_UnknownJSONFieldsDropped(t *testing.T) {
	payload := `{"id":"64b000000000000000000000","salary":90000,"isAdmin":true}`

	var p MemberPatch
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !p.IsZero() {
		t.Errorf("patch of only unknown fields should be zero, got %v", p.setDoc(""))
	}
}

func TestMemberPatch_JSONRoundTripToPaths(t *testing.T) {
	payload := `{"firstName":"Ada","dietaryProfile":{"healthNotes":"lactose intolerant"}}`

	var p MemberPatch
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	set := p.setDoc("members.$.")
	if got := set["members.$.first_name"]; got != "Ada" {
		t.Errorf("first_name: got %v, want %q", got, "Ada")
	}
	if got := set["members.$.dietary_profile.health_notes"]; got != "lactose intolerant" {
		t.Errorf("health_notes: got %v", got)
	}
}

func TestWithRestrictionIDs(t *testing.T) {
	existing := primitive.NewObjectID()
	rs := []models.Restriction{
		{Type: models.RestrictionForbidden, Reason: models.ReasonVegan},
		{ID: existing, Type: models.RestrictionReduced, Reason: "low sodium"},
	}

	out := withRestrictionIDs(rs)

	if out[0].ID.IsZero() {
		t.Error("expected a fresh ID for the restriction that had none")
	}
	if out[1].ID != existing {
		t.Errorf("existing ID must be preserved: got %v, want %v", out[1].ID, existing)
	}
	if rs[0].ID != primitive.NilObjectID {
		t.Error("input slice must not be mutated")
	}
}
