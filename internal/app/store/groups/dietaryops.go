// internal/app/store/groups/dietaryops.go
package groupstore

import (
	"context"
	"time"

	"github.com/lbertrand/familyserve/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dotted paths of the dietary leaves under the positional member match.
const (
	pathRestrictions = "members.$.dietary_profile.restrictions"
	pathAllergies    = "members.$.dietary_profile.allergies"
	pathProfile      = "members.$.dietary_profile"
)

// UpdateMemberRestrictions atomically replaces the member's entire
// restriction list (full replace, not a merge).
func (s *Store) UpdateMemberRestrictions(ctx context.Context, groupID, memberID primitive.ObjectID, restrictions []models.Restriction) (models.Group, error) {
	return s.setMemberField(ctx, groupID, memberID, pathRestrictions, withRestrictionIDs(restrictions))
}

// AddMemberRestriction atomically appends one restriction to the
// member's restriction list.
func (s *Store) AddMemberRestriction(ctx context.Context, groupID, memberID primitive.ObjectID, r models.Restriction) (models.Group, error) {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	update := bson.M{
		"$push": bson.M{pathRestrictions: r},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	var g models.Group
	if err := s.c.FindOneAndUpdate(ctx, memberFilter(groupID, memberID), update, returnUpdated).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// RemoveMemberRestriction atomically pulls the restriction with the
// given identifier from the member's restriction list. Matching is by
// exact identifier; a restriction that does not exist leaves the list
// unchanged (the member itself must still resolve).
func (s *Store) RemoveMemberRestriction(ctx context.Context, groupID, memberID, restrictionID primitive.ObjectID) (models.Group, error) {
	update := bson.M{
		"$pull": bson.M{pathRestrictions: bson.M{"_id": restrictionID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	var g models.Group
	if err := s.c.FindOneAndUpdate(ctx, memberFilter(groupID, memberID), update, returnUpdated).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// UpdateMemberAllergies atomically replaces the member's entire allergy
// list (full replace, not a merge).
func (s *Store) UpdateMemberAllergies(ctx context.Context, groupID, memberID primitive.ObjectID, allergies []string) (models.Group, error) {
	if allergies == nil {
		allergies = []string{}
	}
	return s.setMemberField(ctx, groupID, memberID, pathAllergies, allergies)
}

// AddMemberAllergy atomically appends one allergy value. Duplicates are
// allowed; operations treat allergies by value.
func (s *Store) AddMemberAllergy(ctx context.Context, groupID, memberID primitive.ObjectID, allergy string) (models.Group, error) {
	update := bson.M{
		"$push": bson.M{pathAllergies: allergy},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	var g models.Group
	if err := s.c.FindOneAndUpdate(ctx, memberFilter(groupID, memberID), update, returnUpdated).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// RemoveMemberAllergy atomically pulls every occurrence of the exact
// allergy value from the member's allergy list. Matching is exact; there
// is no case folding.
func (s *Store) RemoveMemberAllergy(ctx context.Context, groupID, memberID primitive.ObjectID, allergy string) (models.Group, error) {
	update := bson.M{
		"$pull": bson.M{pathAllergies: allergy},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	var g models.Group
	if err := s.c.FindOneAndUpdate(ctx, memberFilter(groupID, memberID), update, returnUpdated).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// UpdateMemberDietaryProfile atomically replaces the member's whole
// dietary profile. This backs the service-level allergy merge, which
// reads the current profile first and then delegates one atomic replace.
func (s *Store) UpdateMemberDietaryProfile(ctx context.Context, groupID, memberID primitive.ObjectID, p models.DietaryProfile) (models.Group, error) {
	p.Restrictions = withRestrictionIDs(p.Restrictions)
	if p.Preferences.Likes == nil {
		p.Preferences.Likes = []string{}
	}
	if p.Preferences.Dislikes == nil {
		p.Preferences.Dislikes = []string{}
	}
	if p.Allergies == nil {
		p.Allergies = []string{}
	}
	return s.setMemberField(ctx, groupID, memberID, pathProfile, p)
}

// setMemberField is the shared single-field atomic set: one dotted path
// on one positionally-matched member, with the aggregate's updated_at
// bumped in the same operation.
func (s *Store) setMemberField(ctx context.Context, groupID, memberID primitive.ObjectID, path string, value any) (models.Group, error) {
	update := bson.M{
		"$set": bson.M{
			path:         value,
			"updated_at": time.Now().UTC(),
		},
	}
	var g models.Group
	if err := s.c.FindOneAndUpdate(ctx, memberFilter(groupID, memberID), update, returnUpdated).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}
