// internal/app/service/groups/dietary.go
package groupsvc

import (
	"context"

	"github.com/lbertrand/familyserve/internal/app/system/htmlsanitize"
	"github.com/lbertrand/familyserve/internal/app/system/inputval"
	"github.com/lbertrand/familyserve/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReplaceRestrictions replaces the member's entire restriction list.
func (s *Service) ReplaceRestrictions(ctx context.Context, groupID, memberID primitive.ObjectID, restrictions []models.Restriction) (models.Group, error) {
	for i, r := range restrictions {
		if err := inputval.ValidateRestriction(r); err != nil {
			return models.Group{}, err
		}
		restrictions[i].Notes = htmlsanitize.Notes(r.Notes)
	}
	g, err := s.store.UpdateMemberRestrictions(ctx, groupID, memberID, restrictions)
	if err != nil {
		return models.Group{}, err
	}
	s.audit.Record(ctx, "member.restrictions.replace", g.ID, &memberID, true, "")
	return g, nil
}

// AddRestriction appends one restriction.
func (s *Service) AddRestriction(ctx context.Context, groupID, memberID primitive.ObjectID, r models.Restriction) (models.Group, error) {
	if err := inputval.ValidateRestriction(r); err != nil {
		return models.Group{}, err
	}
	r.Notes = htmlsanitize.Notes(r.Notes)

	g, err := s.store.AddMemberRestriction(ctx, groupID, memberID, r)
	if err != nil {
		return models.Group{}, err
	}
	s.audit.Record(ctx, "member.restrictions.add", g.ID, &memberID, true, "")
	return g, nil
}

// RemoveRestriction removes the restriction with the given identifier.
func (s *Service) RemoveRestriction(ctx context.Context, groupID, memberID, restrictionID primitive.ObjectID) (models.Group, error) {
	g, err := s.store.RemoveMemberRestriction(ctx, groupID, memberID, restrictionID)
	if err != nil {
		return models.Group{}, err
	}
	s.audit.Record(ctx, "member.restrictions.remove", g.ID, &memberID, true, "")
	return g, nil
}

// ReplaceAllergies replaces the member's entire allergy list in one
// atomic leaf set.
func (s *Service) ReplaceAllergies(ctx context.Context, groupID, memberID primitive.ObjectID, allergies []string) (models.Group, error) {
	for _, a := range allergies {
		if err := inputval.ValidateAllergy(a); err != nil {
			return models.Group{}, err
		}
	}
	g, err := s.store.UpdateMemberAllergies(ctx, groupID, memberID, allergies)
	if err != nil {
		return models.Group{}, err
	}
	s.audit.Record(ctx, "member.allergies.replace", g.ID, &memberID, true, "")
	return g, nil
}

// AddAllergy appends one allergy value.
func (s *Service) AddAllergy(ctx context.Context, groupID, memberID primitive.ObjectID, allergy string) (models.Group, error) {
	if err := inputval.ValidateAllergy(allergy); err != nil {
		return models.Group{}, err
	}
	g, err := s.store.AddMemberAllergy(ctx, groupID, memberID, allergy)
	if err != nil {
		return models.Group{}, err
	}
	s.audit.Record(ctx, "member.allergies.add", g.ID, &memberID, true, "")
	return g, nil
}

// RemoveAllergy removes every occurrence of the exact allergy value.
func (s *Service) RemoveAllergy(ctx context.Context, groupID, memberID primitive.ObjectID, allergy string) (models.Group, error) {
	g, err := s.store.RemoveMemberAllergy(ctx, groupID, memberID, allergy)
	if err != nil {
		return models.Group{}, err
	}
	s.audit.Record(ctx, "member.allergies.remove", g.ID, &memberID, true, "")
	return g, nil
}

// MergeMemberAllergies replaces the member's allergies while carrying
// every other dietary leaf over from the current state, then delegates a
// single atomic full-profile replace.
//
// This is the service's one read-then-write: it is NOT safe against a
// concurrent edit of the same member's dietary profile landing between
// the read and the write, which can overwrite that edit. Callers who do
// not need the carry-over semantics should use ReplaceAllergies, which
// is a single atomic leaf set.
func (s *Service) MergeMemberAllergies(ctx context.Context, groupID, memberID primitive.ObjectID, allergies []string) (models.Group, error) {
	for _, a := range allergies {
		if err := inputval.ValidateAllergy(a); err != nil {
			return models.Group{}, err
		}
	}

	g, err := s.store.GetByID(ctx, groupID)
	if err != nil {
		return models.Group{}, err
	}
	m, ok := g.Member(memberID)
	if !ok {
		return models.Group{}, mongo.ErrNoDocuments
	}

	profile := m.DietaryProfile
	profile.Allergies = allergies

	updated, err := s.store.UpdateMemberDietaryProfile(ctx, groupID, memberID, profile)
	if err != nil {
		return models.Group{}, err
	}
	s.audit.Record(ctx, "member.allergies.merge", updated.ID, &memberID, true, "")
	return updated, nil
}
