// internal/app/service/groups/service.go

// Package groupsvc orchestrates validation and the aggregate mutation
// engine. It is thin: validate (and sanitize free text),
// delegate 1:1 to the store, record an audit event. The one exception is
// MergeMemberAllergies, the service's single read-then-write.
package groupsvc

import (
	"context"

	groupstore "github.com/lbertrand/familyserve/internal/app/store/groups"
	"github.com/lbertrand/familyserve/internal/app/system/auditlog"
	"github.com/lbertrand/familyserve/internal/app/system/htmlsanitize"
	"github.com/lbertrand/familyserve/internal/app/system/inputval"
	"github.com/lbertrand/familyserve/internal/domain/dietview"
	"github.com/lbertrand/familyserve/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Service struct {
	store *groupstore.Store
	audit *auditlog.Logger
	log   *zap.Logger
}

// New builds a Service. audit may be nil (tests).
func New(store *groupstore.Store, audit *auditlog.Logger, log *zap.Logger) *Service {
	return &Service{store: store, audit: audit, log: log}
}

// CreateGroup validates the name and creates an empty aggregate.
func (s *Service) CreateGroup(ctx context.Context, name string) (models.Group, error) {
	if err := inputval.ValidateGroupName(name); err != nil {
		return models.Group{}, err
	}
	g, err := s.store.Create(ctx, name)
	if err != nil {
		return models.Group{}, err
	}
	s.audit.Record(ctx, "group.create", g.ID, nil, true, "")
	return g, nil
}

func (s *Service) GetGroup(ctx context.Context, id primitive.ObjectID) (models.Group, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) ListGroups(ctx context.Context) ([]models.Group, error) {
	return s.store.List(ctx)
}

func (s *Service) FindGroupByName(ctx context.Context, name string) (models.Group, error) {
	return s.store.FindByName(ctx, name)
}

func (s *Service) DeleteGroup(ctx context.Context, id primitive.ObjectID) (int64, error) {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.audit.Record(ctx, "group.delete", id, nil, true, "")
	return n, nil
}

// AddMember validates and sanitizes the new member, then delegates the
// atomic append.
func (s *Service) AddMember(ctx context.Context, groupID primitive.ObjectID, m models.MemberProfile) (models.Group, error) {
	if err := inputval.ValidateNewMember(m); err != nil {
		return models.Group{}, err
	}
	sanitizeMember(&m)

	g, err := s.store.AddMember(ctx, groupID, m)
	if err != nil {
		return models.Group{}, err
	}
	s.audit.Record(ctx, "member.add", g.ID, lastMemberID(g), true, "")
	return g, nil
}

// UpdateMember applies a whitelisted partial update to one member.
func (s *Service) UpdateMember(ctx context.Context, groupID, memberID primitive.ObjectID, patch groupstore.MemberPatch) (models.Group, error) {
	sanitizePatch(&patch)

	g, err := s.store.UpdateMember(ctx, groupID, memberID, patch)
	if err != nil {
		return models.Group{}, err
	}
	if !patch.IsZero() {
		s.audit.Record(ctx, "member.update", g.ID, &memberID, true, "")
	}
	return g, nil
}

func (s *Service) RemoveMember(ctx context.Context, groupID, memberID primitive.ObjectID) (models.Group, error) {
	g, err := s.store.RemoveMember(ctx, groupID, memberID)
	if err != nil {
		return models.Group{}, err
	}
	s.audit.Record(ctx, "member.remove", g.ID, &memberID, true, "")
	return g, nil
}

// RestrictionSummary loads the aggregate and derives the pure
// restriction summary over it.
func (s *Service) RestrictionSummary(ctx context.Context, groupID primitive.ObjectID, t models.RestrictionType, reason string) (dietview.Summary, error) {
	if !t.Valid() {
		return dietview.Summary{}, &inputval.ValidationError{Fields: []string{"restriction type must be FORBIDDEN or REDUCED"}}
	}
	g, err := s.store.GetByID(ctx, groupID)
	if err != nil {
		return dietview.Summary{}, err
	}
	return dietview.Summarize(g, t, reason), nil
}

func sanitizeMember(m *models.MemberProfile) {
	m.DietaryProfile.HealthNotes = htmlsanitize.Notes(m.DietaryProfile.HealthNotes)
	m.FastingWindow = htmlsanitize.Notes(m.FastingWindow)
	if m.NutritionTargets != nil {
		m.NutritionTargets.Rationale = htmlsanitize.Notes(m.NutritionTargets.Rationale)
	}
	for i := range m.DietaryProfile.Restrictions {
		m.DietaryProfile.Restrictions[i].Notes = htmlsanitize.Notes(m.DietaryProfile.Restrictions[i].Notes)
	}
}

func sanitizePatch(p *groupstore.MemberPatch) {
	if p.FastingWindow != nil {
		clean := htmlsanitize.Notes(*p.FastingWindow)
		p.FastingWindow = &clean
	}
	if p.NutritionTargets != nil {
		p.NutritionTargets.Rationale = htmlsanitize.Notes(p.NutritionTargets.Rationale)
	}
	if p.DietaryProfile != nil && p.DietaryProfile.HealthNotes != nil {
		clean := htmlsanitize.Notes(*p.DietaryProfile.HealthNotes)
		p.DietaryProfile.HealthNotes = &clean
	}
}

// lastMemberID is the identifier the store just assigned: AddMember
// pushes to the end of the array.
func lastMemberID(g models.Group) *primitive.ObjectID {
	if len(g.Members) == 0 {
		return nil
	}
	id := g.Members[len(g.Members)-1].ID
	return &id
}
