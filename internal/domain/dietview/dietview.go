// internal/domain/dietview/dietview.go

// Package dietview derives read-only views over an already-loaded group
// aggregate. Everything here is a pure function of its input: no store
// access, no mutation of the group.
package dietview

import (
	"github.com/lbertrand/familyserve/internal/domain/models"
)

// FilterByRestriction returns the members of g that have at least one
// restriction of the given type. When reason is non-empty the
// restriction's reason must also match exactly.
func FilterByRestriction(g models.Group, t models.RestrictionType, reason string) []models.MemberProfile {
	out := make([]models.MemberProfile, 0, len(g.Members))
	for _, m := range g.Members {
		if m.HasRestriction(t, reason) {
			out = append(out, m)
		}
	}
	return out
}

// Summary describes how many of a group's members match a restriction
// filter, alongside the matching members themselves.
type Summary struct {
	GroupID       string                 `json:"groupId"`
	Name          string                 `json:"name"`
	TotalMembers  int                    `json:"totalMembers"`
	FilteredCount int                    `json:"filteredCount"`
	Members       []models.MemberProfile `json:"members"`
}

// Summarize builds a restriction summary for g. TotalMembers is always
// the current member count, recomputed from the member list.
func Summarize(g models.Group, t models.RestrictionType, reason string) Summary {
	filtered := FilterByRestriction(g, t, reason)
	return Summary{
		GroupID:       g.ID.Hex(),
		Name:          g.Name,
		TotalMembers:  g.NumberOfPeople(),
		FilteredCount: len(filtered),
		Members:       filtered,
	}
}
