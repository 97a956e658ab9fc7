// internal/app/features/groups/types.go
package groups

import (
	"time"

	"github.com/lbertrand/familyserve/internal/domain/models"
)

// groupResponse is the serialized aggregate shape callers see. All
// identifiers are plain hex strings; numberOfPeople is recomputed from
// the member list at render time, never read from storage.
type groupResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Members        []models.MemberProfile `json:"members"`
	NumberOfPeople int                    `json:"numberOfPeople"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

func newGroupResponse(g models.Group) groupResponse {
	members := g.Members
	if members == nil {
		members = []models.MemberProfile{}
	}
	return groupResponse{
		ID:             g.ID.Hex(),
		Name:           g.Name,
		Members:        members,
		NumberOfPeople: g.NumberOfPeople(),
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

type createGroupRequest struct {
	Name string `json:"name"`
}

type restrictionsRequest struct {
	Restrictions []models.Restriction `json:"restrictions"`
}

type allergiesRequest struct {
	Allergies []string `json:"allergies"`
}

type allergyRequest struct {
	Allergy string `json:"allergy"`
}
