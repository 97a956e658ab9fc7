// internal/app/features/groups/routes.go
package groups

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// GROUPS
	r.Post("/", h.HandleCreateGroup)
	r.Get("/", h.HandleListGroups)
	r.Get("/search", h.HandleSearchByName)
	r.Get("/{id}", h.HandleGetGroup)
	r.Delete("/{id}", h.HandleDeleteGroup)
	r.Get("/{id}/audit", h.HandleRecentAudit)

	// MEMBERS
	r.Post("/{id}/members", h.HandleAddMember)
	r.Patch("/{id}/members/{memberID}", h.HandleUpdateMember)
	r.Delete("/{id}/members/{memberID}", h.HandleRemoveMember)

	// DIETARY PROFILE
	r.Put("/{id}/members/{memberID}/restrictions", h.HandleReplaceRestrictions)
	r.Post("/{id}/members/{memberID}/restrictions", h.HandleAddRestriction)
	r.Delete("/{id}/members/{memberID}/restrictions/{restrictionID}", h.HandleRemoveRestriction)
	r.Put("/{id}/members/{memberID}/allergies", h.HandleReplaceAllergies)
	r.Post("/{id}/members/{memberID}/allergies", h.HandleAddAllergy)
	r.Delete("/{id}/members/{memberID}/allergies/{value}", h.HandleRemoveAllergy)

	// DOMAIN VIEW
	r.Get("/{id}/restriction-summary", h.HandleRestrictionSummary)

	return r
}
