// internal/app/features/groups/dietary.go
package groups

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/lbertrand/familyserve/internal/app/system/timeouts"
	"github.com/lbertrand/familyserve/internal/domain/models"
)

// HandleReplaceRestrictions replaces the member's entire restriction
// list (full replace, not a merge).
func (h *Handler) HandleReplaceRestrictions(w http.ResponseWriter, r *http.Request) {
	groupID, memberID, ok := h.memberParams(r)
	if !ok {
		h.notFound(w)
		return
	}

	var req restrictionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Svc.ReplaceRestrictions(ctx, groupID, memberID, req.Restrictions)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newGroupResponse(g))
}

func (h *Handler) HandleAddRestriction(w http.ResponseWriter, r *http.Request) {
	groupID, memberID, ok := h.memberParams(r)
	if !ok {
		h.notFound(w)
		return
	}

	var restriction models.Restriction
	if err := json.NewDecoder(r.Body).Decode(&restriction); err != nil {
		h.badRequest(w, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Svc.AddRestriction(ctx, groupID, memberID, restriction)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newGroupResponse(g))
}

func (h *Handler) HandleRemoveRestriction(w http.ResponseWriter, r *http.Request) {
	groupID, memberID, ok := h.memberParams(r)
	if !ok {
		h.notFound(w)
		return
	}
	restrictionID, ok := objectIDParam(chi.URLParam(r, "restrictionID"))
	if !ok {
		h.notFound(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Svc.RemoveRestriction(ctx, groupID, memberID, restrictionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newGroupResponse(g))
}

// HandleReplaceAllergies replaces the member's allergy list. With
// ?merge=1 the service instead performs its read-then-write merge, which
// carries the other dietary leaves over from current state (and is
// documented as non-atomic against concurrent dietary edits).
func (h *Handler) HandleReplaceAllergies(w http.ResponseWriter, r *http.Request) {
	groupID, memberID, ok := h.memberParams(r)
	if !ok {
		h.notFound(w)
		return
	}

	var req allergiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON body")
		return
	}

	merge := r.URL.Query().Get("merge") == "1"
	timeout := timeouts.Short()
	if merge {
		timeout = timeouts.Medium()
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	var (
		g   models.Group
		err error
	)
	if merge {
		g, err = h.Svc.MergeMemberAllergies(ctx, groupID, memberID, req.Allergies)
	} else {
		g, err = h.Svc.ReplaceAllergies(ctx, groupID, memberID, req.Allergies)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newGroupResponse(g))
}

func (h *Handler) HandleAddAllergy(w http.ResponseWriter, r *http.Request) {
	groupID, memberID, ok := h.memberParams(r)
	if !ok {
		h.notFound(w)
		return
	}

	var req allergyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Svc.AddAllergy(ctx, groupID, memberID, req.Allergy)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newGroupResponse(g))
}

// HandleRemoveAllergy removes the allergy named by the (URL-escaped)
// path value. Matching is by exact value.
func (h *Handler) HandleRemoveAllergy(w http.ResponseWriter, r *http.Request) {
	groupID, memberID, ok := h.memberParams(r)
	if !ok {
		h.notFound(w)
		return
	}

	value, err := url.PathUnescape(chi.URLParam(r, "value"))
	if err != nil || value == "" {
		h.badRequest(w, "allergy value is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Svc.RemoveAllergy(ctx, groupID, memberID, value)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newGroupResponse(g))
}
