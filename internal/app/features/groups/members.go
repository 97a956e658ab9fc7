// internal/app/features/groups/members.go
package groups

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	groupstore "github.com/lbertrand/familyserve/internal/app/store/groups"
	"github.com/lbertrand/familyserve/internal/app/system/timeouts"
	"github.com/lbertrand/familyserve/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleAddMember appends a new member profile to the group. The body is
// a full member profile; any supplied id is ignored (identifiers are
// store-assigned).
func (h *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	groupID, ok := objectIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w)
		return
	}

	var m models.MemberProfile
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		h.badRequest(w, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Svc.AddMember(ctx, groupID, m)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newGroupResponse(g))
}

// HandleUpdateMember applies a whitelisted partial update. Unknown JSON
// fields are dropped during decoding; a body naming no recognized field
// is a no-op that returns the group unchanged.
func (h *Handler) HandleUpdateMember(w http.ResponseWriter, r *http.Request) {
	groupID, memberID, ok := h.memberParams(r)
	if !ok {
		h.notFound(w)
		return
	}

	var patch groupstore.MemberPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.badRequest(w, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Svc.UpdateMember(ctx, groupID, memberID, patch)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newGroupResponse(g))
}

func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	groupID, memberID, ok := h.memberParams(r)
	if !ok {
		h.notFound(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Svc.RemoveMember(ctx, groupID, memberID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newGroupResponse(g))
}

func (h *Handler) memberParams(r *http.Request) (groupID, memberID primitive.ObjectID, ok bool) {
	groupID, ok = objectIDParam(chi.URLParam(r, "id"))
	if !ok {
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	memberID, ok = objectIDParam(chi.URLParam(r, "memberID"))
	if !ok {
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	return groupID, memberID, true
}
