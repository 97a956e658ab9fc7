// internal/app/features/groups/groups.go
package groups

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lbertrand/familyserve/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleCreateGroup creates an empty aggregate from a JSON {"name": ...}.
func (h *Handler) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Svc.CreateGroup(ctx, req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.Log.Info("group created", zap.String("group_id", g.ID.Hex()), zap.String("name", g.Name))
	h.writeJSON(w, http.StatusCreated, newGroupResponse(g))
}

func (h *Handler) HandleListGroups(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	gs, err := h.Svc.ListGroups(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]groupResponse, 0, len(gs))
	for _, g := range gs {
		out = append(out, newGroupResponse(g))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) HandleGetGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Svc.GetGroup(ctx, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newGroupResponse(g))
}

// HandleSearchByName is the collation-aware equality lookup:
// GET /groups/search?name=... matches "My Family" for "my family" when
// locale-insensitive collation is enabled, and only the exact bytes when
// it is disabled.
func (h *Handler) HandleSearchByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.badRequest(w, "name query parameter is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Svc.FindGroupByName(ctx, name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newGroupResponse(g))
}

func (h *Handler) HandleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Svc.DeleteGroup(ctx, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if n == 0 {
		h.notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRecentAudit lists the newest recorded mutations for one group.
func (h *Handler) HandleRecentAudit(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := h.Audit.RecentByGroup(ctx, id, 50)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, events)
}
