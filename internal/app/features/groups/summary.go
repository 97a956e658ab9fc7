// internal/app/features/groups/summary.go
package groups

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lbertrand/familyserve/internal/app/system/timeouts"
	"github.com/lbertrand/familyserve/internal/domain/models"
)

// HandleRestrictionSummary answers
// GET /groups/{id}/restriction-summary?type=FORBIDDEN&reason=GLUTEN_FREE
// with the pure domain-view summary over the loaded aggregate. Reason is
// optional; omitted means any reason for that type.
func (h *Handler) HandleRestrictionSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w)
		return
	}

	t := models.RestrictionType(r.URL.Query().Get("type"))
	reason := r.URL.Query().Get("reason")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	summary, err := h.Svc.RestrictionSummary(ctx, id, t, reason)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}
