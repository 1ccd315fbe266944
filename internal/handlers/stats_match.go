package handlers

import (
	"net/http"
)

// GetMatchDetails returns full details for a match
// @Summary Match Report
// @Description Header, roster with normalized stats and the event timeline
// @Tags Matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} models.LeaderboardResponse{data=models.MatchDetail}
// @Failure 404 {object} map[string]string "Not Found"
// @Router /matches/{id} [get]
func (h *Handler) GetMatchDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id", "match")
	if !ok {
		return
	}

	detail, err := h.matchReport.GetMatchDetails(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to get match details", "match", id)
		return
	}
	h.successResponse(w, detail)
}
