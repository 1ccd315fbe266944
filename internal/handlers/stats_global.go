package handlers

import (
	"net/http"
)

// GetClubOverview returns headline club counts
// @Summary Club Overview
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.LeaderboardResponse{data=models.ClubOverview}
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats/overview [get]
func (h *Handler) GetClubOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.club.GetOverview(r.Context())
	if err != nil {
		h.serviceError(w, err, "Failed to get club overview")
		return
	}
	h.successResponse(w, overview)
}
