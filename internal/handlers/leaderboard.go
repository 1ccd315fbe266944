package handlers

import (
	"net/http"
)

// GetLeaderboards returns every leaderboard view computed from one snapshot
// @Summary Club Leaderboards
// @Description Top goal scorers, assist makers, most active players, goals per match, top performers, minutes, clean sheets and saves
// @Tags Leaderboards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.LeaderboardResponse{data=models.LeaderboardSet}
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats/leaderboards [get]
func (h *Handler) GetLeaderboards(w http.ResponseWriter, r *http.Request) {
	set, err := h.leaderboard.GetLeaderboards(r.Context())
	if err != nil {
		h.serviceError(w, err, "Failed to compute leaderboards")
		return
	}
	h.successResponse(w, set)
}

// GetLeaderboardDashboard returns the condensed top-5 cards
// @Summary Leaderboard Dashboard
// @Tags Leaderboards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.LeaderboardResponse{data=models.LeaderboardDashboard}
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats/leaderboards/summary [get]
func (h *Handler) GetLeaderboardDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.leaderboard.GetDashboard(r.Context())
	if err != nil {
		h.serviceError(w, err, "Failed to compute leaderboard summary")
		return
	}
	h.successResponse(w, dashboard)
}
