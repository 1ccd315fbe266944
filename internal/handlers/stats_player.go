package handlers

import (
	"net/http"
)

// GetPlayerStats returns a player's career profile
// @Summary Player Profile Stats
// @Description Career totals and per-match lines computed by the same engine as the leaderboards
// @Tags Players
// @Produce json
// @Security BearerAuth
// @Param id path string true "Player ID"
// @Success 200 {object} models.LeaderboardResponse{data=models.PlayerProfileStats}
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /players/{id}/stats [get]
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id", "player")
	if !ok {
		return
	}

	stats, err := h.playerStats.GetPlayerStats(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to get player stats", "player", id)
		return
	}
	h.successResponse(w, stats)
}
