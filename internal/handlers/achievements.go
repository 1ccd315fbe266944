package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/clubstats/football-stats-api/internal/logic"
)

// ============================================================================
// ACHIEVEMENT ENDPOINTS
// ============================================================================

// GetPlayerAchievements returns a player's unlocked career milestones
// @Summary Player Achievements
// @Tags Achievements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Player ID"
// @Success 200 {object} models.LeaderboardResponse{data=[]models.PlayerAchievement}
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /players/{id}/achievements [get]
func (h *Handler) GetPlayerAchievements(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id", "player")
	if !ok {
		return
	}

	list, err := h.achievements.GetPlayerAchievements(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to get achievements", "player", id)
		return
	}
	h.successResponse(w, list)
}

// GetMatchAchievements evaluates match achievements
// @Summary Match Achievements
// @Description Unlocked achievements for every player, or all rules with progress when player_id is given
// @Tags Achievements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param player_id query string false "Player ID"
// @Success 200 {object} models.LeaderboardResponse{data=[]models.ContextualAchievement}
// @Router /matches/{id}/achievements [get]
func (h *Handler) GetMatchAchievements(w http.ResponseWriter, r *http.Request) {
	h.contextualAchievements(w, r, logic.ScopeMatch, "match")
}

// GetTournamentAchievements evaluates tournament achievements
// @Summary Tournament Achievements
// @Tags Achievements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tournament ID"
// @Param player_id query string false "Player ID"
// @Success 200 {object} models.LeaderboardResponse{data=[]models.ContextualAchievement}
// @Router /tournaments/{id}/achievements [get]
func (h *Handler) GetTournamentAchievements(w http.ResponseWriter, r *http.Request) {
	h.contextualAchievements(w, r, logic.ScopeTournament, "tournament")
}

func (h *Handler) contextualAchievements(w http.ResponseWriter, r *http.Request, scope logic.AchievementScope, label string) {
	id, ok := h.uuidParam(w, r, "id", label)
	if !ok {
		return
	}

	playerID := r.URL.Query().Get("player_id")
	if playerID != "" {
		if _, err := uuid.Parse(playerID); err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid player ID")
			return
		}
	}

	list, err := h.achievements.GetAchievements(r.Context(), scope, id, playerID)
	if err != nil {
		h.serviceError(w, err, "Failed to get achievements", "scope", scope, "id", id)
		return
	}
	h.successResponse(w, list)
}
