package handlers

import (
	"net/http"

	"github.com/clubstats/football-stats-api/internal/models"
)

// ============================================================================
// TOURNAMENT ENDPOINTS
// ============================================================================

// GetTournaments returns list of tournaments
// @Summary List Tournaments
// @Tags Tournaments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.LeaderboardResponse{data=[]models.Tournament}
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /tournaments [get]
func (h *Handler) GetTournaments(w http.ResponseWriter, r *http.Request) {
	list, err := h.tournament.GetTournaments(r.Context())
	if err != nil {
		h.serviceError(w, err, "Failed to get tournaments")
		return
	}
	h.successResponse(w, list)
}

// GetTournament returns details
// @Summary Get Tournament Details
// @Tags Tournaments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tournament ID"
// @Success 200 {object} models.LeaderboardResponse{data=models.Tournament}
// @Failure 404 {object} map[string]string "Not Found"
// @Router /tournaments/{id} [get]
func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id", "tournament")
	if !ok {
		return
	}

	t, err := h.tournament.GetTournament(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to get tournament", "id", id)
		return
	}
	h.successResponse(w, t)
}

// GetTournamentStats returns the player ranking over completed matches
// @Summary Get Tournament Stats
// @Description Players ranked by goals, then assists, then average rating
// @Tags Tournaments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tournament ID"
// @Success 200 {object} models.LeaderboardResponse{data=models.TournamentStats}
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /tournaments/{id}/stats [get]
func (h *Handler) GetTournamentStats(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id", "tournament")
	if !ok {
		return
	}

	stats, err := h.tournament.GetTournamentStats(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to get stats", "id", id)
		return
	}
	h.successResponse(w, stats)
}

// GetTournamentStandings returns the league table
// @Summary Tournament Standings
// @Tags Tournaments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tournament ID"
// @Success 200 {object} models.LeaderboardResponse{data=[]models.StandingRow}
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /tournaments/{id}/standings [get]
func (h *Handler) GetTournamentStandings(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id", "tournament")
	if !ok {
		return
	}

	table, err := h.tournament.GetStandings(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to get standings", "id", id)
		return
	}
	h.successResponse(w, table)
}

// GenerateFixtures creates the round-robin schedule
// @Summary Generate Tournament Fixtures
// @Description Round-robin over registered teams. Refused if the tournament already has matches.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tournament ID"
// @Param body body models.GenerateFixturesRequest true "Schedule"
// @Success 201 {object} models.LeaderboardResponse{data=[]models.Fixture}
// @Failure 400 {object} map[string]string "Fewer than two teams"
// @Failure 409 {object} map[string]string "Fixtures already exist"
// @Router /admin/tournaments/{id}/fixtures [post]
func (h *Handler) GenerateFixtures(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id", "tournament")
	if !ok {
		return
	}

	var req models.GenerateFixturesRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	fixtures, err := h.tournament.GenerateFixtures(r.Context(), id, req)
	if err != nil {
		h.serviceError(w, err, "Failed to generate fixtures", "id", id)
		return
	}
	h.jsonResponse(w, http.StatusCreated, models.LeaderboardResponse{Success: true, Data: fixtures})
}
