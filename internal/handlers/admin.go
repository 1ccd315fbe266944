package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/clubstats/football-stats-api/internal/models"
)

// ============================================================================
// ADMIN ENDPOINTS
// ============================================================================

func (h *Handler) created(w http.ResponseWriter, id string) {
	h.jsonResponse(w, http.StatusCreated, models.LeaderboardResponse{Success: true, Data: models.CreatedResponse{ID: id}})
}

// validIDs checks that every non-empty id is a UUID.
func (h *Handler) validIDs(w http.ResponseWriter, ids ...string) bool {
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid ID: "+id)
			return false
		}
	}
	return true
}

// CreatePlayer registers a club member
// @Summary Create Player
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreatePlayerRequest true "Player"
// @Success 201 {object} models.LeaderboardResponse{data=models.CreatedResponse}
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /admin/players [post]
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlayerRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	id, err := h.admin.CreatePlayer(r.Context(), req)
	if err != nil {
		h.serviceError(w, err, "Failed to create player")
		return
	}
	h.created(w, id)
}

// CreateTeam creates a team
// @Summary Create Team
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateTeamRequest true "Team"
// @Success 201 {object} models.LeaderboardResponse{data=models.CreatedResponse}
// @Router /admin/teams [post]
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTeamRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	id, err := h.admin.CreateTeam(r.Context(), req)
	if err != nil {
		h.serviceError(w, err, "Failed to create team")
		return
	}
	h.created(w, id)
}

// CreateTournament creates a tournament in upcoming state
// @Summary Create Tournament
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateTournamentRequest true "Tournament"
// @Success 201 {object} models.LeaderboardResponse{data=models.CreatedResponse}
// @Router /admin/tournaments [post]
func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTournamentRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	id, err := h.admin.CreateTournament(r.Context(), req)
	if err != nil {
		h.serviceError(w, err, "Failed to create tournament")
		return
	}
	h.created(w, id)
}

// RegisterTournamentTeams enters teams into a tournament
// @Summary Register Tournament Teams
// @Tags Admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Tournament ID"
// @Param body body models.RegisterTeamsRequest true "Teams"
// @Success 204
// @Failure 404 {object} map[string]string "Unknown tournament or team"
// @Router /admin/tournaments/{id}/teams [post]
func (h *Handler) RegisterTournamentTeams(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id", "tournament")
	if !ok {
		return
	}
	var req models.RegisterTeamsRequest
	if !h.decodeBody(w, r, &req) || !h.validIDs(w, req.TeamIDs...) {
		return
	}
	if err := h.admin.RegisterTeams(r.Context(), id, req); err != nil {
		h.serviceError(w, err, "Failed to register teams", "tournament", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateMatch schedules a match
// @Summary Create Match
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateMatchRequest true "Match"
// @Success 201 {object} models.LeaderboardResponse{data=models.CreatedResponse}
// @Router /admin/matches [post]
func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMatchRequest
	if !h.decodeBody(w, r, &req) || !h.validIDs(w, req.TournamentID, req.HomeTeamID, req.AwayTeamID) {
		return
	}
	id, err := h.admin.CreateMatch(r.Context(), req)
	if err != nil {
		h.serviceError(w, err, "Failed to create match")
		return
	}
	h.created(w, id)
}

// UpdateMatch sets status and score
// @Summary Update Match
// @Tags Admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param body body models.UpdateMatchRequest true "Result"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /admin/matches/{id} [patch]
func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id", "match")
	if !ok {
		return
	}
	var req models.UpdateMatchRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if err := h.admin.UpdateMatch(r.Context(), id, req); err != nil {
		h.serviceError(w, err, "Failed to update match", "match", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddRosterEntry adds a player to a match
// @Summary Add Player to Match Roster
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param body body models.AddRosterRequest true "Roster entry"
// @Success 201 {object} models.LeaderboardResponse{data=models.CreatedResponse}
// @Failure 409 {object} map[string]string "Already on roster"
// @Router /admin/matches/{id}/roster [post]
func (h *Handler) AddRosterEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id", "match")
	if !ok {
		return
	}
	var req models.AddRosterRequest
	if !h.decodeBody(w, r, &req) || !h.validIDs(w, req.PlayerID, req.TeamID) {
		return
	}
	entryID, err := h.admin.AddToRoster(r.Context(), id, req)
	if err != nil {
		h.serviceError(w, err, "Failed to add roster entry", "match", id)
		return
	}
	h.created(w, entryID)
}

// UpsertPlayerStats sets a player's stat row for a match
// @Summary Upsert Match Stats
// @Tags Admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param playerId path string true "Player ID"
// @Param body body models.UpsertStatsRequest true "Stats"
// @Success 204
// @Failure 404 {object} map[string]string "Player not on roster"
// @Router /admin/matches/{id}/players/{playerId}/stats [put]
func (h *Handler) UpsertPlayerStats(w http.ResponseWriter, r *http.Request) {
	matchID, ok := h.uuidParam(w, r, "id", "match")
	if !ok {
		return
	}
	playerID, ok := h.uuidParam(w, r, "playerId", "player")
	if !ok {
		return
	}
	var req models.UpsertStatsRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if err := h.admin.UpsertStats(r.Context(), matchID, playerID, req); err != nil {
		h.serviceError(w, err, "Failed to save stats", "match", matchID, "player", playerID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
