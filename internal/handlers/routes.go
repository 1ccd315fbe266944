package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Authenticator gates routes on a bearer token. *auth.Service satisfies it.
type Authenticator interface {
	RequireIdentity(next http.Handler) http.Handler
}

// Routes builds the /api/v1 router. Every route requires an approved
// member; the admin group additionally requires the admin role. All
// responses are marked non-cacheable.
func (h *Handler) Routes(authn Authenticator, requireAdmin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(NoStore)
	r.Use(authn.RequireIdentity)

	// Leaderboards and club stats
	r.Get("/stats/leaderboards", h.GetLeaderboards)
	r.Get("/stats/leaderboards/summary", h.GetLeaderboardDashboard)
	r.Get("/stats/overview", h.GetClubOverview)

	// Tournaments
	r.Get("/tournaments", h.GetTournaments)
	r.Get("/tournaments/{id}", h.GetTournament)
	r.Get("/tournaments/{id}/stats", h.GetTournamentStats)
	r.Get("/tournaments/{id}/standings", h.GetTournamentStandings)
	r.Get("/tournaments/{id}/achievements", h.GetTournamentAchievements)

	// Players
	r.Get("/players/{id}/stats", h.GetPlayerStats)
	r.Get("/players/{id}/achievements", h.GetPlayerAchievements)

	// Matches
	r.Get("/matches/{id}", h.GetMatchDetails)
	r.Get("/matches/{id}/achievements", h.GetMatchAchievements)

	r.Route("/admin", func(r chi.Router) {
		r.Use(requireAdmin)

		r.Post("/players", h.CreatePlayer)
		r.Post("/teams", h.CreateTeam)
		r.Post("/tournaments", h.CreateTournament)
		r.Post("/tournaments/{id}/teams", h.RegisterTournamentTeams)
		r.Post("/tournaments/{id}/fixtures", h.GenerateFixtures)

		r.Post("/matches", h.CreateMatch)
		r.Patch("/matches/{id}", h.UpdateMatch)
		r.Post("/matches/{id}/roster", h.AddRosterEntry)
		r.Put("/matches/{id}/players/{playerId}/stats", h.UpsertPlayerStats)
		r.Post("/matches/{id}/events", h.IngestMatchEvents)

		r.Post("/system/install", h.InstallDatabase)
	})

	return r
}
