package models

import "time"

// ContextualAchievement is an achievement evaluated for one match or tournament
type ContextualAchievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Tier        string `json:"tier"`
	PlayerID    string `json:"player_id"`
	PlayerName  string `json:"player_name"`
	Progress    int    `json:"progress"`
	MaxProgress int    `json:"max_progress"`
	IsUnlocked  bool   `json:"is_unlocked"`
}

// PlayerAchievement is a persisted career milestone
type PlayerAchievement struct {
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Tier       string    `json:"tier"`
	UnlockedAt time.Time `json:"unlocked_at"`
}
