package logic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestTranslatePgError(t *testing.T) {
	plain := errors.New("connection refused")
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "teams_name_key"}, ErrConflict},
		{"foreign key violation", &pgconn.PgError{Code: "23503", ConstraintName: "matches_home_team_id_fkey"}, ErrNotFound},
		{"wrapped unique violation", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}), ErrConflict},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, nil},
		{"plain error", plain, plain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translatePgError(tt.err)
			if tt.want == nil {
				if errors.Is(got, ErrConflict) || errors.Is(got, ErrNotFound) {
					t.Errorf("translatePgError() = %v; want passthrough", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("translatePgError() = %v; want %v", got, tt.want)
			}
		})
	}
}
