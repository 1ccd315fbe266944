package models

import (
	"encoding/json"
	"testing"
)

func TestJoinOneUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantName  string
		wantErr   bool
	}{
		{"null", `null`, false, "", false},
		{"object", `{"id":"p1","name":"Alex"}`, true, "Alex", false},
		{"one element array", `[{"id":"p1","name":"Alex"}]`, true, "Alex", false},
		{"empty array", `[]`, false, "", false},
		{"array of null", `[null]`, false, "", false},
		{"first concrete row wins", `[null, {"name":"Sam"}, {"name":"Mary"}]`, true, "Sam", false},
		{"malformed element", `[42]`, false, "", true},
		{"malformed object", `"Alex"`, false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var j JoinOne[PlayerRef]
			err := json.Unmarshal([]byte(tt.input), &j)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			p, ok := j.Get()
			if ok != tt.wantValid || p.Name != tt.wantName {
				t.Errorf("Get() = (%+v, %v); want name %q valid %v", p, ok, tt.wantName, tt.wantValid)
			}
		})
	}
}

func TestJoinOneInRecord(t *testing.T) {
	raw := `{
		"id": "r1",
		"player_id": "p1",
		"match_id": "m1",
		"player_stats": [{"goals": 2, "minutes_played": 90, "rating": null}],
		"players": {"id": "p1", "name": "Alex Morgan"},
		"matches": null
	}`

	var rec ParticipationRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	stats, ok := rec.Stats.Get()
	if !ok || stats.Goals != 2 || stats.Rating != nil {
		t.Errorf("Stats = (%+v, %v); want 2 goals, nil rating", stats, ok)
	}
	if rec.DisplayName() != "Alex Morgan" {
		t.Errorf("DisplayName() = %q", rec.DisplayName())
	}
	if rec.ResolvedMatchID() != "m1" {
		t.Errorf("ResolvedMatchID() = %q; want foreign key fallback m1", rec.ResolvedMatchID())
	}
}

func TestJoinOneMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A JoinOne[PlayerRef] `json:"a"`
		B JoinOne[PlayerRef] `json:"b"`
	}{A: Some(PlayerRef{ID: "p1"})})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"a":{"id":"p1","name":"","photo_url":""},"b":null}`
	if string(out) != want {
		t.Errorf("Marshal() = %s; want %s", out, want)
	}
}

func TestParticipationRecordFallbacks(t *testing.T) {
	rec := ParticipationRecord{PlayerID: "fk"}
	if rec.ResolvedPlayerID() != "fk" {
		t.Errorf("ResolvedPlayerID() = %q; want fk", rec.ResolvedPlayerID())
	}
	if rec.DisplayName() != UnknownPlayerName {
		t.Errorf("DisplayName() = %q; want %q", rec.DisplayName(), UnknownPlayerName)
	}
	if rec.PhotoURL() != "" {
		t.Errorf("PhotoURL() = %q; want empty", rec.PhotoURL())
	}

	rec.Player = Some(PlayerRef{ID: "joined", Name: "Alex", PhotoURL: "alex.png"})
	if rec.ResolvedPlayerID() != "joined" || rec.PhotoURL() != "alex.png" {
		t.Errorf("joined identity not preferred: %q %q", rec.ResolvedPlayerID(), rec.PhotoURL())
	}
}

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		input   string
		want    FlexInt
		wantErr bool
	}{
		{`23`, 23, false},
		{`"23"`, 23, false},
		{`"45.0"`, 45, false},
		{`" 67 "`, 67, false},
		{`"45+2"`, 45, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`12.9`, 12, false},
		{`"abc"`, 0, true},
		{`true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tt.input), &f)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && f != tt.want {
				t.Errorf("Unmarshal(%s) = %d; want %d", tt.input, f, tt.want)
			}
		})
	}
}
