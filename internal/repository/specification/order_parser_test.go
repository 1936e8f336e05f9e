package specification

import (
	"testing"
)

func TestParseOrderString(t *testing.T) {
	sortable := []string{"id", "created_at", "title", "last_message_at"}

	tests := []struct {
		name        string
		raw         string
		wantClauses []OrderClause
		wantErr     bool
	}{
		{
			name: "two pairs preserve precedence",
			raw:  "created_at:desc,title:asc",
			wantClauses: []OrderClause{
				{Column: "created_at", Direction: "desc"},
				{Column: "title", Direction: "asc"},
			},
		},
		{
			name:        "single pair",
			raw:         "id:asc",
			wantClauses: []OrderClause{{Column: "id", Direction: "asc"}},
		},
		{
			name:        "direction defaults to asc",
			raw:         "title",
			wantClauses: []OrderClause{{Column: "title", Direction: "asc"}},
		},
		{
			name:        "empty input yields no clauses",
			raw:         "",
			wantClauses: nil,
		},
		{
			name:    "unknown column rejected",
			raw:     "password:asc",
			wantErr: true,
		},
		{
			name:    "injection attempt rejected",
			raw:     "id; DROP TABLE users:asc",
			wantErr: true,
		},
		{
			name:    "invalid direction rejected",
			raw:     "id:sideways",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrderString(tt.raw, sortable...)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got clauses %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.wantClauses) {
				t.Fatalf("got %d clauses, want %d", len(got), len(tt.wantClauses))
			}
			for i, want := range tt.wantClauses {
				if got[i] != want {
					t.Errorf("clause %d: got %+v, want %+v", i, got[i], want)
				}
			}
		})
	}
}
