package serverutils

import (
	"errors"
	"strings"
	"testing"
)

func TestParseNumericID(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		raw     string
		want    uint
		wantErr bool
	}{
		{name: "plain id", field: "user_id", raw: "42", want: 42},
		{name: "zero is valid", field: "chat_id", raw: "0", want: 0},
		{name: "negative rejected", field: "user_id", raw: "-1", wantErr: true},
		{name: "alpha rejected", field: "chat_id", raw: "abc", wantErr: true},
		{name: "float rejected", field: "id", raw: "1.5", wantErr: true},
		{name: "empty rejected", field: "project_id", raw: "", wantErr: true},
		{name: "uuid in numeric slot rejected", field: "id", raw: "7f9c24e5-2f4b-4b1f-9c60-158d3bbd12af", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumericID(tt.field, tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				var apiErr *ApiError
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected ApiError, got %T", err)
				}
				if apiErr.StatusCode != 400 {
					t.Errorf("status = %d, want 400", apiErr.StatusCode)
				}
				if !strings.Contains(apiErr.Message, tt.field) {
					t.Errorf("message %q does not name field %q", apiErr.Message, tt.field)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseUUID(t *testing.T) {
	if _, err := ParseUUID("uuid", "7f9c24e5-2f4b-4b1f-9c60-158d3bbd12af"); err != nil {
		t.Fatalf("valid uuid rejected: %v", err)
	}

	for _, raw := range []string{"", "42", "not-a-uuid", "7f9c24e5-2f4b-4b1f-9c60"} {
		_, err := ParseUUID("uuid", raw)
		if err == nil {
			t.Errorf("uuid %q should be rejected", raw)
			continue
		}
		var apiErr *ApiError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != 400 {
			t.Errorf("uuid %q: expected 400 ApiError, got %v", raw, err)
		}
	}
}

func TestFallback(t *testing.T) {
	got := Fallback(func() (int, error) { return 9, nil }, -1)
	if got != 9 {
		t.Errorf("success path: got %d, want 9", got)
	}

	got = Fallback(func() (int, error) { return 0, errors.New("boom") }, -1)
	if got != -1 {
		t.Errorf("failure path: got %d, want -1", got)
	}
}
