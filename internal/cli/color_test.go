package cli

import "testing"

func TestStyles_Plain(t *testing.T) {
	cfg := &Config{Mode: ModePlain}

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"Error", cfg.Error},
		{"Note", cfg.Note},
		{"Help", cfg.Help},
		{"Code", cfg.Code},
		{"Header", cfg.Header},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn("text"); got != "text" {
				t.Errorf("%s(text) = %q, want plain text", tt.name, got)
			}
		})
	}

	if cfg.Pipe() != "|" {
		t.Errorf("Pipe() = %q, want |", cfg.Pipe())
	}
}
