package pathkit

import (
	"errors"
	"testing"
)

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"0", 0, false},
		{"5", 5, false},
		{"1024", 1024, false},
		{"1K", 1024, false},
		{"1k", 1024, false},
		{"10M", 10 * 1024 * 1024, false},
		{"10m", 10 * 1024 * 1024, false},
		{"2G", 2 * 1024 * 1024 * 1024, false},
		{"", 0, true},
		{"M", 0, true},
		{"wrongM", 0, true},
		{"10L", 0, true},
		{"1.5M", 0, true},
		{"M10", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseByteSize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseByteSize(%q) = %d, want error", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidSize) {
					t.Errorf("ParseByteSize(%q) error = %v, want ErrInvalidSize", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseByteSize(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseByteSize(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
