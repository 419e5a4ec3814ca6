package duration

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "00s"},
		{"seconds only", 5 * time.Second, "05s"},
		{"minutes show seconds", 90 * time.Second, "01m 30s"},
		{"hours show lower units", time.Hour, "01h 00m 00s"},
		{"carry normalized", 90 * time.Minute, "01h 30m 00s"},
		{"days show everything", 24 * time.Hour, "1d 00h 00m 00s"},
		{"mixed", 24*time.Hour + 2*time.Hour + 3*time.Minute + 4*time.Second, "1d 02h 03m 04s"},
		{"days unpadded", 12 * 24 * time.Hour, "12d 00h 00m 00s"},
		{"sub-second truncated", 1500 * time.Millisecond, "01s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.d); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

// Display-time carry normalization: a duration entered as 90 minutes
// renders as hours and minutes even though storage is flat.
func TestFormat_RoundTrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0:90", "01h 30m 00s"},
		{"90", "01m 30s"},
		{"1:2:3:4", "1d 02h 03m 04s"},
		{"3600", "01h 00m 00s"},
		{"0:0:0:59", "59s"},
		{"25:0:0", "1d 01h 00m 00s"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got := Format(d); got != tt.want {
				t.Errorf("Format(Parse(%q)) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
