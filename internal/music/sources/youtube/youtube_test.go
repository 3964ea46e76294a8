package youtube

import (
	"testing"
	"time"
)

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ?t=5", "dQw4w9WgXcQ", true},
		{"https://music.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://soundcloud.com/artist/track", "", false},
		{"not a url", "", false},
	}

	for _, c := range cases {
		got, err := ExtractVideoID(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ExtractVideoID(%q) = %q, %v; want %q", c.in, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("ExtractVideoID(%q) expected error", c.in)
		}
	}
}

func TestParseClockDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"3:20", 3*time.Minute + 20*time.Second},
		{"1:05:20", time.Hour + 5*time.Minute + 20*time.Second},
		{"0:07", 7 * time.Second},
		{"LIVE", 0},
		{"", 0},
	}

	for _, c := range cases {
		if got := parseClockDuration(c.in); got != c.want {
			t.Errorf("parseClockDuration(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}
