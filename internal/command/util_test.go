package command

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "N/A"},
		{7 * time.Second, "0:07"},
		{3*time.Minute + 20*time.Second, "3:20"},
		{time.Hour + 5*time.Minute + 3*time.Second, "1:05:03"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.in); got != c.want {
			t.Errorf("FormatDuration(%v) = %q want %q", c.in, got, c.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("a very long track title", 10); got != "a very ..." {
		t.Errorf("got %q", got)
	}
}

func TestTrackLabel(t *testing.T) {
	if got := TrackLabel("", "https://x"); got != "https://x" {
		t.Errorf("got %q", got)
	}
	if got := TrackLabel("Title", "https://x"); got != "Title" {
		t.Errorf("got %q", got)
	}
}
