package youtube

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/ppalone/ytsearch"
	"golang.org/x/time/rate"

	"tocadiscos/internal/music/sources"
)

// Source searches the video platform via its public search endpoint.
type Source struct {
	client  *ytsearch.Client
	limiter *rate.Limiter
}

func New() *Source {
	return &Source{
		client:  ytsearch.NewClient(nil),
		limiter: rate.NewLimiter(rate.Every(time.Second), 4),
	}
}

func (s *Source) Provider() sources.Provider { return sources.ProviderYouTube }

func (s *Source) Search(ctx context.Context, query string, limit int) ([]sources.Track, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	res, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	tracks := make([]sources.Track, 0, limit)
	for _, v := range res.Results {
		if v.VideoID == "" {
			continue
		}
		tracks = append(tracks, sources.Track{
			Title:        v.Title,
			URL:          WatchURL(v.VideoID),
			ThumbnailURL: ThumbnailURL(v.VideoID),
			Duration:     parseClockDuration(v.Duration),
			Provider:     sources.ProviderYouTube,
			NativeID:     v.VideoID,
		})
		if len(tracks) >= limit {
			break
		}
	}
	return tracks, nil
}

func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

func ThumbnailURL(videoID string) string {
	return "https://i.ytimg.com/vi/" + videoID + "/mqdefault.jpg"
}

// TrackFromURL builds a descriptor for a pasted video URL. The title is left
// empty; presentation layers fall back to the URL.
func TrackFromURL(input string) (sources.Track, error) {
	id, err := ExtractVideoID(input)
	if err != nil {
		return sources.Track{}, err
	}
	return sources.Track{
		URL:          WatchURL(id),
		ThumbnailURL: ThumbnailURL(id),
		Provider:     sources.ProviderYouTube,
		NativeID:     id,
	}, nil
}

// IsVideoURL reports whether input points at a single video page.
func IsVideoURL(input string) bool {
	_, err := ExtractVideoID(input)
	return err == nil
}

// ExtractVideoID pulls the video ID out of watch/short URLs.
func ExtractVideoID(url string) (string, error) {
	switch {
	case strings.Contains(url, "youtu.be/"):
		parts := strings.Split(url, "youtu.be/")
		if len(parts) != 2 {
			return "", errors.New("invalid YouTube URL format")
		}
		return strings.Split(parts[1], "?")[0], nil

	case strings.Contains(url, "youtube.com/watch?v="), strings.Contains(url, "music.youtube.com/watch?v="):
		parts := strings.Split(url, "v=")
		if len(parts) < 2 {
			return "", errors.New("invalid YouTube URL format")
		}
		return strings.Split(parts[len(parts)-1], "&")[0], nil

	default:
		return "", errors.New("unsupported URL format")
	}
}

// parseClockDuration parses durations like "3:20" or "1:05:20".
// Returns 0 when the string is not in clock form.
func parseClockDuration(s string) time.Duration {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}
	var total int
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0
		}
		total = total*60 + n
	}
	return time.Duration(total) * time.Second
}
