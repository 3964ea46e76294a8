package soundcloud

import (
	"context"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"tocadiscos/internal/music/sources"
)

// Source finds audio-host tracks. There is no public search API, so lookup
// goes through a site-scoped web search (see resolver.go).
type Source struct {
	resolver *Resolver
	limiter  *rate.Limiter
}

func New() *Source {
	return &Source{
		resolver: NewResolver(),
		limiter:  rate.NewLimiter(rate.Every(2*time.Second), 2),
	}
}

func (s *Source) Provider() sources.Provider { return sources.ProviderSoundCloud }

func IsTrackURL(input string) bool {
	return strings.Contains(input, "soundcloud.com/")
}

// TrackFromURL builds a descriptor for a pasted track page URL.
func TrackFromURL(input string) sources.Track {
	return sources.Track{
		Title:    titleFromURL(input, ""),
		URL:      input,
		Provider: sources.ProviderSoundCloud,
	}
}

func (s *Source) Search(ctx context.Context, query string, limit int) ([]sources.Track, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	urls, err := s.resolver.SearchTrackURLs(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	tracks := make([]sources.Track, 0, len(urls))
	for _, u := range urls {
		tracks = append(tracks, sources.Track{
			Title:    titleFromURL(u, query),
			URL:      u,
			Provider: sources.ProviderSoundCloud,
		})
	}
	return tracks, nil
}

// titleFromURL turns ".../some-artist/my-track-name" into "some artist - my track name".
// Falls back to the query when the URL has no usable slug.
func titleFromURL(trackURL, fallback string) string {
	trimmed := strings.TrimSuffix(trackURL, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 {
		return fallback
	}
	artist := strings.ReplaceAll(parts[len(parts)-2], "-", " ")
	title := strings.ReplaceAll(parts[len(parts)-1], "-", " ")
	if title == "" || strings.Contains(artist, ".") {
		return fallback
	}
	return artist + " - " + title
}
