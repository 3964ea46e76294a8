package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"tocadiscos/internal/music/sources"
	"tocadiscos/internal/music/sources/soundcloud"
	"tocadiscos/internal/music/sources/youtube"
	"tocadiscos/internal/music/sources/ytmusic"
	"tocadiscos/internal/music/stream"
)

var (
	ErrUnknownProvider = errors.New("no stream strategy for provider")
	ErrNoFallbackMatch = errors.New("no fallback match found on video platform")
)

// StreamFunc opens a raw PCM stream for one track. The cleanup func releases
// any helper processes and must be called after the stream is drained.
type StreamFunc func(ctx context.Context, t sources.Track) (io.ReadCloser, func(), error)

// Resolver owns the per-provider search adapters and the stream strategy
// table keyed by provider.
type Resolver struct {
	searchers  map[sources.Provider]sources.Searcher
	strategies map[sources.Provider]StreamFunc
	log        zerolog.Logger
}

func New(log zerolog.Logger) *Resolver {
	r := &Resolver{
		searchers:  make(map[sources.Provider]sources.Searcher),
		strategies: make(map[sources.Provider]StreamFunc),
		log:        log.With().Str("component", "resolver").Logger(),
	}

	for _, s := range []sources.Searcher{youtube.New(), ytmusic.New(), soundcloud.New()} {
		r.searchers[s.Provider()] = s
	}

	r.strategies[sources.ProviderYouTube] = func(ctx context.Context, t sources.Track) (io.ReadCloser, func(), error) {
		return stream.OpenYouTube(ctx, t.URL)
	}
	r.strategies[sources.ProviderSoundCloud] = func(ctx context.Context, t sources.Track) (io.ReadCloser, func(), error) {
		return stream.OpenYTDLP(ctx, t.URL)
	}
	// Metadata-service items have no direct audio stream; re-resolve on the
	// video platform by title and stream the top hit.
	r.strategies[sources.ProviderYTMusic] = r.openViaFallback

	return r
}

// OpenStream resolves a track to a streamable PCM resource using the
// strategy registered for its provider.
func (r *Resolver) OpenStream(ctx context.Context, t sources.Track) (io.ReadCloser, func(), error) {
	strategy, ok := r.strategies[t.Provider]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownProvider, t.Provider)
	}
	return strategy(ctx, t)
}

// openViaFallback searches the display title on the video platform and
// streams the first result. Pasted catalog URLs carry no title; those are
// re-resolved through their native ID directly.
func (r *Resolver) openViaFallback(ctx context.Context, t sources.Track) (io.ReadCloser, func(), error) {
	if t.Title == "" && t.NativeID != "" {
		strategy := r.strategies[sources.ProviderYouTube]
		return strategy(ctx, sources.Track{
			URL:      youtube.WatchURL(t.NativeID),
			Provider: sources.ProviderYouTube,
			NativeID: t.NativeID,
		})
	}

	yt, ok := r.searchers[sources.ProviderYouTube]
	if !ok {
		return nil, nil, ErrNoFallbackMatch
	}

	results, err := yt.Search(ctx, t.Title, 1)
	if err != nil {
		return nil, nil, fmt.Errorf("fallback search failed: %w", err)
	}
	if len(results) == 0 {
		return nil, nil, fmt.Errorf("%w: %q", ErrNoFallbackMatch, t.Title)
	}

	r.log.Debug().
		Str("title", t.Title).
		Str("fallback_url", results[0].URL).
		Msg("resolved metadata track via video platform")

	strategy := r.strategies[sources.ProviderYouTube]
	return strategy(ctx, results[0])
}

// Search queries a single provider.
func (r *Resolver) Search(ctx context.Context, p sources.Provider, query string, limit int) ([]sources.Track, error) {
	s, ok := r.searchers[p]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", p)
	}
	return s.Search(ctx, query, limit)
}

// Providers lists the registered search providers in a stable order.
func (r *Resolver) Providers() []sources.Provider {
	order := []sources.Provider{sources.ProviderYouTube, sources.ProviderYTMusic, sources.ProviderSoundCloud}
	out := make([]sources.Provider, 0, len(order))
	for _, p := range order {
		if _, ok := r.searchers[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
