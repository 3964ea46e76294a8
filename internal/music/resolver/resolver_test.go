package resolver

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"tocadiscos/internal/music/sources"
)

type fakeSearcher struct {
	provider sources.Provider
	results  []sources.Track
	err      error
	queries  []string
}

func (f *fakeSearcher) Provider() sources.Provider { return f.provider }

func (f *fakeSearcher) Search(_ context.Context, query string, _ int) ([]sources.Track, error) {
	f.queries = append(f.queries, query)
	return f.results, f.err
}

func newTestResolver() *Resolver {
	return &Resolver{
		searchers:  make(map[sources.Provider]sources.Searcher),
		strategies: make(map[sources.Provider]StreamFunc),
		log:        zerolog.Nop(),
	}
}

func TestOpenStreamUnknownProvider(t *testing.T) {
	r := newTestResolver()
	_, _, err := r.OpenStream(context.Background(), sources.Track{Provider: "tape-deck"})
	if !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider got %v", err)
	}
}

func TestMetadataFallbackResolvesTopHit(t *testing.T) {
	r := newTestResolver()
	hit := sources.Track{Title: "X (official)", URL: "https://www.youtube.com/watch?v=abc", Provider: sources.ProviderYouTube}
	ytSearch := &fakeSearcher{provider: sources.ProviderYouTube, results: []sources.Track{hit}}
	r.searchers[sources.ProviderYouTube] = ytSearch

	var opened []string
	r.strategies[sources.ProviderYouTube] = func(_ context.Context, tr sources.Track) (io.ReadCloser, func(), error) {
		opened = append(opened, tr.URL)
		return io.NopCloser(strings.NewReader("pcm")), func() {}, nil
	}
	r.strategies[sources.ProviderYTMusic] = r.openViaFallback

	meta := sources.Track{Title: "X", Provider: sources.ProviderYTMusic, NativeID: "m1"}
	stream, cleanup, err := r.OpenStream(context.Background(), meta)
	if err != nil {
		t.Fatalf("open err: %v", err)
	}
	defer stream.Close()
	cleanup()

	if len(ytSearch.queries) != 1 || ytSearch.queries[0] != "X" {
		t.Errorf("fallback searched %v, want [X]", ytSearch.queries)
	}
	if len(opened) != 1 || opened[0] != hit.URL {
		t.Errorf("opened %v, want top hit %q", opened, hit.URL)
	}
}

func TestMetadataFallbackNoResults(t *testing.T) {
	r := newTestResolver()
	r.searchers[sources.ProviderYouTube] = &fakeSearcher{provider: sources.ProviderYouTube}
	r.strategies[sources.ProviderYTMusic] = r.openViaFallback

	_, _, err := r.OpenStream(context.Background(), sources.Track{Title: "nothing", Provider: sources.ProviderYTMusic})
	if !errors.Is(err, ErrNoFallbackMatch) {
		t.Fatalf("expected ErrNoFallbackMatch got %v", err)
	}
}

func TestSearchAllSoftFails(t *testing.T) {
	r := newTestResolver()
	r.searchers[sources.ProviderYouTube] = &fakeSearcher{
		provider: sources.ProviderYouTube,
		results:  []sources.Track{{Title: "yt hit"}},
	}
	r.searchers[sources.ProviderSoundCloud] = &fakeSearcher{
		provider: sources.ProviderSoundCloud,
		err:      errors.New("provider down"),
	}

	results := r.SearchAll(context.Background(), "anything", 3)
	if len(results) != 2 {
		t.Fatalf("expected entries for both providers, got %d", len(results))
	}
	if len(results[sources.ProviderYouTube]) != 1 {
		t.Errorf("healthy provider results lost: %v", results[sources.ProviderYouTube])
	}
	if len(results[sources.ProviderSoundCloud]) != 0 {
		t.Errorf("failed provider should yield empty results, got %v", results[sources.ProviderSoundCloud])
	}
}
