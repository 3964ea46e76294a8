package resolver

import (
	"context"
	"sync"

	"tocadiscos/internal/music/sources"
)

// SearchAll fans the query out to every provider in parallel. Provider
// failures degrade to empty result lists; the map always has an entry per
// registered provider.
func (r *Resolver) SearchAll(ctx context.Context, query string, limit int) map[sources.Provider][]sources.Track {
	results := make(map[sources.Provider][]sources.Track, len(r.searchers))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for p, s := range r.searchers {
		wg.Add(1)
		go func(p sources.Provider, s sources.Searcher) {
			defer wg.Done()
			tracks, err := s.Search(ctx, query, limit)
			if err != nil {
				r.log.Warn().Err(err).Str("provider", string(p)).Msg("provider search failed")
				tracks = nil
			}
			mu.Lock()
			results[p] = tracks
			mu.Unlock()
		}(p, s)
	}
	wg.Wait()

	return results
}
