package ytmusic

import (
	"context"
	"strings"
	"time"

	"github.com/raitonoberu/ytmusic"
	"golang.org/x/time/rate"

	"tocadiscos/internal/music/sources"
	"tocadiscos/internal/music/sources/youtube"
)

// Source searches the music-metadata catalog. Items found here carry no
// directly streamable audio; playback re-resolves them on the video platform.
type Source struct {
	limiter *rate.Limiter
}

func New() *Source {
	return &Source{
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

func (s *Source) Provider() sources.Provider { return sources.ProviderYTMusic }

// IsTrackURL reports whether input is a music-catalog watch URL.
func IsTrackURL(input string) bool {
	return strings.Contains(input, "music.youtube.com/watch")
}

// TrackFromURL builds a descriptor for a pasted catalog URL. No metadata is
// fetched; the native ID is enough to re-resolve the item for playback.
func TrackFromURL(input string) (sources.Track, error) {
	id, err := youtube.ExtractVideoID(input)
	if err != nil {
		return sources.Track{}, err
	}
	return sources.Track{
		URL:          "https://music.youtube.com/watch?v=" + id,
		ThumbnailURL: "https://i.ytimg.com/vi/" + id + "/mqdefault.jpg",
		Provider:     sources.ProviderYTMusic,
		NativeID:     id,
	}, nil
}

func (s *Source) Search(ctx context.Context, query string, limit int) ([]sources.Track, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	search := ytmusic.TrackSearch(query)
	res, err := search.Next()
	if err != nil {
		return nil, err
	}

	tracks := make([]sources.Track, 0, limit)
	for _, tr := range res.Tracks {
		if tr.VideoID == "" {
			continue
		}
		title := tr.Title
		if len(tr.Artists) > 0 {
			title = tr.Artists[0].Name + " - " + tr.Title
		}
		tracks = append(tracks, sources.Track{
			Title:        title,
			URL:          "https://music.youtube.com/watch?v=" + tr.VideoID,
			ThumbnailURL: "https://i.ytimg.com/vi/" + tr.VideoID + "/mqdefault.jpg",
			Provider:     sources.ProviderYTMusic,
			NativeID:     tr.VideoID,
		})
		if len(tracks) >= limit {
			break
		}
	}
	return tracks, nil
}
