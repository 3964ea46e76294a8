package sources

import (
	"context"
	"time"
)

// Provider identifies an external content source.
type Provider string

const (
	ProviderYouTube    Provider = "youtube"
	ProviderYTMusic    Provider = "ytmusic"
	ProviderSoundCloud Provider = "soundcloud"
)

func (p Provider) DisplayName() string {
	switch p {
	case ProviderYouTube:
		return "YouTube"
	case ProviderYTMusic:
		return "YouTube Music"
	case ProviderSoundCloud:
		return "SoundCloud"
	}
	return string(p)
}

// Track describes one playable item. Immutable once created.
type Track struct {
	Title        string
	URL          string
	ThumbnailURL string
	Duration     time.Duration // 0 means unknown
	Provider     Provider
	NativeID     string // provider-native ID, used to re-resolve ytmusic items
}

// Searcher turns a free-text query into tracks from one provider.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]Track, error)
	Provider() Provider
}
