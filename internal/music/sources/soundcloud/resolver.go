package soundcloud

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

var (
	trackLinkRegex  = regexp.MustCompile(`(?s)<a class="result__url"[^>]*>\s*(soundcloud\.com/[^<]+)\s*</a>`)
	ErrNoTrackMatch = errors.New("no track found for the given query")
)

// Resolver locates track pages through a site-scoped DuckDuckGo search.
type Resolver struct {
	SearchURL string
	Client    *http.Client
}

func NewResolver() *Resolver {
	return &Resolver{
		SearchURL: "https://duckduckgo.com/html/",
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (r *Resolver) SearchTrackURLs(ctx context.Context, query string, limit int) ([]string, error) {
	searchURL := fmt.Sprintf("%s?q=site:soundcloud.com+%s", r.SearchURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("track search failed with status code %v", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	matches := trackLinkRegex.FindAllStringSubmatch(string(body), limit)
	if len(matches) == 0 {
		return nil, ErrNoTrackMatch
	}

	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		urls = append(urls, "https://"+m[1])
	}
	return urls, nil
}
