// Package tvmaze fetches shows and episodes from a TVMaze compatible listings API.
package tvmaze

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/epibrowse/epibrowse/auth"
	"github.com/epibrowse/epibrowse/key"
	"github.com/epibrowse/epibrowse/log"
	"github.com/epibrowse/epibrowse/network"
	"github.com/epibrowse/epibrowse/source"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// HTTP overrides the client built by the network package.
	HTTP *http.Client
	// Cache keeps decoded responses on disk for CacheLifetime.
	Cache         bool
	CacheLifetime time.Duration
}

// Client talks to the listings API. It is safe for concurrent use.
type Client struct {
	base    string
	timeout time.Duration
	http    *http.Client
	cache   *responseCache
}

// New creates a client. A zero timeout means requests are bound only by the caller's context.
func New(options Options) *Client {
	client := &Client{
		base:    strings.TrimRight(options.BaseURL, "/"),
		timeout: options.Timeout,
		http:    options.HTTP,
	}

	if client.http == nil {
		client.http = network.New(network.Options{})
	}

	if options.Cache {
		client.cache = newResponseCache(options.CacheLifetime)
	}

	return client
}

// FromConfig creates a client from the current configuration and the stored credential.
func FromConfig() *Client {
	timeout := time.Duration(viper.GetInt(key.APITimeoutSeconds)) * time.Second
	return New(Options{
		BaseURL: viper.GetString(key.APIBaseURL),
		Timeout: timeout,
		HTTP: network.New(network.Options{
			Impersonate:   viper.GetBool(key.APIImpersonateBrowser),
			Authorization: auth.Authorization(),
		}),
		Cache:         viper.GetBool(key.APICache),
		CacheLifetime: time.Duration(viper.GetInt(key.APICacheHours)) * time.Hour,
	})
}

// Shows returns the first page of shows sorted by name. Failures are logged
// and yield an empty list.
func (c *Client) Shows(ctx context.Context) []*source.Show {
	const cacheKey = "page-0"

	if c.cache != nil {
		if cached, ok := c.cache.shows.Get(cacheKey).Get(); ok {
			log.Info("using cached show list")
			return cached
		}
	}

	var shows []*source.Show
	if err := c.get(ctx, "/shows", url.Values{"page": {"0"}}, &shows); err != nil {
		log.Errorf("failed to load shows: %v", err)
		return []*source.Show{}
	}

	shows = lo.Filter(shows, func(s *source.Show, _ int) bool { return s != nil })
	sort.SliceStable(shows, func(i, j int) bool {
		return strings.ToLower(shows[i].Name) < strings.ToLower(shows[j].Name)
	})

	if c.cache != nil {
		if err := c.cache.shows.Set(cacheKey, shows); err != nil {
			log.Warnf("failed to cache show list: %v", err)
		}
	}

	return shows
}

// Episodes returns every episode of the show in API order. A show without
// episodes is an empty list, not an error. Failures are *FetchError.
func (c *Client) Episodes(ctx context.Context, showID int) ([]*source.Episode, error) {
	if c.cache != nil {
		if cached, ok := c.cache.episodes.Get(showID).Get(); ok {
			log.WithField("show", showID).Info("using cached episodes")
			return cached, nil
		}
	}

	var episodes []*source.Episode
	if err := c.get(ctx, "/shows/"+strconv.Itoa(showID)+"/episodes", nil, &episodes); err != nil {
		return nil, err
	}

	episodes = lo.Filter(episodes, func(e *source.Episode, _ int) bool { return e != nil })
	if episodes == nil {
		episodes = []*source.Episode{}
	}

	if c.cache != nil {
		if err := c.cache.episodes.Set(showID, episodes); err != nil {
			log.Warnf("failed to cache episodes: %v", err)
		}
	}

	return episodes, nil
}

// Show fetches a single show by id.
func (c *Client) Show(ctx context.Context, id int) (*source.Show, error) {
	var show source.Show
	if err := c.get(ctx, "/shows/"+strconv.Itoa(id), nil, &show); err != nil {
		return nil, err
	}

	return &show, nil
}

// SearchShows returns shows matching the query, best match first.
func (c *Client) SearchShows(ctx context.Context, query string) ([]*source.Show, error) {
	var results []*source.SearchResult
	if err := c.get(ctx, "/search/shows", url.Values{"q": {query}}, &results); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return lo.FilterMap(results, func(r *source.SearchResult, _ int) (*source.Show, bool) {
		if r == nil || r.Show == nil {
			return nil, false
		}
		return r.Show, true
	}), nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	address := c.base + path
	if len(query) > 0 {
		address += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return &FetchError{Kind: TransportFailure, URL: address, Err: err}
	}

	log.WithField("url", address).Info("sending request")
	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Kind: TransportFailure, URL: address, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{
			Kind:       StatusFailure,
			StatusCode: resp.StatusCode,
			URL:        address,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if err = json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &FetchError{Kind: DecodeFailure, StatusCode: resp.StatusCode, URL: address, Err: err}
	}

	return nil
}
