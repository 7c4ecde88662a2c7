// Package metadata fetches package descriptions from CTAN.
package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://ctan.org"

var log = commonlog.GetLogger("texlab.metadata")

var (
	// ErrNotFound is returned when CTAN has no usable description
	ErrNotFound = fmt.Errorf("metadata not found")
)

// Metadata describes a component. Documentation is markdown.
type Metadata struct {
	Name          string
	Caption       string
	Documentation string
}

type Provider struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	flight  singleflight.Group

	mu    sync.Mutex
	cache map[string]*Metadata
}

type Option func(*Provider)

func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) { p.client = client }
}

// WithRateLimit bounds the number of requests sent to CTAN.
func WithRateLimit(every time.Duration, burst int) Option {
	return func(p *Provider) { p.limiter = rate.NewLimiter(rate.Every(every), burst) }
}

func NewProvider(baseURL string, opts ...Option) *Provider {
	p := &Provider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Every(time.Second), 4),
		cache:   make(map[string]*Metadata),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Get returns the metadata of the package name. Results, including
// misses, are cached for the lifetime of the provider.
func (p *Provider) Get(ctx context.Context, name string) (*Metadata, error) {
	p.mu.Lock()
	cached, ok := p.cache[name]
	p.mu.Unlock()
	if ok {
		if cached == nil {
			return nil, ErrNotFound
		}
		return cached, nil
	}

	result, err, _ := p.flight.Do(name, func() (any, error) {
		meta, err := p.fetch(ctx, name)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		p.mu.Lock()
		p.cache[name] = meta
		p.mu.Unlock()
		return meta, err
	})
	if err != nil {
		return nil, err
	}
	return result.(*Metadata), nil
}

type description struct {
	Language *string `json:"language"`
	Text     string  `json:"text"`
}

type pkg struct {
	Name         string          `json:"name"`
	Caption      string          `json:"caption"`
	Descriptions []description   `json:"descriptions"`
	Errors       json.RawMessage `json:"errors"`
}

func (p *Provider) fetch(ctx context.Context, name string) (*Metadata, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := p.baseURL + "/json/2.0/pkg/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", name, err)
	}
	log.Debugf("fetching %s", endpoint)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata of %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch metadata of %s: status %s", name, resp.Status)
	}

	var result pkg
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode metadata of %s: %w", name, err)
	}
	if len(result.Errors) > 0 && string(result.Errors) != "null" {
		return nil, ErrNotFound
	}

	for _, d := range result.Descriptions {
		if d.Language != nil {
			continue
		}
		doc, err := Markdown(d.Text)
		if err != nil {
			return nil, fmt.Errorf("failed to convert description of %s: %w", name, err)
		}
		return &Metadata{Name: name, Caption: result.Caption, Documentation: doc}, nil
	}
	return nil, ErrNotFound
}
