// Package pricing fetches package price overrides from a remote price
// registry.
package pricing

import (
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"health-advisor/internal/logging"
)

const DefaultTimeout = 2 * time.Second

type priceResponse struct {
	Slug  string `json:"slug"`
	Price int64  `json:"price"`
}

// Registry looks up prices by package slug. Successful lookups are cached
// for the life of the Registry.
type Registry struct {
	baseURL string
	timeout time.Duration
	client  *fasthttp.Client
	cache   sync.Map
}

type Option func(*Registry)

// WithDial replaces the dialer, e.g. with an in-memory listener in tests.
func WithDial(dial func(addr string) (net.Conn, error)) Option {
	return func(r *Registry) { r.client.Dial = dial }
}

// New returns a registry client for baseURL. A zero timeout means
// DefaultTimeout.
func New(baseURL string, timeout time.Duration, opts ...Option) *Registry {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	r := &Registry{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			MaxIdleConnDuration: 90 * time.Second,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
		},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Prices returns the registry price for every slug in fallback. Slugs the
// registry cannot serve keep their fallback price and are not cached.
func (r *Registry) Prices(fallback map[string]int64) map[string]int64 {
	result := make(map[string]int64, len(fallback))

	var toFetch []string
	for slug, price := range fallback {
		if cached, ok := r.cache.Load(slug); ok {
			result[slug] = cached.(int64)
			continue
		}
		result[slug] = price
		toFetch = append(toFetch, slug)
	}

	if len(toFetch) == 0 {
		return result
	}

	// Fetch concurrently
	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, slug := range toFetch {
		wg.Add(1)
		go func(slug string) {
			defer wg.Done()
			price, err := r.fetch(slug)
			if err != nil {
				logging.Warn().Err(err).Str("slug", slug).Msg("price lookup failed, keeping catalog price")
				return
			}
			r.cache.Store(slug, price)
			mu.Lock()
			result[slug] = price
			mu.Unlock()
		}(slug)
	}
	wg.Wait()

	return result
}

func (r *Registry) fetch(slug string) (int64, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(r.baseURL + "/packages/" + slug)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := r.client.DoTimeout(req, resp, r.timeout); err != nil {
		return 0, err
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return 0, fmt.Errorf("registry returned %d", resp.StatusCode())
	}

	var pr priceResponse
	if err := json.Unmarshal(resp.Body(), &pr); err != nil {
		return 0, fmt.Errorf("decode price: %w", err)
	}
	if pr.Slug != "" && pr.Slug != slug {
		return 0, fmt.Errorf("registry answered for %q", pr.Slug)
	}
	if pr.Price < 0 {
		return 0, fmt.Errorf("negative price %d", pr.Price)
	}
	return pr.Price, nil
}
