package twoiplib

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"
	"sync"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/time/rate"
)

// Version of the library. It is also used to build the default
// User-Agent header.
const Version = "1.0.0"

// Defaults and bounds applied by New.
const (
	DefaultBaseURL     = "https://api.2ip.ua"
	DefaultConnections = 10
	MaxConnections     = 100
	DefaultTimeout     = 30 * time.Second
	MinTimeout         = time.Second
	MaxTimeout         = 2 * time.Minute

	maxIdleConnections = 5
	idleConnTimeout    = 90 * time.Second
)

// Options configure a Client instance. The zero value is usable and
// gives an anonymous client with default settings.
type Options struct {
	// Key is the API key sent with every request. Lookups without a
	// key work but are rate limited upstream.
	Key string

	// BaseURL overrides the API endpoint.
	BaseURL string

	// Connections caps concurrently open connections within a batch.
	Connections int

	// Timeout bounds every single lookup request.
	Timeout time.Duration

	// HTTP2 enables HTTP/2 support on the built-in transport.
	HTTP2 bool

	// Strict makes address normalization fail on the first invalid
	// input instead of skipping it.
	Strict bool

	// UserAgent overrides the User-Agent header.
	UserAgent string

	// RateLimitInterval sets the minimum interval between outgoing
	// requests. Zero disables client side rate limiting.
	RateLimitInterval time.Duration

	// RateLimitBurst allows short bursts above the rate limit.
	RateLimitBurst int

	// Cache keeps successful lookup records across batches.
	Cache Cache

	// Logger receives notifications about skipped addresses and
	// failed lookups.
	Logger Logger

	// HTTPClient replaces the built-in per-batch transport. Mostly
	// useful in tests.
	HTTPClient HTTPClient
}

// Client is a main entity of the library. It owns its configuration
// and usage counters, nothing is shared between instances.
type Client struct {
	baseURL     *url.URL
	key         string
	connections int
	timeout     time.Duration
	http2       bool
	strict      bool
	userAgent   string
	limiter     *rate.Limiter
	cache       Cache
	logger      Logger
	httpClient  HTTPClient
	stats       map[LookupKind]*UsageStats

	rwmutex sync.RWMutex
	closed  bool
}

// New creates a Client instance from the given options. Out of range
// connection and timeout settings are clamped into their bounds.
func New(opts Options) (*Client, error) {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("cannot parse base url: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base url scheme %q", parsed.Scheme)
	}

	connections := opts.Connections

	switch {
	case connections <= 0:
		connections = DefaultConnections
	case connections > MaxConnections:
		connections = MaxConnections
	}

	timeout := opts.Timeout

	switch {
	case timeout == 0:
		timeout = DefaultTimeout
	case timeout < MinTimeout:
		timeout = MinTimeout
	case timeout > MaxTimeout:
		timeout = MaxTimeout
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "twoip-go/" + Version
	}

	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	burst := opts.RateLimitBurst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL:     parsed,
		key:         opts.Key,
		connections: connections,
		timeout:     timeout,
		http2:       opts.HTTP2,
		strict:      opts.Strict,
		userAgent:   userAgent,
		limiter:     rate.NewLimiter(rate.Every(opts.RateLimitInterval), burst),
		cache:       opts.Cache,
		logger:      logger,
		httpClient:  opts.HTTPClient,
		stats: map[LookupKind]*UsageStats{
			LookupGeo:      {Kind: LookupGeo},
			LookupProvider: {Kind: LookupProvider},
		},
	}, nil
}

// Geo performs geo lookups for the given address strings.
func (c *Client) Geo(ctx context.Context, inputs []string) (GeoResults, error) {
	addrs, err := NormalizeAddresses(inputs, c.strict, c.logger)
	if err != nil {
		return nil, err
	}

	return c.GeoAddrs(ctx, addrs)
}

// GeoAddrs performs geo lookups for already validated addresses.
// Results are positionally aligned with the deduplicated input, failed
// addresses carry their error instead of failing the whole batch.
func (c *Client) GeoAddrs(ctx context.Context, addrs []netip.Addr) (GeoResults, error) {
	c.rwmutex.RLock()
	defer c.rwmutex.RUnlock()

	if c.closed {
		return nil, ErrClientClosed
	}

	addrs = DedupAddrs(addrs)
	records := make([]GeoResult, len(addrs))
	missing := make([]netip.Addr, 0, len(addrs))
	missingIndexes := make([]int, 0, len(addrs))

	for i, v := range addrs {
		if data, ok := c.cacheGet(LookupGeo, v); ok {
			record := GeoResult{}

			if err := json.Unmarshal(data, &record); err == nil {
				records[i] = record
				c.stats[LookupGeo].CacheHit()

				continue
			}
		}

		missing = append(missing, v)
		missingIndexes = append(missingIndexes, i)
	}

	for i, outcome := range c.runBatch(ctx, LookupGeo, missing) {
		record := parseGeo(outcome)
		records[missingIndexes[i]] = record

		c.finishLookup(LookupGeo, record.Result, record)
	}

	return NewGeoResults(records), nil
}

// Provider performs provider lookups for the given address strings.
func (c *Client) Provider(ctx context.Context, inputs []string) (ProviderResults, error) {
	addrs, err := NormalizeAddresses(inputs, c.strict, c.logger)
	if err != nil {
		return nil, err
	}

	return c.ProviderAddrs(ctx, addrs)
}

// ProviderAddrs performs provider lookups for already validated
// addresses. Results are positionally aligned with the deduplicated
// input, failed addresses carry their error instead of failing the
// whole batch.
func (c *Client) ProviderAddrs(ctx context.Context, addrs []netip.Addr) (ProviderResults, error) {
	c.rwmutex.RLock()
	defer c.rwmutex.RUnlock()

	if c.closed {
		return nil, ErrClientClosed
	}

	addrs = DedupAddrs(addrs)
	records := make([]ProviderResult, len(addrs))
	missing := make([]netip.Addr, 0, len(addrs))
	missingIndexes := make([]int, 0, len(addrs))

	for i, v := range addrs {
		if data, ok := c.cacheGet(LookupProvider, v); ok {
			record := ProviderResult{}

			if err := json.Unmarshal(data, &record); err == nil {
				records[i] = record
				c.stats[LookupProvider].CacheHit()

				continue
			}
		}

		missing = append(missing, v)
		missingIndexes = append(missingIndexes, i)
	}

	for i, outcome := range c.runBatch(ctx, LookupProvider, missing) {
		record := parseProvider(outcome)
		records[missingIndexes[i]] = record

		c.finishLookup(LookupProvider, record.Result, record)
	}

	return NewProviderResults(records), nil
}

// UsageStats returns per-kind usage counters of this client. Counters
// are live, they keep updating as the client is used.
func (c *Client) UsageStats() map[LookupKind]*UsageStats {
	rv := make(map[LookupKind]*UsageStats, len(c.stats))

	for k, v := range c.stats {
		rv[k] = v
	}

	return rv
}

// Close marks the client as closed. Lookups in flight finish first,
// further ones fail with ErrClientClosed.
func (c *Client) Close() {
	c.rwmutex.Lock()
	defer c.rwmutex.Unlock()

	c.closed = true
}

func (c *Client) cacheGet(kind LookupKind, addr netip.Addr) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}

	return c.cache.Get(cacheKey(kind, addr))
}

// finishLookup updates counters and stores successful records in the
// cache. Failed records are never cached so the next batch retries
// them.
func (c *Client) finishLookup(kind LookupKind, base Result, record interface{}) {
	ok := base.Success()

	c.stats[kind].Used(ok)

	if !ok {
		c.logger.LookupError(base.IP, kind, errors.New(base.Err))

		return
	}

	if c.cache == nil {
		return
	}

	if data, err := json.Marshal(record); err == nil {
		c.cache.Add(cacheKey(kind, base.IP), data)
	}
}

func (c *Client) acquireHTTPClient() (HTTPClient, func()) {
	if c.httpClient != nil {
		return c.httpClient, func() {}
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxConnsPerHost:     c.connections,
		MaxIdleConns:        maxIdleConnections,
		MaxIdleConnsPerHost: maxIdleConnections,
		IdleConnTimeout:     idleConnTimeout,
	}

	if c.http2 {
		http2.ConfigureTransport(transport) // nolint: errcheck
	}

	client := httpClient{
		client: &http.Client{
			Timeout:   c.timeout,
			Transport: transport,
		},
		userAgent: c.userAgent,
		limiter:   c.limiter,
	}

	return client, transport.CloseIdleConnections
}
