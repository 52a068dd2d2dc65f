// Package crates queries the crates.io API for published crate versions.
package crates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/net/http/httpproxy"

	"oreutils/internal/system"
	appver "oreutils/internal/version"
)

const (
	// DefaultHost is the public crates.io registry.
	DefaultHost = "https://crates.io"
	// DefaultTimeout bounds a single metadata request.
	DefaultTimeout = 10 * time.Second
)

var (
	// ErrNoCrate means the registry does not know the crate (HTTP 404).
	ErrNoCrate = errors.New("no crate found")
	// ErrBadResponse covers transport failures, timeouts, non-2xx statuses
	// and bodies that do not decode.
	ErrBadResponse = errors.New("bad response")
	// ErrNoVersions means no stable, non-yanked version was published.
	ErrNoVersions = errors.New("crate has no release versions")
)

// VersionRecord is one published version of a crate.
type VersionRecord struct {
	Num    *semver.Version
	Yanked bool
}

// wireRecord mirrors the JSON; num is parsed strictly afterwards.
type wireRecord struct {
	Num    *string `json:"num"`
	Yanked bool    `json:"yanked"`
}

// Client fetches crate metadata from a registry host.
type Client struct {
	host       string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHost points the client at another registry host (tests, mirrors).
func WithHost(host string) Option {
	return func(c *Client) {
		if strings.TrimSpace(host) != "" {
			c.host = strings.TrimRight(host, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New returns a Client that honors HTTP_PROXY/HTTPS_PROXY/NO_PROXY as set
// when New is called. The timeout is applied to a copy of any client
// passed with WithHTTPClient.
func New(opts ...Option) *Client {
	c := &Client{host: DefaultHost, timeout: DefaultTimeout}
	for _, o := range opts {
		o(c)
	}
	var hc http.Client
	if c.httpClient != nil {
		hc = *c.httpClient
	} else {
		hc.Transport = &http.Transport{Proxy: envProxy()}
	}
	hc.Timeout = c.timeout
	c.httpClient = &hc
	return c
}

// envProxy resolves proxies from the current environment. Unlike
// http.ProxyFromEnvironment it does not cache the first lookup.
func envProxy() func(*http.Request) (*url.URL, error) {
	proxy := httpproxy.FromEnvironment().ProxyFunc()
	return func(r *http.Request) (*url.URL, error) {
		return proxy(r.URL)
	}
}

// LatestVersion returns the first non-yanked, non-prerelease version in
// registry order.
func (c *Client) LatestVersion(ctx context.Context, name string) (*semver.Version, error) {
	vs, err := c.Versions(ctx, name)
	if err != nil {
		return nil, err
	}
	return Latest(vs)
}

// Latest picks the latest stable version out of an already fetched list.
func Latest(vs []VersionRecord) (*semver.Version, error) {
	for _, v := range vs {
		if v.Num == nil || v.Num.Prerelease() != "" {
			continue
		}
		if !v.Yanked {
			return v.Num, nil
		}
	}
	return nil, ErrNoVersions
}

// Versions returns every version record of a crate, newest first as
// reported by the registry.
func (c *Client) Versions(ctx context.Context, name string) ([]VersionRecord, error) {
	u := fmt.Sprintf("%s/api/v1/crates/%s", c.host, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	req.Header.Set("Accept", "application/json")
	// crates.io rejects requests without a descriptive agent.
	req.Header.Set("User-Agent", "oreutils/"+appver.AppVersion)

	system.Logger.Debug("querying registry", "url", u)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoCrate
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: registry returned status %d", ErrBadResponse, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrBadResponse, err)
	}
	var data struct {
		Versions *[]wireRecord `json:"versions"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if data.Versions == nil {
		return nil, fmt.Errorf("%w: missing versions", ErrBadResponse)
	}
	out := make([]VersionRecord, 0, len(*data.Versions))
	for _, w := range *data.Versions {
		if w.Num == nil {
			return nil, fmt.Errorf("%w: version record without num", ErrBadResponse)
		}
		v, err := semver.StrictNewVersion(*w.Num)
		if err != nil {
			return nil, fmt.Errorf("%w: num %q: %v", ErrBadResponse, *w.Num, err)
		}
		out = append(out, VersionRecord{Num: v, Yanked: w.Yanked})
	}
	return out, nil
}
