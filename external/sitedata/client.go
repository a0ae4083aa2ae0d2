package sitedata

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-site/internal/domain/jornada"
	"github.com/riskibarqy/league-site/internal/domain/match"
	"github.com/riskibarqy/league-site/internal/domain/publicdata"
	"github.com/riskibarqy/league-site/internal/domain/standing"
	"github.com/riskibarqy/league-site/internal/platform/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	fileBaseURL     = "file://"
	maxDocumentSize = 8 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	// BaseURL is an http(s) origin serving the published site. When empty,
	// documents are read from Dir instead.
	BaseURL string
	Dir     string
	Timeout time.Duration
	Logger  *logging.Logger
}

// Client loads the published JSON documents of the league site.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
}

var _ publicdata.Repository = (*Client)(nil)

func NewClient(cfg ClientConfig) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		transport, err := newTransport(baseURL, cfg.Dir)
		if err != nil {
			return nil, err
		}
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(transport),
		}
	}

	if baseURL == "" {
		baseURL = fileBaseURL
	} else if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, crerr.Wrapf(err, "invalid data base url %q", baseURL)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}, nil
}

func newTransport(baseURL, dir string) (http.RoundTripper, error) {
	if baseURL != "" {
		return http.DefaultTransport, nil
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, crerr.New("either a data base url or a data directory is required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, crerr.Wrapf(err, "resolve data dir %q", dir)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, crerr.Wrapf(err, "stat data dir %q", abs)
	}
	if !info.IsDir() {
		return nil, crerr.Newf("data dir %q is not a directory", abs)
	}

	transport := &http.Transport{}
	transport.RegisterProtocol("file", http.NewFileTransport(http.Dir(abs)))
	return transport, nil
}

// FetchJSON issues one GET for path and decodes the body into target.
// Any failure is returned as a *FetchError.
func (c *Client) FetchJSON(ctx context.Context, path string, target any) error {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	fullURL := c.baseURL + "/" + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return &FetchError{Path: path, Err: crerr.Wrap(err, "build request")}
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "public data request failed", "path", path, "error", err)
		return &FetchError{Path: path, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "public data request rejected", "path", path, "status", resp.StatusCode)
		return &FetchError{Path: path, Status: resp.StatusCode}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return &FetchError{Path: path, Err: crerr.Wrap(err, "read response body")}
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return &FetchError{Path: path, Err: crerr.Wrap(err, "decode json")}
	}

	c.logger.DebugContext(ctx, "public data loaded", "path", path, "bytes", len(raw))
	return nil
}

func (c *Client) Standings(ctx context.Context) ([]standing.Row, error) {
	var rows []standing.Row
	if err := c.FetchJSON(ctx, publicdata.PathStandings, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) Upcoming(ctx context.Context) ([]match.Match, error) {
	return c.fetchMatches(ctx, publicdata.PathUpcoming)
}

func (c *Client) Recent(ctx context.Context) ([]match.Match, error) {
	return c.fetchMatches(ctx, publicdata.PathRecent)
}

func (c *Client) Matches(ctx context.Context) ([]match.Match, error) {
	return c.fetchMatches(ctx, publicdata.PathMatches)
}

func (c *Client) Jornadas(ctx context.Context) ([]jornada.Entry, error) {
	var entries []jornada.Entry
	if err := c.FetchJSON(ctx, publicdata.PathJornadas, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) fetchMatches(ctx context.Context, path string) ([]match.Match, error) {
	var matches []match.Match
	if err := c.FetchJSON(ctx, path, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}
