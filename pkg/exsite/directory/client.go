// Package directory lists the sites of a remote organization through a
// paginated, rate-limited HTTP API and reduces them to an id -> name mapping.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the global cloud region.
const DefaultBaseURL = "https://api.mist.com/api/v1"

// HTTPDoer is the interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds everything the client needs; nothing is read from the
// environment.
type Config struct {
	// BaseURL is the API root, e.g. https://api.eu.mist.com/api/v1.
	BaseURL string
	// Token is the API credential.
	Token string
	// TokenType is the Authorization scheme, "Token" by default.
	TokenType string
	// CollectionID is the organization to list. Empty means the first
	// organization the credential can access.
	CollectionID string
	// PageSize is the number of entries requested per page.
	PageSize int
	// MaxAttempts bounds the attempts per request, retries included.
	MaxAttempts int
	// Backoff computes the wait between attempts.
	Backoff Backoff
	// Timeout bounds a single attempt.
	Timeout time.Duration
	// CollectionsPath lists the organizations of the credential.
	CollectionsPath string
	// EntriesPath lists the sites of an organization; %s is the org id.
	EntriesPath string
}

// DefaultConfig returns the defaults for the global region.
func DefaultConfig() Config {
	return Config{
		BaseURL:         DefaultBaseURL,
		TokenType:       "Token",
		PageSize:        100,
		MaxAttempts:     5,
		Backoff:         DefaultBackoff(),
		Timeout:         60 * time.Second,
		CollectionsPath: "/self/orgs",
		EntriesPath:     "/organizations/%s/sites",
	}
}

// Entry is one site as returned by the service.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Client talks to the directory service.
type Client struct {
	baseURL         string
	collectionID    string
	pageSize        int
	maxAttempts     int
	backoff         Backoff
	collectionsPath string
	entriesPath     string
	httpClient      HTTPDoer
	sleep           func(ctx context.Context, d time.Duration) error
	logger          *zap.Logger
}

// NewClient validates cfg and builds a client. Zero values in cfg fall back
// to DefaultConfig.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	def := DefaultConfig()
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, &ConfigurationError{Reason: "missing API token"}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid base URL %q", cfg.BaseURL)}
	}
	if cfg.TokenType == "" {
		cfg.TokenType = def.TokenType
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = def.PageSize
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.Backoff.Base <= 0 {
		cfg.Backoff = def.Backoff
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.CollectionsPath == "" {
		cfg.CollectionsPath = def.CollectionsPath
	}
	if cfg.EntriesPath == "" {
		cfg.EntriesPath = def.EntriesPath
	}

	source := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.Token,
		TokenType:   cfg.TokenType,
	})

	return &Client{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		collectionID:    cfg.CollectionID,
		pageSize:        cfg.PageSize,
		maxAttempts:     cfg.MaxAttempts,
		backoff:         cfg.Backoff,
		collectionsPath: cfg.CollectionsPath,
		entriesPath:     cfg.EntriesPath,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &oauth2.Transport{
				Source: source,
				Base:   http.DefaultTransport,
			},
		},
		sleep:  sleepContext,
		logger: logger,
	}, nil
}

// SetHTTPClient replaces the HTTP client. The replacement is responsible for
// authentication.
func (c *Client) SetHTTPClient(client HTTPDoer) {
	c.httpClient = client
}

// ListDirectory resolves the organization and returns its complete site
// mapping.
func (c *Client) ListDirectory(ctx context.Context) (*Mapping, error) {
	orgID, err := c.ResolveCollection(ctx, c.collectionID)
	if err != nil {
		return nil, err
	}
	entries, err := c.ListEntries(ctx, orgID)
	if err != nil {
		return nil, err
	}
	m := ToMapping(entries)
	c.logger.Info("directory listed",
		zap.String("org_id", orgID),
		zap.Int("entries", len(entries)),
		zap.Int("sites", m.Len()))
	return m, nil
}

// ResolveCollection returns id when set, otherwise the first organization
// accessible with the credential.
func (c *Client) ResolveCollection(ctx context.Context, id string) (string, error) {
	if id != "" {
		return id, nil
	}

	body, err := c.doRequest(ctx, http.MethodGet, c.baseURL+c.collectionsPath)
	if err != nil {
		return "", err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return "", &ConfigurationError{Reason: "no accessible organizations for this token; provide an org id"}
	}
	first, ok := decodeEntry(raw[0])
	if !ok || first.ID == "" {
		return "", &ConfigurationError{Reason: "first accessible organization has no id; provide an org id"}
	}

	c.logger.Info("using first accessible organization", zap.String("org_id", first.ID), zap.String("org_name", first.Name))
	return first.ID, nil
}

// ListEntries fetches every page of the organization's sites, in page order.
func (c *Client) ListEntries(ctx context.Context, orgID string) ([]Entry, error) {
	var all []Entry
	endpoint := c.baseURL + fmt.Sprintf(c.entriesPath, url.PathEscape(orgID))

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("limit", strconv.Itoa(c.pageSize))
		params.Set("page", strconv.Itoa(page))

		body, err := c.doRequest(ctx, http.MethodGet, endpoint+"?"+params.Encode())
		if err != nil {
			return nil, err
		}

		items, count, paginated := decodePage(body)
		c.logger.Debug("page fetched",
			zap.Int("page", page),
			zap.Int("results", count),
			zap.Int("items", len(items)),
			zap.Bool("paginated", paginated))
		if count == 0 {
			break
		}
		all = append(all, items...)
		if !paginated || count != c.pageSize {
			break
		}
	}

	return all, nil
}

// doRequest performs one call with retries on transient statuses.
func (c *Client) doRequest(ctx context.Context, method, reqURL string) ([]byte, error) {
	var last *TransientServiceError

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
		if err != nil {
			return nil, &TransportError{URL: reqURL, Err: err}
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, &TransportError{URL: reqURL, Err: err}
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, &TransportError{URL: reqURL, Err: err}
		}

		switch {
		case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
			if !json.Valid(body) {
				return []byte("{}"), nil
			}
			return body, nil
		case isRetryableStatus(resp.StatusCode):
			last = &TransientServiceError{StatusCode: resp.StatusCode, URL: reqURL}
		default:
			return nil, &ServiceRejectedError{
				StatusCode: resp.StatusCode,
				URL:        reqURL,
				Body:       truncateBody(body),
			}
		}

		if attempt == c.maxAttempts {
			break
		}
		delay := c.backoff.Delay(attempt)
		c.logger.Warn("retrying directory request",
			zap.Int("status", resp.StatusCode),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.maxAttempts),
			zap.String("path", req.URL.Path),
			zap.Duration("wait", delay))
		if err := c.sleep(ctx, delay); err != nil {
			return nil, &TransportError{URL: reqURL, Err: err}
		}
	}

	return nil, &ServiceExhaustedError{URL: reqURL, Attempts: c.maxAttempts, Last: last}
}

// decodePage extracts the entries of one page. A bare list is a complete,
// unpaginated listing; an object carries them under "results". count is the
// number of listed results, including those that are not objects.
func decodePage(body []byte) (entries []Entry, count int, paginated bool) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, 0, false
	}

	var raw []json.RawMessage
	switch body[0] {
	case '[':
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, 0, false
		}
	case '{':
		var envelope struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil || envelope.Results == nil {
			return nil, 0, false
		}
		if err := json.Unmarshal(envelope.Results, &raw); err != nil {
			return nil, 0, false
		}
		paginated = true
	default:
		return nil, 0, false
	}

	entries = make([]Entry, 0, len(raw))
	for _, item := range raw {
		if e, ok := decodeEntry(item); ok {
			entries = append(entries, e)
		}
	}
	return entries, len(raw), paginated
}

// decodeEntry reads id and name from one JSON object, accepting string or
// numeric ids. Non-objects are rejected.
func decodeEntry(item json.RawMessage) (Entry, bool) {
	dec := json.NewDecoder(bytes.NewReader(item))
	dec.UseNumber()
	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return Entry{}, false
	}
	return Entry{ID: scalarString(fields["id"]), Name: scalarString(fields["name"])}, true
}

func scalarString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	}
	return fmt.Sprint(v)
}

// isRetryableStatus reports statuses worth retrying: 429, 500, 502, 503, 504.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
