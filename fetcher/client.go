// Package fetcher downloads CSV datasets through a CORS relay that wraps the
// target document in a JSON envelope carrying a base64 data URL.
package fetcher

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"aimlookup/importer"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const base64Marker = "base64,"

var (
	// ErrFetch covers transport errors and non-2xx responses.
	ErrFetch = errors.New("fetch failure")
	// ErrEnvelopeMalformed is returned when the relay envelope carries no
	// decodable base64 payload.
	ErrEnvelopeMalformed = errors.New("relay envelope malformed")
	// ErrParse is returned when the decoded payload is not a usable CSV table.
	ErrParse = importer.ErrParse
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ClientConfig struct {
	RelayURL   string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient httpDoer
	Logger     *zap.Logger
}

type Client struct {
	relayURL   *url.URL
	userAgent  string
	httpClient httpDoer
	logger     *zap.Logger
}

func NewClient(cfg ClientConfig) (*Client, error) {
	raw := strings.TrimSpace(cfg.RelayURL)
	if raw == "" {
		return nil, errors.New("relay URL is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid relay URL %q", cfg.RelayURL)
	}

	doer := cfg.HTTPClient
	if doer == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		doer = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		relayURL:   parsed,
		userAgent:  strings.TrimSpace(cfg.UserAgent),
		httpClient: doer,
		logger:     logger,
	}, nil
}

// RelayURL returns the relay request URL for target, i.e. relay?url=<target>.
func (c *Client) RelayURL(target string) string {
	relay := *c.relayURL
	query := relay.Query()
	query.Set("url", target)
	relay.RawQuery = query.Encode()
	return relay.String()
}

// Fetch downloads target through the relay and parses it as a header-first
// CSV table. It makes exactly one attempt.
func (c *Client) Fetch(ctx context.Context, target string) (*importer.Table, error) {
	started := time.Now()
	body, err := c.get(ctx, c.RelayURL(target))
	if err != nil {
		return nil, err
	}

	payload, err := DecodeEnvelope(body)
	if err != nil {
		return nil, err
	}

	table, err := importer.ParseCSV(bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	c.logger.Debug("dataset fetched",
		zap.String("target", target),
		zap.Int("rows", len(table.Records)),
		zap.Duration("duration", time.Since(started)),
	)
	return table, nil
}

func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request relay: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf(
			"%w: relay responded with status %d: %s",
			ErrFetch,
			resp.StatusCode,
			strings.TrimSpace(string(responseBody)),
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read relay response: %w", ErrFetch, err)
	}
	return body, nil
}

// DecodeEnvelope extracts and decodes the base64 payload of a relay envelope.
func DecodeEnvelope(body []byte) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: response is not JSON", ErrEnvelopeMalformed)
	}

	if status := gjson.GetBytes(body, "status.http_code"); status.Exists() && status.Type == gjson.Number {
		if code := status.Int(); code < 200 || code >= 300 {
			return nil, fmt.Errorf("%w: upstream responded with status %d", ErrFetch, code)
		}
	}

	contents := gjson.GetBytes(body, "contents")
	if !contents.Exists() || contents.Type != gjson.String {
		return nil, fmt.Errorf("%w: missing contents field", ErrEnvelopeMalformed)
	}

	text := contents.String()
	index := strings.Index(text, base64Marker)
	if index < 0 {
		return nil, fmt.Errorf("%w: contents carry no %q marker", ErrEnvelopeMalformed, base64Marker)
	}

	payload, err := decodeBase64(text[index+len(base64Marker):])
	if err != nil {
		return nil, fmt.Errorf("%w: decode payload: %w", ErrEnvelopeMalformed, err)
	}
	return payload, nil
}

func decodeBase64(encoded string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, encoded)
	if strings.HasSuffix(cleaned, "=") {
		return base64.StdEncoding.DecodeString(cleaned)
	}
	return base64.RawStdEncoding.DecodeString(cleaned)
}
