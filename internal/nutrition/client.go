package nutrition

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

	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/logger"
)

// Config carries provider credentials; nothing is read from globals.
type Config struct {
	BaseURL    string
	APIKey     string
	Host       string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// Enabled reports whether lookups can be attempted.
func (c Config) Enabled() bool {
	return c.BaseURL != "" && c.APIKey != ""
}

// Client queries the external nutrition provider.
type Client struct {
	cfg    Config
	client *http.Client
}

type dish struct {
	Name     string `json:"name"`
	Calories Amount `json:"caloric"`
	Fat      Amount `json:"fat"`
	Protein  Amount `json:"protein"`
	Carbon   Amount `json:"carbon"`
}

// Dishes are decoded one at a time in Lookup.
type searchResponse struct {
	Dishes []json.RawMessage `json:"dishes"`
}

// NewClient creates a provider client with the configured timeout.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Lookup asks the provider for dishes matching name. Candidates whose numbers
// cannot be parsed are dropped individually. A non-success status or an empty
// dish list yields domain.ErrFoodNotFound; transport failures and timeouts also
// wrap domain.ErrUpstreamUnavailable.
func (c *Client) Lookup(ctx context.Context, name, lang string) ([]domain.ImportCandidate, error) {
	log := logger.FromContext(ctx)

	if !c.cfg.Enabled() {
		return nil, fmt.Errorf("%w: %w: %s", domain.ErrFoodNotFound, domain.ErrUpstreamUnavailable, ErrMsgProviderDisabled)
	}

	log.Debug(LogMsgLookup, "name", name, "lang", lang)

	body, err := c.doRequest(ctx, name, lang)
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrFoodNotFound, ErrMsgDecodeResponse, err)
	}
	if len(parsed.Dishes) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrFoodNotFound, ErrMsgNoDishes)
	}

	candidates := make([]domain.ImportCandidate, 0, len(parsed.Dishes))
	for i, raw := range parsed.Dishes {
		var d dish
		if err := json.Unmarshal(raw, &d); err != nil {
			log.Warn(LogMsgCandidateSkipped, "index", i, "error", err)
			continue
		}
		candidate, err := d.toCandidate()
		if err != nil {
			log.Warn(LogMsgCandidateSkipped, "dish", d.Name, "error", err)
			continue
		}
		candidates = append(candidates, candidate)
	}

	log.Info(LogMsgLookupDone, "name", name, "offered", len(parsed.Dishes), "usable", len(candidates))
	return candidates, nil
}

func (d dish) toCandidate() (domain.ImportCandidate, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return domain.ImportCandidate{}, fmt.Errorf("%w: dish without name", domain.ErrInvalidInput)
	}

	var n domain.Nutrients
	fields := []struct {
		label string
		raw   Amount
		dst   *int
	}{
		{"caloric", d.Calories, &n.Calories},
		{"fat", d.Fat, &n.Fat},
		{"protein", d.Protein, &n.Protein},
		{"carbon", d.Carbon, &n.Carbon},
	}
	for _, f := range fields {
		v, err := f.raw.Int()
		if err != nil {
			return domain.ImportCandidate{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, f.label, err)
		}
		*f.dst = v
	}

	return domain.ImportCandidate{Name: name, Nutrients: n}, nil
}

// doRequest performs the search with retries on transport errors and 5xx responses.
func (c *Client) doRequest(ctx context.Context, name, lang string) ([]byte, error) {
	log := logger.FromContext(ctx)

	reqURL, err := url.Parse(c.cfg.BaseURL + SearchPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %s: %v", domain.ErrFoodNotFound, domain.ErrUpstreamUnavailable, ErrMsgBuildRequest, err)
	}
	params := reqURL.Query()
	params.Set(QueryParamName, name)
	params.Set(QueryParamLang, lang)
	reqURL.RawQuery = params.Encode()

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.cfg.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Info(LogMsgRetry, "attempt", attempt, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %w: %v", domain.ErrFoodNotFound, domain.ErrUpstreamUnavailable, ctx.Err())
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w: %s: %v", domain.ErrFoodNotFound, domain.ErrUpstreamUnavailable, ErrMsgBuildRequest, err)
		}
		req.Header.Set(HeaderRapidKey, c.cfg.APIKey)
		req.Header.Set(HeaderRapidHost, c.cfg.Host)
		req.Header.Set(HeaderAccept, MediaTypeJSON)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			log.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				break
			}
			continue
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
		resp.Body.Close()

		switch {
		case resp.StatusCode >= http.StatusInternalServerError:
			lastErr = fmt.Errorf(ErrMsgProviderStatus, resp.StatusCode)
			log.Warn(LogMsgRequestFailed, "status", resp.StatusCode, "attempt", attempt)
			continue
		case resp.StatusCode != http.StatusOK:
			return nil, fmt.Errorf("%w: "+ErrMsgProviderStatus, domain.ErrFoodNotFound, resp.StatusCode)
		case readErr != nil:
			lastErr = readErr
			continue
		}
		return body, nil
	}

	return nil, fmt.Errorf("%w: %w: %s: %v", domain.ErrFoodNotFound, domain.ErrUpstreamUnavailable, ErrMsgMaxRetries, lastErr)
}
