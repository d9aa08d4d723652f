package sigscore

import (
	"airdrop-recipients/domain"
	"airdrop-recipients/errors"
	"airdrop-recipients/internal"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// StatusError keeps the status code of a non-2xx answer.
// It unwraps to errors.ErrUnexpectedStatus.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", errors.ErrUnexpectedStatus, e.Status)
}

func (e *StatusError) Unwrap() error {
	return errors.ErrUnexpectedStatus
}

type Option func(*Client)

// WithHTTPClient replaces the client built from the configuration.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// Client reads the miners list from the SIGSCORE API.
type Client struct {
	url          string
	maxBodyBytes int64
	http         *http.Client
	log          *slog.Logger
}

func NewClient(cfg internal.Config, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		url:          cfg.SigscoreURL,
		maxBodyBytes: cfg.MaxBodyBytes,
		http:         &http.Client{Timeout: cfg.HTTPTimeout},
		log:          log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// wireMiner accepts hashrate as a JSON number or a numeric string.
type wireMiner struct {
	Address  *string `json:"address"`
	Hashrate any     `json:"hashrate"`
}

// FetchMiners issues a single GET and decodes the whole array.
// Nothing is returned unless every entry decodes.
func (c *Client) FetchMiners(ctx context.Context) ([]domain.Miner, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}
	requestID := uuid.NewString()
	request.Header.Set("Accept", "application/json")
	request.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	response, err := c.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrTransport, err)
	}
	defer response.Body.Close()

	c.log.Debug("Sigscore answered",
		"request_id", requestID,
		"status", response.StatusCode,
		"duration", time.Since(start))

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &StatusError{StatusCode: response.StatusCode, Status: response.Status}
	}

	body := io.LimitReader(response.Body, c.maxBodyBytes)
	decoder := json.NewDecoder(body)
	decoder.UseNumber()

	var raw []wireMiner
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrMalformedPayload, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected an array, got null", errors.ErrMalformedPayload)
	}

	miners := make([]domain.Miner, 0, len(raw))
	for i, m := range raw {
		if m.Address == nil {
			return nil, fmt.Errorf("%w: entry %d has no address", errors.ErrMalformedPayload, i)
		}
		if m.Hashrate == nil {
			return nil, fmt.Errorf("%w: entry %d has no hashrate", errors.ErrMalformedPayload, i)
		}
		hashrate, err := extractFloat(m.Hashrate)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d hashrate: %w", errors.ErrMalformedPayload, i, err)
		}
		miners = append(miners, domain.Miner{Address: *m.Address, Hashrate: hashrate})
	}
	return miners, nil
}

// extractFloat rejects NaN and infinities.
func extractFloat(val any) (float64, error) {
	var (
		value float64
		err   error
	)
	switch v := val.(type) {
	case json.Number:
		value, err = v.Float64()
	case float64:
		value = v
	case string:
		if v == "" {
			return 0, fmt.Errorf("empty string")
		}
		value, err = strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("unsupported float type %T", val)
	}
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%v is not a finite number", val)
	}
	return value, nil
}
