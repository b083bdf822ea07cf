// Package paymentgateway is the HTTP client for the external payment processor.
// It speaks the processor's form-encoded intents API and translates every failure
// into errs.DependencyError.
package paymentgateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/google/uuid"
)

const serviceName = "payment processor"

// Config configures Client. Zero values fall back to defaults.
type Config struct {
	BaseURL     string
	SecretKey   string
	MaxAttempts int
	Backoff     time.Duration
	HTTPClient  *http.Client
}

// Client implements ports.PaymentGateway. It is safe for concurrent use.
type Client struct {
	baseURL     string
	secretKey   string
	maxAttempts int
	backoff     time.Duration
	session     *http.Client
	logger      *slog.Logger
}

var _ ports.PaymentGateway = (*Client)(nil)

func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errs.NewValueIsRequiredError("PAYMENT_GATEWAY_URL")
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("PAYMENT_GATEWAY_URL", err)
	}
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errs.NewValueIsRequiredError("PAYMENT_GATEWAY_SECRET_KEY")
	}

	c := &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:   cfg.SecretKey,
		maxAttempts: cfg.MaxAttempts,
		backoff:     cfg.Backoff,
		session:     cfg.HTTPClient,
		logger:      logger.With("component", "payment_gateway"),
	}
	if c.maxAttempts <= 0 {
		c.maxAttempts = 4
	}
	if c.backoff <= 0 {
		c.backoff = 200 * time.Millisecond
	}
	if c.session == nil {
		c.session = &http.Client{}
	}
	return c, nil
}

type intentResponse struct {
	ID           string            `json:"id"`
	ClientSecret string            `json:"client_secret"`
	Status       string            `json:"status"`
	Metadata     map[string]string `json:"metadata"`
}

func (r intentResponse) toIntent() ports.Intent {
	return ports.Intent{
		ID:           r.ID,
		ClientSecret: r.ClientSecret,
		Status:       r.Status,
		ParcelID:     r.Metadata["packageId"],
	}
}

// CreateIntent reserves req.AmountMinor for the parcel. All attempts of one call
// share an Idempotency-Key so a retried request cannot create a second intent.
func (c *Client) CreateIntent(ctx context.Context, req ports.IntentRequest) (ports.Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.AmountMinor, 10))
	form.Set("currency", req.Currency)
	form.Set("metadata[packageId]", req.ParcelID.String())
	form.Set("automatic_payment_methods[enabled]", "true")
	body := form.Encode()
	idempotencyKey := uuid.NewString()

	var intent intentResponse
	err := c.call(ctx, &intent, func() (*http.Request, error) {
		r, err := c.newRequest(ctx, http.MethodPost, "/v1/payment_intents", strings.NewReader(body))
		if err != nil {
			return nil, err
		}
		r.Header.Set("Idempotency-Key", idempotencyKey)
		return r, nil
	})
	if err != nil {
		return ports.Intent{}, err
	}

	c.logger.InfoContext(ctx, "payment intent created",
		"intent_id", intent.ID, "package_id", req.ParcelID.String(), "amount_minor", req.AmountMinor)
	return intent.toIntent(), nil
}

// GetIntent reads the current state of an intent.
func (c *Client) GetIntent(ctx context.Context, id string) (ports.Intent, error) {
	if strings.TrimSpace(id) == "" {
		return ports.Intent{}, errs.NewValueIsRequiredError("paymentId")
	}

	var intent intentResponse
	err := c.call(ctx, &intent, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, "/v1/payment_intents/"+url.PathEscape(id), nil)
	})
	if err != nil {
		return ports.Intent{}, err
	}
	return intent.toIntent(), nil
}

func (c *Client) call(ctx context.Context, out any, makeReq func() (*http.Request, error)) error {
	resp, err := c.doWithRetry(ctx, makeReq)
	if err != nil {
		return c.dependencyError(ctx, err)
	}
	defer resp.Body.Close()

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewDependencyError(serviceName, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) dependencyError(ctx context.Context, err error) error {
	c.logger.WarnContext(ctx, "payment processor call failed", "error", err)
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewDependencyTimeoutError(serviceName, err)
	}
	return errs.NewDependencyError(serviceName, err)
}
