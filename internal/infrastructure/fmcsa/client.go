package fmcsa

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/value"
	"carrier_desk/pkg/errcodes"
	"carrier_desk/pkg/httpx"
	"carrier_desk/pkg/logx"
)

const (
	DefaultBaseURL = "https://mobile.fmcsa.dot.gov/qc/services"
	DefaultTimeout = 5 * time.Second

	webKeyParam       = "webKey"
	maxBodyBytes      = 1 << 20
	logFieldMaxLength = 4096
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// Client reads carrier records from the FMCSA QCMobile API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retry      RetryPolicy
	limiter    *rate.Limiter
	healthMC   value.MCNumber
}

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *Client) {
		c.retry = policy
	}
}

// WithRateLimit throttles outgoing requests to rps with the given burst.
// A non-positive rps disables the throttle.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}
}

func WithHealthMCNumber(mc value.MCNumber) Option {
	return func(c *Client) {
		c.healthMC = mc
	}
}

// WithTransport replaces the base transport under the key and logging round trippers.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

func New(baseURL, webKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout, Transport: http.DefaultTransport},
		retry:      DefaultRetryPolicy(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.httpClient.Transport = httpx.NewAPIKeyRoundTripper(
		httpx.NewLoggingRoundTripper(
			c.httpClient.Transport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(logFieldMaxLength),
		),
		webKeyParam,
		webKey,
	)

	return c
}

// GetCarrier fetches the carrier by docket number, retrying transient failures.
func (c *Client) GetCarrier(ctx context.Context, mc value.MCNumber) (entity.CarrierSnapshot, error) {
	var snapshot entity.CarrierSnapshot

	err := c.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		snapshot, err = c.fetch(ctx, mc)
		return err
	})
	if err != nil {
		return entity.CarrierSnapshot{}, err
	}

	return snapshot, nil
}

// HealthCheck makes one unretried lookup of a carrier known to exist.
func (c *Client) HealthCheck(ctx context.Context) bool {
	if c.healthMC.IsZero() {
		return false
	}

	if _, err := c.fetch(ctx, c.healthMC); err != nil {
		logger(ctx).Warn("registry health check failed", logx.Error(err))
		return false
	}

	return true
}

func (c *Client) fetch(ctx context.Context, mc value.MCNumber) (entity.CarrierSnapshot, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return entity.CarrierSnapshot{}, domain.WrapError(err, errcodes.RegistryTimeout, "registry throttle wait aborted")
		}
	}

	endpoint := c.baseURL + "/carriers/docket-number/" + url.PathEscape(mc.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return entity.CarrierSnapshot{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.CarrierSnapshot{}, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes)) //nolint:errcheck
		return entity.CarrierSnapshot{}, statusError(resp.StatusCode)
	}

	var body carrierResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return entity.CarrierSnapshot{}, domain.WrapError(err, errcodes.RegistryBadResponse, "decode registry response")
	}

	for _, content := range body.Content {
		if content.Carrier != nil {
			return content.Carrier.snapshot(mc), nil
		}
	}

	return entity.CarrierSnapshot{}, domain.NewError(errcodes.CarrierNotFound, fmt.Sprintf("registry has no carrier for docket %s", mc))
}
