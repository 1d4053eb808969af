package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"

	"github.com/quantmarket/hooktrader/pkg/types"
)

const DefaultTimeout = 15 * time.Second

type Config struct {
	URL       string `json:"url" yaml:"url" env:"HOOKTRADER_WEBHOOK_URL"`
	AuthToken string `json:"authToken,omitempty" yaml:"authToken,omitempty" env:"HOOKTRADER_AUTH_TOKEN"`

	// MaxRetries enables exponential backoff on connectivity failures.
	// 0 means a single attempt. A response that arrives, whatever its
	// status code, is never retried.
	MaxRetries uint64 `json:"maxRetries,omitempty" yaml:"maxRetries,omitempty" env:"HOOKTRADER_MAX_RETRIES"`

	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// Response is the webhook endpoint's answer, body included so the caller can
// surface it to the operator verbatim.
type Response struct {
	StatusCode int
	Body       string
}

func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client posts order payloads to the webhook endpoint. It owns the auth
// token and injects it into every outgoing document.
type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Send dispatches the payload as a JSON POST. Connectivity failures are
// retried per the MaxRetries config; a delivered response is returned as-is
// and it is the caller's decision what a non-2xx status means.
func (c *Client) Send(ctx context.Context, payload types.OrderPayload) (Response, error) {
	if len(c.config.URL) == 0 {
		return Response{}, errors.New("webhook url is not configured")
	}

	payload.AuthToken = c.config.AuthToken

	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, errors.Wrap(err, "can not marshal order payload")
	}

	var response Response
	op := func() error {
		response, err = c.post(ctx, body)
		return err
	}

	if c.config.MaxRetries > 0 {
		err = backoff.Retry(op, backoff.WithContext(
			backoff.WithMaxRetries(
				backoff.NewExponentialBackOff(),
				c.config.MaxRetries),
			ctx))
	} else {
		err = op()
	}

	if err != nil {
		return Response{}, errors.Wrapf(err, "webhook request to %s failed", c.config.URL)
	}

	return response, nil
}

func (c *Client) post(ctx context.Context, body []byte) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}

	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	return Response{StatusCode: resp.StatusCode, Body: string(out)}, nil
}
