package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ideagate/internal/pkg/config"
	"ideagate/internal/usecase/commands"

	"github.com/google/uuid"
)

// Client creates hosted checkout sessions against the card processor's REST
// API. The session id it returns becomes the webhook idempotency key on the
// access request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg config.PaymentConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.ProviderTimeout,
		},
		baseURL: cfg.ProviderBaseURL,
		apiKey:  cfg.ProviderAPIKey,
	}
}

type createSessionRequest struct {
	ReferenceID string `json:"reference_id"`
	AmountPaise int64  `json:"amount"`
	Currency    string `json:"currency"`
}

type createSessionResult struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"url"`
	Status      string `json:"status"`
}

func (c *Client) CreateSession(ctx context.Context, requestID uuid.UUID, amountPaise int64) (*commands.CheckoutSession, error) {
	body, err := json.Marshal(createSessionRequest{
		ReferenceID: requestID.String(),
		AmountPaise: amountPaise,
		Currency:    "inr",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("create session: processor returned %d: %s", resp.StatusCode, payload)
	}

	var result createSessionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode session response: %w", err)
	}
	if result.ID == "" {
		return nil, fmt.Errorf("create session: processor returned empty session id")
	}

	return &commands.CheckoutSession{
		SessionID:   result.ID,
		CheckoutURL: result.CheckoutURL,
	}, nil
}
