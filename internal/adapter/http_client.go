package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/logger"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

// HTTPClientConfig configures the HTTP relay adapter.
type HTTPClientConfig struct {
	// BaseURL is the relay's HTTP endpoint, e.g. "https://relay.example.com".
	BaseURL string
	// Timeout is the per-request timeout for non-streaming calls.
	Timeout time.Duration
}

type httpRelayAdapter struct {
	client *resty.Client
	log    *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPRelayAdapter constructs a [RelayAdapter] over HTTP + WebSocket.
func NewHTTPRelayAdapter(cfg HTTPClientConfig, log *logger.Logger) RelayAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRelayAdapter{client: cli, log: log}
}

func (h *httpRelayAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRelayAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRelayAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return models.Account{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	var account models.Account
	if err = json.Unmarshal(resp.Body(), &account); err != nil {
		return models.Account{}, fmt.Errorf("decode register response: %w", err)
	}
	return account, nil
}

func (h *httpRelayAdapter) SRPStart(ctx context.Context, req models.SRPStartRequest) (models.SRPStartResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/srp/start")
	if err != nil {
		return models.SRPStartResponse{}, fmt.Errorf("srp start request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SRPStartResponse{}, err
	}

	var out models.SRPStartResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SRPStartResponse{}, fmt.Errorf("decode srp start response: %w", err)
	}
	return out, nil
}

func (h *httpRelayAdapter) SRPVerify(ctx context.Context, req models.SRPVerifyRequest) (models.SRPVerifyResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/srp/verify")
	if err != nil {
		return models.SRPVerifyResponse{}, fmt.Errorf("srp verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SRPVerifyResponse{}, err
	}

	var out models.SRPVerifyResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SRPVerifyResponse{}, fmt.Errorf("decode srp verify response: %w", err)
	}
	return out, nil
}

func (h *httpRelayAdapter) RotateTransportKey(ctx context.Context, req models.RotateKeyRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/keys/rotate")
	if err != nil {
		return fmt.Errorf("rotate key request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRelayAdapter) LookupContact(ctx context.Context, handle string) (models.Contact, error) {
	resp, err := h.authedRequest(ctx).Get("/api/directory/" + handle)
	if err != nil {
		return models.Contact{}, fmt.Errorf("directory lookup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	var contact models.Contact
	if err = json.Unmarshal(resp.Body(), &contact); err != nil {
		return models.Contact{}, fmt.Errorf("decode directory response: %w", err)
	}
	return contact, nil
}

func (h *httpRelayAdapter) DeliverEnvelope(ctx context.Context, req models.DeliverRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/envelopes")
	if err != nil {
		return fmt.Errorf("deliver envelope request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRelayAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRelayAdapter) DeleteAccount(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/account")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRelayAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch {
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case code == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServer, code, body)
	default:
		return fmt.Errorf("http %d: %s", code, body)
	}
}
