package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-account-sync/internal/config"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/utils"
	"github.com/MKhiriev/go-account-sync/models"
	"github.com/go-resty/resty/v2"
)

// HashHeader carries the HMAC-SHA256 of a /save-data body when a hash key is
// configured on both sides.
const HashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and initialises the shared HMAC hasher pool used for transport
// integrity hashes.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Status implements [ServerAdapter]. It GETs /status and returns the message
// field of the response.
func (h *httpServerAdapter) Status(ctx context.Context) (string, error) {
	var status models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/status")
	if err != nil {
		return "", fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return status.Message, nil
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /register and expects 201.
func (h *httpServerAdapter) Register(ctx context.Context, identity, secret string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CredentialsRequest{Identity: identity, Secret: secret}).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to POST /login.
// The token is taken from the Authorization response header, falling back to
// the body, and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, identity, secret string) (models.LoginResponse, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CredentialsRequest{Identity: identity, Secret: secret}).
		SetResult(&loginResp).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if header := resp.Header().Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		loginResp.Token = token
	}
	if loginResp.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("login response carries no token")
	}
	if loginResp.User.Identity == "" {
		loginResp.User.Identity = identity
	}

	h.SetToken(loginResp.Token)
	return loginResp, nil
}

// SaveData implements [ServerAdapter]. It POSTs the working data to
// POST /save-data with the stored bearer token and, when a hash key is set,
// an integrity hash of the body.
func (h *httpServerAdapter) SaveData(ctx context.Context, identity, workingData string) error {
	body := models.SaveDataRequest{Identity: identity, WorkingData: workingData}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hashKey != "" {
		hash, err := utils.HashJSON(body)
		if err != nil {
			return fmt.Errorf("save data hash: %w", err)
		}
		req.SetHeader(HashHeader, hash)
	}

	resp, err := req.Post("/save-data")
	if err != nil {
		return fmt.Errorf("save data request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteAccount implements [ServerAdapter]. It POSTs the credentials to
// POST /delete-user.
func (h *httpServerAdapter) DeleteAccount(ctx context.Context, identity, secret string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CredentialsRequest{Identity: identity, Secret: secret}).
		Post("/delete-user")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
