package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"blog-api/internal/middleware"
)

// AuthClient validates tokens against the auth service
type AuthClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// TokenValidationRequest represents the request to the auth service
type TokenValidationRequest struct {
	Token string `json:"token"`
}

// TokenValidationResponse represents the response from the auth service
type TokenValidationResponse struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Valid    bool   `json:"valid"`
	Message  string `json:"message,omitempty"`
}

// NewAuthClient creates a new AuthClient
func NewAuthClient(baseURL string, timeout time.Duration, logger *zap.Logger) *AuthClient {
	return &AuthClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ValidateToken validates a JWT token with the auth service. Blacklisted
// (logged out) tokens are rejected there, not locally.
func (c *AuthClient) ValidateToken(ctx context.Context, tokenStr string) (middleware.Identity, error) {
	url := fmt.Sprintf("%s/api/auth/validate", c.baseURL)

	reqBody := TokenValidationRequest{Token: tokenStr}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return middleware.Identity{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return middleware.Identity{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to validate token", zap.Error(err))
		return middleware.Identity{}, fmt.Errorf("failed to validate token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return middleware.Identity{}, fmt.Errorf("token validation failed with status: %d", resp.StatusCode)
	}

	var result TokenValidationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return middleware.Identity{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.Valid {
		return middleware.Identity{}, fmt.Errorf("token is not valid: %s", result.Message)
	}

	return middleware.Identity{ID: result.UserID, Username: result.Username}, nil
}
