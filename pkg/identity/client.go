package identity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the external identity service that owns OAuth code
// exchange and user sessions.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type redirectURLResponse struct {
	RedirectURL string `json:"redirect_url"`
}

type exchangeCodeRequest struct {
	Code string `json:"code"`
}

type exchangeCodeResponse struct {
	SessionToken string `json:"session_token"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetOAuthRedirectURL returns the provider login URL the frontend should
// redirect the browser to.
func (c *Client) GetOAuthRedirectURL(provider string) (string, error) {
	url := fmt.Sprintf("%s/oauth/%s/redirect_url", c.BaseURL, provider)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.APIKey)

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var response redirectURLResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return response.RedirectURL, nil
}

// ExchangeCodeForToken trades an OAuth authorization code for a session
// token issued by the identity service.
func (c *Client) ExchangeCodeForToken(code string) (string, error) {
	jsonData, err := json.Marshal(exchangeCodeRequest{Code: code})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request data: %w", err)
	}

	url := fmt.Sprintf("%s/sessions", c.BaseURL)

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.APIKey)

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var response exchangeCodeResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return response.SessionToken, nil
}

// GetUser resolves the identity behind a session token.
func (c *Client) GetUser(sessionToken string) (*User, error) {
	url := fmt.Sprintf("%s/users/me", c.BaseURL)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.APIKey)
	req.Header.Set("Authorization", "Bearer "+sessionToken)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &user, nil
}

// DeleteSession revokes a session token at the identity service.
func (c *Client) DeleteSession(sessionToken string) error {
	url := fmt.Sprintf("%s/sessions/current", c.BaseURL)

	req, err := http.NewRequest("DELETE", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.APIKey)
	req.Header.Set("Authorization", "Bearer "+sessionToken)

	_, err = c.do(req)
	return err
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("identity service returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
