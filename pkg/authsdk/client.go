// Package authsdk provides a small Go client for the longev-auth HTTP API
// plus the request/response and error types shared with the server handlers.
package authsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to a longev-auth service instance.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient builds a Client with sane defaults.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// PasswordLogin exchanges email+password for an access token.
func (c *Client) PasswordLogin(ctx context.Context, email, password string) (TokenResponse, error) {
	var out TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/token-pwd", "",
		PasswordLoginRequest{Email: email, Password: password}, &out)
	return out, err
}

// RequestOTP asks the service to email a one-time passcode.
func (c *Client) RequestOTP(ctx context.Context, email string) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPost, "/auth/otp", "", OTPRequest{Email: email}, &out)
	return out, err
}

// OTPLogin exchanges email+otp for an access token.
func (c *Client) OTPLogin(ctx context.Context, email, otp string) (TokenResponse, error) {
	var out TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/token-otp", "",
		OTPLoginRequest{Email: email, OTP: otp}, &out)
	return out, err
}

// Signup registers a new user.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodPost, "/user/signup", "", req, &out)
	return out, err
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context, token string) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodGet, "/user/profile", token, nil, &out)
	return out, err
}

// UpdateProfile changes the authenticated user's display names.
func (c *Client) UpdateProfile(ctx context.Context, token string, req ProfileUpdateRequest) (ProfileUpdateResponse, error) {
	var out ProfileUpdateResponse
	err := c.do(ctx, http.MethodPut, "/user/profile", token, req, &out)
	return out, err
}

// DeactivateProfile marks the authenticated user's account inactive.
func (c *Client) DeactivateProfile(ctx context.Context, token string) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodDelete, "/user/profile", token, nil, &out)
	return out, err
}

// do performs a JSON request and decodes either the success payload or an
// APIError from the response body.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("authsdk: encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("authsdk: build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("authsdk: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			return fmt.Errorf("authsdk: %s %s: status %d", method, path, resp.StatusCode)
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("authsdk: decode response: %w", err)
		}
	}
	return nil
}
