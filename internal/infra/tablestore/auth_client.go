package tablestore

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const authPrefix = "/auth/v1"

// AuthClient implements the AuthProvider interface against the backend's
// hosted auth endpoints. Credentials are relayed, never stored.
type AuthClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewAuthClient creates an auth client from the backend configuration.
func NewAuthClient(cfg *config.Config) service.AuthProvider {
	return &AuthClient{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		apiKey:  cfg.Backend.APIKey,
		http:    &http.Client{Timeout: cfg.Backend.RequestTimeout},
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (r sessionResponse) toEntity() (*entity.Session, error) {
	userID, err := uuid.Parse(r.User.ID)
	if err != nil {
		return nil, errors.Wrap(err, "backend returned malformed user id")
	}

	return &entity.Session{
		AccessToken: r.AccessToken,
		User:        entity.AuthUser{ID: userID, Email: r.User.Email},
	}, nil
}

// SignUp registers a new email/password account.
func (c *AuthClient) SignUp(ctx context.Context, email, password string) (*entity.Session, error) {
	resp, err := c.post(ctx, authPrefix+"/signup", credentialsRequest{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity || resp.StatusCode == http.StatusConflict:
		return nil, service.ErrEmailTaken
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, statusError(resp, "signup")
	}

	return decodeSession(resp.Body)
}

// SignIn exchanges credentials for a session.
func (c *AuthClient) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	resp, err := c.post(ctx, authPrefix+"/token?grant_type=password", credentialsRequest{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized:
		return nil, service.ErrInvalidCredentials
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, statusError(resp, "sign-in")
	}

	return decodeSession(resp.Body)
}

// SignOut revokes the session behind the access token.
func (c *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	resp, err := c.post(ctx, authPrefix+"/logout", nil, accessToken)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(resp, "logout")
	}

	return nil
}

func (c *AuthClient) post(ctx context.Context, path string, payload any, bearer string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode auth request")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build auth request")
	}

	req.Header.Set("apikey", c.apiKey)
	if bearer == "" {
		bearer = c.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "auth request failed")
	}

	return resp, nil
}

func decodeSession(body io.Reader) (*entity.Session, error) {
	var decoded sessionResponse
	if err := json.NewDecoder(body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	session, err := decoded.toEntity()
	if err != nil {
		return nil, err
	}

	return session, nil
}

func statusError(resp *http.Response, op string) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	return errors.Wrapf(ErrBadStatus, "%s: status %d: %s", op, resp.StatusCode, string(snippet))
}
