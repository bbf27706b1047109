package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"taipeiTripWeb/internal/modules/auth/application/port"
	"taipeiTripWeb/internal/modules/auth/domain"
	"taipeiTripWeb/internal/shared/httputil"
)

const emailTakenMessage = "Email already registered"

// UserHTTPClient implements UserGateway against the day-trip user endpoints.
type UserHTTPClient struct {
	rest *httputil.RESTClient
}

func NewUserHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *UserHTTPClient {
	return &UserHTTPClient{rest: httputil.NewRESTClient(baseURL, timeout, client)}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registrationPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string      `json:"token"`
	MemberID json.Number `json:"member_id"`
}

type profileResponse struct {
	Data domain.UserProfile `json:"data"`
}

// errorDetail matches the conflict shape the registration endpoint produces:
// {"detail": {"error": true, "message": "..."}}.
type errorDetail struct {
	Detail struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	} `json:"detail"`
}

func (c *UserHTTPClient) Login(ctx context.Context, email, password string) (domain.Session, error) {
	body, err := json.Marshal(credentialsPayload{Email: email, Password: password})
	if err != nil {
		return domain.Session{}, fmt.Errorf("encode login payload: %w", err)
	}

	req, err := c.rest.NewRequest(ctx, http.MethodPut, "/api/user/auth", bytes.NewReader(body))
	if err != nil {
		slog.Error("login request build failed", slog.Any("error", err))
		return domain.Session{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("login request error", slog.Any("error", err))
		return domain.Session{}, fmt.Errorf("login request failed: %w", err)
	}
	defer res.Body.Close()

	slog.Debug("login response", slog.Int("status", res.StatusCode))

	if res.StatusCode != http.StatusOK {
		// Any rejection lands on the same failure banner, so the status code
		// only matters for diagnostics.
		payload, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Info("login rejected by api", slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(payload))))
		return domain.Session{}, port.ErrBadCredentials
	}

	var decoded loginResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return domain.Session{}, fmt.Errorf("decode login response: %w", err)
	}
	if strings.TrimSpace(decoded.Token) == "" {
		return domain.Session{}, fmt.Errorf("login response missing token")
	}

	return domain.Session{Token: decoded.Token, MemberID: decoded.MemberID.String()}, nil
}

func (c *UserHTTPClient) Register(ctx context.Context, name, email, password string) error {
	body, err := json.Marshal(registrationPayload{Name: name, Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("encode registration payload: %w", err)
	}

	req, err := c.rest.NewRequest(ctx, http.MethodPost, "/api/user", bytes.NewReader(body))
	if err != nil {
		slog.Error("registration request build failed", slog.Any("error", err))
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("registration request error", slog.Any("error", err))
		return fmt.Errorf("registration request failed: %w", err)
	}
	defer res.Body.Close()

	slog.Debug("registration response", slog.Int("status", res.StatusCode))

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	payload, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
	if res.StatusCode == http.StatusBadRequest {
		var detail errorDetail
		if err := json.Unmarshal(payload, &detail); err == nil && detail.Detail.Message == emailTakenMessage {
			return port.ErrEmailTaken
		}
	}

	slog.Error("registration unexpected status", slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(payload))))
	return fmt.Errorf("unexpected registration response %d", res.StatusCode)
}

func (c *UserHTTPClient) CurrentUser(ctx context.Context, token string) (domain.UserProfile, error) {
	req, err := c.rest.NewRequest(ctx, http.MethodGet, "/api/user/auth", nil)
	if err != nil {
		slog.Error("current-user request build failed", slog.Any("error", err))
		return domain.UserProfile{}, err
	}
	req.Header.Set("Accept", "application/json")
	if trimmed := strings.TrimSpace(token); trimmed != "" {
		req.Header.Set("Authorization", "Bearer "+trimmed)
	}

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("current-user request error", slog.Any("error", err))
		return domain.UserProfile{}, fmt.Errorf("current-user request failed: %w", err)
	}
	defer res.Body.Close()

	slog.Debug("current-user response", slog.Int("status", res.StatusCode))

	if res.StatusCode != http.StatusOK {
		// 401, 404, and everything else collapse to the same outcome.
		return domain.UserProfile{}, port.ErrNotAuthenticated
	}

	var decoded profileResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return domain.UserProfile{}, fmt.Errorf("decode current-user response: %w", err)
	}
	return decoded.Data, nil
}

var _ port.UserGateway = (*UserHTTPClient)(nil)
