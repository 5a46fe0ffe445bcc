package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// Verifier implements ports.CredentialVerifier against the upstream
// credential endpoint. It has no local state; its only side effect is the
// outbound HTTP call.
type Verifier struct {
	client *Client
	now    func() time.Time
}

var _ ports.CredentialVerifier = (*Verifier)(nil)

// NewVerifier constructs a Verifier on the shared upstream client.
func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client, now: time.Now}
}

// loginRequest is the credential endpoint's body.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginUser is the profile block of a successful login response.
type loginUser struct {
	ID              string `json:"_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	Provider        string `json:"provider"`
	Avatar          string `json:"avatar"`
	IsEmailVerified bool   `json:"isEmailVerified"`
}

// loginResponse is the credential endpoint's envelope:
// {success, message?, user, accessToken}.
type loginResponse struct {
	Success     bool       `json:"success"`
	Message     string     `json:"message"`
	User        *loginUser `json:"user"`
	AccessToken string     `json:"accessToken"`
}

// Verify posts the credentials and derives a fresh claim set from the result.
// Email format is not validated here beyond presence; the sign-in form does
// that. Failures map to the taxonomy: non-2xx with a JSON body is
// InvalidCredentials carrying the upstream message, a non-JSON response or a
// network failure is ServerUnavailable, and a 2xx missing the user or token
// is IncompleteResponse. None of them are retried here.
func (v *Verifier) Verify(ctx context.Context, email, password string) (domainauth.Claims, error) {
	var zero domainauth.Claims
	if email == "" || password == "" {
		return zero, apperrors.Validation("email and password are required")
	}

	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return zero, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode login request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		v.client.base+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return zero, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build login request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.http.Do(req)
	if err != nil {
		return zero, apperrors.Wrap(err, apperrors.ErrCodeServerUnavailable,
			"unable to connect to the server, please try again")
	}
	defer resp.Body.Close() //nolint:errcheck

	if !isJSONResponse(resp) {
		return zero, apperrors.ServerUnavailable(
			"unable to connect to the server, please check if the backend is running")
	}

	var decoded loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return zero, apperrors.Wrap(err, apperrors.ErrCodeServerUnavailable,
			"invalid JSON response from the authentication server")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, apperrors.InvalidCredentials(decoded.Message)
	}

	if decoded.User == nil || decoded.AccessToken == "" {
		return zero, apperrors.IncompleteResponse(
			"authentication server returned an incomplete response")
	}

	return domainauth.Claims{
		UserID:        decoded.User.ID,
		Name:          decoded.User.Name,
		Email:         decoded.User.Email,
		Role:          domainauth.Role(decoded.User.Role),
		Provider:      decoded.User.Provider,
		Avatar:        decoded.User.Avatar,
		EmailVerified: decoded.User.IsEmailVerified,
		AccessToken:   decoded.AccessToken,
		IssuedAt:      v.now().UnixMilli(),
	}, nil
}
