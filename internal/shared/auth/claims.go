package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// SessionClaims mirrors the payload the day-trip API encodes into its bearer tokens.
type SessionClaims struct {
	MemberID int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// MemberIDString renders the member id the way the booking endpoints expect it in query strings.
func (c *SessionClaims) MemberIDString() string {
	if c == nil || c.MemberID == 0 {
		return ""
	}
	return strconv.FormatInt(c.MemberID, 10)
}

// TokenInspector peeks at bearer tokens without verifying their signature.
// The signing secret lives server-side; the client only needs the claims and
// the expiry so it never sends a token it already knows is stale.
type TokenInspector struct {
	parser *jwt.Parser
	now    func() time.Time
}

func NewTokenInspector() *TokenInspector {
	return &TokenInspector{parser: jwt.NewParser(), now: time.Now}
}

// Peek decodes the token claims and rejects expired tokens. No signature check is performed.
func (i *TokenInspector) Peek(token string) (*SessionClaims, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, ErrMissingToken
	}

	claims := &SessionClaims{}
	if _, _, err := i.parser.ParseUnverified(trimmed, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if exp := claims.RegisteredClaims.ExpiresAt; exp != nil && !exp.Time.After(i.now()) {
		return nil, ErrTokenExpired
	}

	return claims, nil
}

// Usable reports whether the token can still back a protected request.
func (i *TokenInspector) Usable(token string) bool {
	_, err := i.Peek(token)
	return err == nil
}
