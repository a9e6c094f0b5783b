// Package session decodes the bearer token issued by the remote identity
// provider. The portal never verifies the signature: the decoded role only
// gates which views are offered, while every authoritative check happens on
// the server with the token attached to the call.
package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Role is the coarse authorization level carried inside the token.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsAdmin reports whether the role unlocks the administration views.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Claims are the fields the portal reads out of the token payload.
type Claims struct {
	Subject string `json:"sub"`
	Role    Role   `json:"role"`
}

// ErrInvalidToken is returned for empty or undecodable tokens. Callers react
// by clearing the stored session and redirecting to the login entry point.
var ErrInvalidToken = errors.New("session: invalid token")

// Decode extracts the claims from a compact signed token (header.payload.
// signature). Only the payload segment is inspected; malformed input of any
// kind maps to ErrInvalidToken.
func Decode(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, ErrInvalidToken
	}

	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return Claims{}, fmt.Errorf("%w: not a compact token", ErrInvalidToken)
	}

	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	if claims.Role != RoleAdmin {
		// Unknown or absent roles degrade to the least privileged view.
		claims.Role = RoleUser
	}
	return claims, nil
}
