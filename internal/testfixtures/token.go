package testfixtures

import (
	"encoding/base64"
	"encoding/json"
)

// Token builds an unsigned JWT-shaped token whose payload carries the given
// subject and role. The portal only decodes the payload segment, so the
// signature segment is a fixed placeholder.
func Token(subject, role string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload, _ := json.Marshal(map[string]string{"sub": subject, "role": role})
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

// AdminToken returns a token carrying the ADMIN role.
func AdminToken(subject string) string {
	return Token(subject, "ADMIN")
}

// UserToken returns a token carrying the USER role.
func UserToken(subject string) string {
	return Token(subject, "USER")
}
