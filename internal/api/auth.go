package api

import "context"

// LoginResult is the identity provider's answer to a successful login.
type LoginResult struct {
	Role  string `json:"role"`
	Token string `json:"token"`
}

// RegisterInput carries the public registration form fields.
type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a signed session token and the account
// role. The token is opaque to the portal apart from its decodable claims.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	err := c.call(ctx, "POST", "/api/auth/login", nil, loginBody{Email: email, Password: password}, &out)
	if err != nil {
		return LoginResult{}, err
	}
	return out, nil
}

// Register creates a new account. The server validates and stores the
// credentials; the portal only relays the form.
func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	return c.call(ctx, "POST", "/api/auth/register", nil, input, nil)
}
