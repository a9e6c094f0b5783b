package api

import (
	"context"
	"fmt"
)

// User is an account record as listed for administrators.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// ListUsers fetches every account. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.call(ctx, "GET", "/api/admin/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteUser removes an account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.call(ctx, "DELETE", fmt.Sprintf("/api/admin/users/%d", id), nil, nil, nil)
}

type roleBody struct {
	Role string `json:"role"`
}

// PromoteUser grants an account the given role, normally ADMIN. Admin only.
func (c *Client) PromoteUser(ctx context.Context, id int64, role string) error {
	return c.call(ctx, "PUT", fmt.Sprintf("/api/admin/users/%d/role", id), nil, roleBody{Role: role}, nil)
}
