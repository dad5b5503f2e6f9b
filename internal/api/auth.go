package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// ErrNoToken indicates an authenticated call was attempted before login.
var ErrNoToken = errors.New("api: no auth token, log in first")

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// RegisterRequest carries the new account's credentials plus the profile
// fields the builder later merges into drafts.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name,omitempty"`
	JobTitle string `json:"job_title,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Login exchanges credentials for a bearer token. On success the token is
// installed on the client and returned. A rejected login surfaces the
// server's detail message.
func (c *Client) Login(ctx context.Context, req *LoginRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("api: invalid login request: %w", err)
	}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.doJSON(ctx, "login", http.MethodPost, "/login", req, &out); err != nil {
		return "", err
	}
	c.token = out.AccessToken
	return out.AccessToken, nil
}

// Register creates an account. The caller logs in separately afterwards.
func (c *Client) Register(ctx context.Context, req *RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("api: invalid register request: %w", err)
	}
	return c.doJSON(ctx, "register", http.MethodPost, "/register", req, nil)
}

// TokenExpired inspects a stored bearer token's exp claim without
// verifying the signature; verification is the server's job. A token that
// cannot be parsed, or whose exp has passed, counts as expired so the CLI
// can prompt for a fresh login instead of failing mid-call.
func TokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(timeNow())
}
