package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_InstallsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "jane", req.Username)
		_, _ = w.Write([]byte(`{"access_token":"tok456"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	token, err := c.Login(context.Background(), &LoginRequest{Username: "jane", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "tok456", token)
	assert.Equal(t, "tok456", c.Token(), "token installed for later calls")
}

func TestLogin_RejectedSurfacesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect username or password"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Login(context.Background(), &LoginRequest{Username: "jane", Password: "wrong"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Incorrect username or password", apiErr.Message)
	assert.Empty(t, c.Token())
}

func TestLogin_ValidatesRequest(t *testing.T) {
	c := NewClient("http://unused", nil)
	_, err := c.Login(context.Background(), &LoginRequest{Username: "jane"})
	assert.Error(t, err, "missing password fails before any request is sent")
}

func TestRegister_Validation(t *testing.T) {
	c := NewClient("http://unused", nil)

	err := c.Register(context.Background(), &RegisterRequest{Username: "ab", Password: "longenough1"})
	assert.Error(t, err, "username below minimum length")

	err = c.Register(context.Background(), &RegisterRequest{Username: "jane", Password: "short"})
	assert.Error(t, err, "password below minimum length")

	err = c.Register(context.Background(), &RegisterRequest{
		Username: "jane", Password: "longenough1", Email: "not-an-email",
	})
	assert.Error(t, err, "malformed email")
}

func TestRegister(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/register", r.URL.Path)
		var req RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Jane Doe", req.FullName)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	err := c.Register(context.Background(), &RegisterRequest{
		Username: "jane",
		Password: "longenough1",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
	})
	assert.NoError(t, err)
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	orig := timeNow
	timeNow = func() time.Time { return now }
	defer func() { timeNow = orig }()

	expired := signedToken(t, jwt.MapClaims{"sub": "jane", "exp": now.Add(-time.Hour).Unix()})
	assert.True(t, TokenExpired(expired))

	fresh := signedToken(t, jwt.MapClaims{"sub": "jane", "exp": now.Add(time.Hour).Unix()})
	assert.False(t, TokenExpired(fresh))

	noExp := signedToken(t, jwt.MapClaims{"sub": "jane"})
	assert.False(t, TokenExpired(noExp), "a token without exp never expires locally")

	assert.True(t, TokenExpired("garbage"), "an unparseable token counts as expired")
}
