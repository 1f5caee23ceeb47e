package httphandler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_MissingHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/containers")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
}

func TestGate_MalformedHeader(t *testing.T) {
	srv, deps := newTestServer(t)
	deps.validator.valid = true

	cases := []string{
		"valid-token",        // no scheme
		"Basic dXNlcjpwdw==", // wrong scheme
		"Bearer ",            // empty token
		"Bearer",             // scheme only
	}

	for _, header := range cases {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/containers", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", header)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header: %q", header)
		assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"), "header: %q", header)
	}

	assert.Empty(t, deps.validator.seen, "malformed headers must be rejected before validation")
}

func TestGate_InvalidToken(t *testing.T) {
	srv, deps := newTestServer(t)
	deps.validator.valid = false

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/containers", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer stale-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
	assert.Equal(t, "stale-token", deps.validator.seen)
}

func TestGate_ValidTokenPassesThrough(t *testing.T) {
	srv, deps := newTestServer(t)
	deps.validator.valid = true

	resp := authedRequest(t, http.MethodGet, srv.URL+"/api/v1/containers")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "valid-token", deps.validator.seen)
}

func TestGate_CaseInsensitiveScheme(t *testing.T) {
	srv, deps := newTestServer(t)
	deps.validator.valid = true

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/containers", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "bearer valid-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGate_ValidationFault(t *testing.T) {
	srv, deps := newTestServer(t)
	deps.validator.err = errors.New("db gone")

	resp := authedRequest(t, http.MethodGet, srv.URL+"/api/v1/containers")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode,
		"a storage fault is a 500, not a 401")
}
