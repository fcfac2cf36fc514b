// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangphan/fleetra/internal/platform/constants"
	"github.com/quangphan/fleetra/internal/platform/sec"
	"github.com/quangphan/fleetra/internal/users/auth"
)

// httpHarness serves the auth routes over httptest with in-memory storage.
type httpHarness struct {
	*testHarness
	server *httptest.Server
}

func newHTTPHarness(t *testing.T) *httpHarness {
	t.Helper()
	harness := newHarness(t)

	handler := auth.NewHandler(harness.service, sec.NewCookieManager(false))
	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)

	return &httpHarness{testHarness: harness, server: server}
}

// postJSON sends a JSON POST without following redirects or sharing cookies.
func (harness *httpHarness) postJSON(t *testing.T, path string, payload map[string]interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	response, err := http.Post(harness.server.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return response
}

// getWithCookie sends a GET carrying the given session cookie (if non-nil).
func (harness *httpHarness) getWithCookie(t *testing.T, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	request, err := http.NewRequest(http.MethodGet, harness.server.URL+path, nil)
	require.NoError(t, err)
	if cookie != nil {
		request.AddCookie(cookie)
	}

	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	return response
}

// decodeBody decodes a JSON response body into a generic map.
func decodeBody(t *testing.T, response *http.Response) map[string]interface{} {
	t.Helper()
	defer response.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	return body
}

// sessionCookie extracts the session cookie from a response, or nil.
func sessionCookie(response *http.Response) *http.Cookie {
	for _, cookie := range response.Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func registerPayloadFixture() map[string]interface{} {
	return map[string]interface{}{
		"company":    "Quang Trucking",
		"email":      "quang@fleetra.app",
		"password":   "secret123",
		"phone":      "555-0199",
		"truckCount": 7,
	}
}

// # Lifecycle

/*
TestAuthHTTP_RegisterLoginMe walks the happy path: register, log in, and read
the identity back through the session cookie.
*/
func TestAuthHTTP_RegisterLoginMe(t *testing.T) {
	harness := newHTTPHarness(t)

	// 1. Register: 201 with the sanitized profile, no session cookie.
	registerResponse := harness.postJSON(t, "/register", registerPayloadFixture())
	require.Equal(t, http.StatusCreated, registerResponse.StatusCode)
	assert.Nil(t, sessionCookie(registerResponse))

	registerBody := decodeBody(t, registerResponse)
	assert.Equal(t, "Account created", registerBody["message"])

	registeredUser, ok := registerBody["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "quang@fleetra.app", registeredUser["email"])
	assert.Equal(t, float64(7), registeredUser["truckCount"])
	assert.Equal(t, true, registeredUser["isPremium"])
	assert.Equal(t, "owner", registeredUser["role"])
	// The hash must never appear under any key.
	_, leaked := registeredUser["passwordHash"]
	assert.False(t, leaked)

	// 2. Login: 200 with a session cookie scoped to the whole site.
	loginResponse := harness.postJSON(t, "/login", map[string]interface{}{
		"email":    "quang@fleetra.app",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, loginResponse.StatusCode)

	cookie := sessionCookie(loginResponse)
	require.NotNil(t, cookie)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int(sec.ShortSessionTTL.Seconds()), cookie.MaxAge)

	loginBody := decodeBody(t, loginResponse)
	assert.Equal(t, "Login successful", loginBody["message"])

	// 3. Me: the cookie resolves back to the account.
	meResponse := harness.getWithCookie(t, "/me", cookie)
	require.Equal(t, http.StatusOK, meResponse.StatusCode)

	meBody := decodeBody(t, meResponse)
	meUser, ok := meBody["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "quang@fleetra.app", meUser["email"])
}

/*
TestAuthHTTP_Login_RememberMe verifies the cookie lifetime follows the flag.
*/
func TestAuthHTTP_Login_RememberMe(t *testing.T) {
	harness := newHTTPHarness(t)
	harness.postJSON(t, "/register", registerPayloadFixture()).Body.Close()

	response := harness.postJSON(t, "/login", map[string]interface{}{
		"email":      "quang@fleetra.app",
		"password":   "secret123",
		"rememberMe": true,
	})
	require.Equal(t, http.StatusOK, response.StatusCode)

	cookie := sessionCookie(response)
	require.NotNil(t, cookie)
	assert.Equal(t, int(sec.RememberedSessionTTL.Seconds()), cookie.MaxAge)
}

/*
TestAuthHTTP_Logout verifies logout clears the cookie and is idempotent.
*/
func TestAuthHTTP_Logout(t *testing.T) {
	harness := newHTTPHarness(t)

	for i := 0; i < 2; i++ {
		response := harness.postJSON(t, "/logout", map[string]interface{}{})
		require.Equal(t, http.StatusOK, response.StatusCode)

		cookie := sessionCookie(response)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Equal(t, -1, cookie.MaxAge)

		body := decodeBody(t, response)
		assert.Equal(t, "Logged out", body["message"])
	}
}

// # Failure Modes

/*
TestAuthHTTP_Register_Validation verifies per-field errors come back in one
400 response.
*/
func TestAuthHTTP_Register_Validation(t *testing.T) {
	harness := newHTTPHarness(t)

	response := harness.postJSON(t, "/register", map[string]interface{}{
		"company":    "",
		"email":      "not-an-email",
		"password":   "abc",
		"phone":      "",
		"truckCount": -2,
		"role":       "admin",
	})
	require.Equal(t, http.StatusBadRequest, response.StatusCode)

	body := decodeBody(t, response)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	details, ok := body["details"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, details)
}

/*
TestAuthHTTP_Register_Duplicate verifies the conflict answer.
*/
func TestAuthHTTP_Register_Duplicate(t *testing.T) {
	harness := newHTTPHarness(t)
	harness.postJSON(t, "/register", registerPayloadFixture()).Body.Close()

	payload := registerPayloadFixture()
	payload["email"] = "QUANG@fleetra.app"
	response := harness.postJSON(t, "/register", payload)

	require.Equal(t, http.StatusConflict, response.StatusCode)
	body := decodeBody(t, response)
	assert.Equal(t, "CONFLICT", body["code"])
}

/*
TestAuthHTTP_Login_InvalidCredentials verifies both failure shapes are the
same JSON 401.
*/
func TestAuthHTTP_Login_InvalidCredentials(t *testing.T) {
	harness := newHTTPHarness(t)
	harness.postJSON(t, "/register", registerPayloadFixture()).Body.Close()

	unknown := decodeBody(t, harness.postJSON(t, "/login", map[string]interface{}{
		"email":    "nobody@fleetra.app",
		"password": "secret123",
	}))
	wrongPassword := decodeBody(t, harness.postJSON(t, "/login", map[string]interface{}{
		"email":    "quang@fleetra.app",
		"password": "wrong-password",
	}))

	assert.Equal(t, unknown["error"], wrongPassword["error"])
	assert.Equal(t, unknown["code"], wrongPassword["code"])
}

/*
TestAuthHTTP_Me_Failures verifies the identity endpoint answers JSON statuses
instead of redirects.
*/
func TestAuthHTTP_Me_Failures(t *testing.T) {
	harness := newHTTPHarness(t)

	t.Run("no_cookie_is_401", func(t *testing.T) {
		response := harness.getWithCookie(t, "/me", nil)
		assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
		response.Body.Close()
	})

	t.Run("garbage_cookie_is_401", func(t *testing.T) {
		response := harness.getWithCookie(t, "/me", &http.Cookie{
			Name:  constants.SessionCookieName,
			Value: "tampered",
		})
		assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
		response.Body.Close()
	})

	t.Run("deleted_account_is_404", func(t *testing.T) {
		token, err := harness.tokens.Issue(sec.Identity{UserID: "ghost-id", Role: sec.RoleOwner}, false)
		require.NoError(t, err)

		response := harness.getWithCookie(t, "/me", &http.Cookie{
			Name:  constants.SessionCookieName,
			Value: token,
		})
		assert.Equal(t, http.StatusNotFound, response.StatusCode)
		response.Body.Close()
	})

	t.Run("demo_identity_is_served", func(t *testing.T) {
		token, err := harness.tokens.Issue(sec.Identity{UserID: auth.DemoUserID, Role: sec.RoleOwner}, false)
		require.NoError(t, err)

		response := harness.getWithCookie(t, "/me", &http.Cookie{
			Name:  constants.SessionCookieName,
			Value: token,
		})
		require.Equal(t, http.StatusOK, response.StatusCode)

		body := decodeBody(t, response)
		user, ok := body["user"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, auth.DemoUserID, user["id"])
	})
}
