// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/quangphan/fleetra/internal/platform/constants"
	"github.com/quangphan/fleetra/internal/platform/ctxutil"
	"github.com/quangphan/fleetra/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify session tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the guard from the [sec.TokenService]
// implementation, allowing us to easily inject fakes during unit testing.
type TokenVerifier interface {
	Verify(tokenString string) (*sec.SessionClaims, error)
}

// publicExact lists paths that are public only as exact matches.
var publicExact = []string{
	"/",
	"/health",
	"/ready",
	"/favicon.ico",
}

// publicPrefixes lists path prefixes that never require a session.
//
// The whole /auth/ surface is public on purpose: its handlers perform their
// own cookie verification and answer with JSON statuses (401/404) instead of
// the guard's page-style redirect.
var publicPrefixes = []string{
	"/login",
	"/create-account",
	"/password-reset",
	"/auth/",
	"/static/",
	"/assets/",
}

// SessionGuard enforces authentication on every non-public path.
//
// # Flow (per request)
//
//  1. Strip any client-supplied identity headers. Only the guard may set them.
//  2. Classify the path against the static allow-list. Public paths pass through.
//  3. Read the session cookie. Missing, malformed, tampered, or expired
//     tokens are all treated identically: 302 redirect to /login with the
//     original path preserved in the "from" query parameter. No JSON body;
//     the surrounding product is page-driven, and API paths behind the guard
//     knowingly share the redirect behavior.
//  4. Valid token: inject X-User-ID / X-User-Role forwarded headers and the
//     claims into the context, then pass through. Downstream handlers trust
//     these without re-verifying.
func SessionGuard(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Spoofing Protection ────────────────────────────────────────
			// Identity headers are an internal contract; inbound values are lies.
			request.Header.Del(constants.HeaderUserID)
			request.Header.Del(constants.HeaderUserRole)

			// ── 2. Public Path Classification ─────────────────────────────────
			if isPublicPath(request.URL.Path) {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Cookie & Token Verification ────────────────────────────────
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				redirectToLogin(writer, request)
				return
			}

			claims, err := verifier.Verify(cookie.Value)
			if err != nil {
				// Invalid and absent sessions are indistinguishable to the
				// client; no error detail is surfaced.
				redirectToLogin(writer, request)
				return
			}

			// ── 4. Identity Injection ─────────────────────────────────────────
			request.Header.Set(constants.HeaderUserID, claims.UserID)
			request.Header.Set(constants.HeaderUserRole, claims.Role)

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// isPublicPath classifies a request path against the static allow-list.
func isPublicPath(path string) bool {
	for _, exact := range publicExact {
		if path == exact {
			return true
		}
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// redirectToLogin issues the guard's single failure response: a pure 302 to
// the login page with the original path in the "from" parameter so the client
// can return after authenticating.
func redirectToLogin(writer http.ResponseWriter, request *http.Request) {
	target := constants.LoginPath + "?from=" + url.QueryEscape(request.URL.Path)
	http.Redirect(writer, request, target, http.StatusFound)
}

// RequireManageFleet blocks fleet mutations for read-only roles.
//
// # Usage
//
// Must be registered in the router AFTER [SessionGuard].
func RequireManageFleet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())
		if claims == nil {
			redirectToLogin(writer, request)
			return
		}
		if !sec.UserRole(claims.Role).CanManageFleet() {
			writeError(writer, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
			return
		}
		next.ServeHTTP(writer, request)
	})
}
