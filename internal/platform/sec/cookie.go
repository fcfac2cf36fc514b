// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package sec

import (
	"net/http"
	"time"

	"github.com/quangphan/fleetra/internal/platform/constants"
)

// CookieManager binds session tokens to the HTTP transport.
//
// It is the only place allowed to write the session cookie, so the attribute
// set (name, path, SameSite) can never drift between login and logout.
type CookieManager struct {
	// secure controls the cookie's Secure attribute. True in production,
	// false in development so plain-HTTP localhost keeps working.
	secure bool
}

// NewCookieManager creates a CookieManager.
func NewCookieManager(secure bool) *CookieManager {
	return &CookieManager{secure: secure}
}

/*
Attach sets the session cookie on the response.

Description: HttpOnly + SameSite=Lax + Path=/ always; Max-Age mirrors the
token's duration so the browser drops the cookie when the token would have
expired anyway.

Parameters:
  - writer: http.ResponseWriter
  - token: string (signed session token)
  - longLived: bool (remember-me selection, must match the token's)
*/
func (manager *CookieManager) Attach(writer http.ResponseWriter, token string, longLived bool) {
	maxAge := int(ShortSessionTTL.Seconds())
	if longLived {
		maxAge = int(RememberedSessionTTL.Seconds())
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     constants.SessionCookiePath,
		MaxAge:   maxAge,
		Secure:   manager.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

/*
Clear overwrites the session cookie so the browser deletes it.

Description: Browsers scope cookies by name+path+domain, so Clear must reuse
the exact name and path Attach used, otherwise the stale cookie survives and
the user stays logged in. Expiry in the past plus MaxAge=-1 guarantees
deletion regardless of the original Max-Age.
*/
func (manager *CookieManager) Clear(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   manager.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
