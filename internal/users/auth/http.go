// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quangphan/fleetra/internal/platform/apperr"
	"github.com/quangphan/fleetra/internal/platform/constants"
	requestutil "github.com/quangphan/fleetra/internal/platform/request"
	"github.com/quangphan/fleetra/internal/platform/respond"
	"github.com/quangphan/fleetra/internal/platform/sec"
	"github.com/quangphan/fleetra/internal/platform/validate"
)

// # HTTP Layer

// Handler exposes the authentication lifecycle over HTTP.
//
// Every route under this handler is publicly reachable (the session guard
// skips the /auth prefix), so each endpoint does its own cookie verification
// and answers with JSON instead of a login redirect.
type Handler struct {
	authService *Service
	cookies     *sec.CookieManager
}

// NewHandler constructs a new [Handler] with necessary dependencies.
func NewHandler(authService *Service, cookies *sec.CookieManager) *Handler {
	return &Handler{
		authService: authService,
		cookies:     cookies,
	}
}

// Routes returns the router for the authentication endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.Register)
	router.Post("/login", handler.Login)
	router.Post("/logout", handler.Logout)
	router.Get("/me", handler.Me)

	return router
}

// # Request Payloads

// registerPayload is the JSON body for POST /auth/register.
type registerPayload struct {
	Company    string `json:"company"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	TruckCount int    `json:"truckCount"`
	Role       string `json:"role"`
}

// loginPayload is the JSON body for POST /auth/login.
type loginPayload struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// # Endpoints

/*
Register handles POST /auth/register.

Description: Validates the payload, creates the account, and returns the
sanitized profile. Registration never sets a session cookie; the client is
expected to log in afterwards.

Responses:
  - 201: {"message", "user"}
  - 400: Validation failure with per-field details
  - 409: Email already registered
*/
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	var payload registerPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldCompany, payload.Company).
		MaxLen(FieldCompany, payload.Company, 200).
		Required(FieldEmail, payload.Email).
		Required(FieldPassword, payload.Password).
		MinLen(FieldPassword, payload.Password, MinPasswordLength).
		Required(FieldPhone, payload.Phone).
		NonNegative(FieldTruckCount, payload.TruckCount)
	if payload.Email != "" {
		validator.Email(FieldEmail, payload.Email)
	}
	if payload.Role != "" {
		validator.OneOf(FieldRole, payload.Role, string(sec.RoleOwner), string(sec.RoleDriver))
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Company:    payload.Company,
		Email:      payload.Email,
		Password:   payload.Password,
		Phone:      payload.Phone,
		TruckCount: payload.TruckCount,
		Role:       sec.UserRole(payload.Role),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]interface{}{
		FieldMessage: "Account created",
		FieldUser:    user.View(),
	})
}

/*
Login handles POST /auth/login.

Description: Verifies credentials, issues a session token, and attaches it as
the session cookie. The cookie lifetime follows the rememberMe flag.

Responses:
  - 200: {"message", "user"} with Set-Cookie
  - 401: Invalid credentials (identical for unknown email and wrong password)
  - 429: Too many failed attempts for this account
*/
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	var payload loginPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldEmail, payload.Email).
		Required(FieldPassword, payload.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:      payload.Email,
		Password:   payload.Password,
		RememberMe: payload.RememberMe,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.cookies.Attach(writer, session.Token, session.LongLived)

	respond.OK(writer, map[string]interface{}{
		FieldMessage: "Login successful",
		FieldUser:    session.User.View(),
	})
}

/*
Logout handles POST /auth/logout.

Description: Clears the session cookie. Idempotent: logging out without a
session, or twice in a row, still succeeds. Nothing is revoked server-side
because sessions are stateless.

Responses:
  - 200: {"message"}
*/
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	handler.cookies.Clear(writer)

	respond.OK(writer, map[string]interface{}{
		FieldMessage: "Logged out",
	})
}

/*
Me handles GET /auth/me.

Description: Resolves the session cookie to the current account. This is the
endpoint the dashboard polls on load, so a missing or expired cookie answers
with JSON 401 rather than a redirect.

Responses:
  - 200: {"user"}
  - 401: Missing, invalid, or expired session cookie
  - 404: Token is valid but the account record no longer exists
*/
func (handler *Handler) Me(writer http.ResponseWriter, request *http.Request) {
	cookie, err := request.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
		return
	}

	identity, err := handler.authService.Authenticate(request.Context(), cookie.Value)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]interface{}{
		FieldUser: identity.User.View(),
	})
}
