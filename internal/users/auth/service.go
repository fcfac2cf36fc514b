// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/quangphan/fleetra/internal/platform/apperr"
	"github.com/quangphan/fleetra/internal/platform/sec"
	"github.com/quangphan/fleetra/pkg/uuid"
)

// # Contracts & Types

// TokenCodec defines the contract for issuing and verifying session tokens.
//
// # Why an interface?
//
// The concrete implementation is [sec.TokenService]; the interface lets tests
// swap in a pinned-clock variant to exercise expiry boundaries.
type TokenCodec interface {
	// Issue creates a signed session token for the given identity.
	// longLived selects the remember-me duration over the short one.
	Issue(identity sec.Identity, longLived bool) (string, error)

	// Verify checks signature and expiry, returning the decoded claims.
	Verify(tokenString string) (*sec.SessionClaims, error)
}

// invalidCredentials is the single error for every credential failure.
// "No such user" and "wrong password" MUST stay indistinguishable so the
// API cannot be used to enumerate registered emails.
func invalidCredentials() *apperr.AppError {
	return apperr.Unauthorized("Invalid email or password")
}

// Service implements the authentication use cases.
//
// # Review Process
//
// This service is the security boundary of the product. Any changes to
// hashing, registration, or login logic must be reviewed by a second pair
// of eyes.
type Service struct {
	userRepository UserRepository
	loginThrottle  ThrottleRepository
	tokens         TokenCodec
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, throttle ThrottleRepository, tokens TokenCodec) *Service {
	return &Service{
		userRepository: userRepo,
		loginThrottle:  throttle,
		tokens:         tokens,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Company    string
	Email      string
	Password   string
	Phone      string
	TruckCount int
	Role       sec.UserRole
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Checks email uniqueness case-insensitively, hashes the password
with bcrypt, and persists the account. The role defaults to owner when the
caller omits it.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - error: Conflict (if the email exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify email uniqueness. Return a client-safe Conflict error.
	// The storage layer's unique index backs this up against races.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	role := input.Role
	if role == "" {
		role = sec.RoleOwner
	}
	if !role.Valid() {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldRole,
			Message: "Must be one of: owner, driver",
		})
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Company:      input.Company,
		Email:        strings.ToLower(input.Email),
		PasswordHash: hashedPassword,
		Phone:        input.Phone,
		TruckCount:   input.TruckCount,
		Role:         role,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginSession represents a successfully established stateless session.
type LoginSession struct {
	Token     string
	LongLived bool
	User      *User
}

/*
Login validates user credentials and issues a session token.

Description: Enforces the per-account throttle, verifies the password with
bcrypt's constant-time comparison, and signs a token whose lifetime is
selected by the RememberMe flag.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session token and user
  - error: Unauthorized, RateLimited, or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	throttleKey := strings.ToLower(input.Email)

	// Throttle check. A broken throttle store must never lock users out,
	// so errors degrade to "no throttle" rather than failing the login.
	failures, err := service.loginThrottle.Failures(context, throttleKey)
	if err == nil && failures >= MaxLoginFailures {
		return nil, apperr.RateLimited(int(LoginThrottleWindow.Seconds()))
	}

	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.HTTPStatus == http.StatusNotFound {
			_, _ = service.loginThrottle.RecordFailure(context, throttleKey)
			return nil, invalidCredentials()
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		_, _ = service.loginThrottle.RecordFailure(context, throttleKey)
		return nil, invalidCredentials()
	}

	_ = service.loginThrottle.Clear(context, throttleKey)

	token, err := service.tokens.Issue(sec.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_issue_failed: %w", err)
	}

	return &LoginSession{
		Token:     token,
		LongLived: input.RememberMe,
		User:      user,
	}, nil
}

// # Identity Resolution

/*
Authenticate resolves a raw session token back to the account it proves.

Description: Verifies the token (signature + expiry), then resolves the
embedded user id. The reserved demo identity short-circuits to the fixed
in-memory profile; every other id must still resolve to a live record,
because a validly signed token does not guarantee the account still exists.

Parameters:
  - context: context.Context
  - token: string (raw cookie value)

Returns:
  - *ResolvedIdentity: Tagged resolution result
  - error: Unauthorized (bad token) or NotFound (record gone)
*/
func (service *Service) Authenticate(context context.Context, token string) (*ResolvedIdentity, error) {
	claims, err := service.tokens.Verify(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	return service.Resolve(context, claims.UserID)
}

/*
Resolve maps a verified user id to its account.

Returns:
  - *ResolvedIdentity: DemoFixture for the reserved id, Persisted otherwise
  - error: apperr.NotFound when the record no longer exists
*/
func (service *Service) Resolve(context context.Context, userID string) (*ResolvedIdentity, error) {
	if userID == DemoUserID {
		return &ResolvedIdentity{Kind: ResolutionDemo, User: demoFixture()}, nil
	}

	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	return &ResolvedIdentity{Kind: ResolutionPersisted, User: user}, nil
}
