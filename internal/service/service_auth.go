// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// dummyPassword is hashed once and compared against on logins for unknown
// emails, so both failure paths run a bcrypt comparison.
const dummyPassword = "go-blog-dummy-password"

// fallbackDummyHash is a well-formed cost-10 bcrypt hash used when hashing
// dummyPassword fails. No password is expected to match it.
const fallbackDummyHash = "$2a$10$XajjQvNhvvRt5GSeFk1xFeyqRrsxkhBkUiQeg0dt.wU1qD4aFDcga"

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher    PasswordHasher
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	dummyOnce sync.Once
	dummyHash string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewCredentialsValidator(cfg.MinPasswordLength),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new user account with empty profile fields.
//
// Returns the persisted user or:
//   - ErrValidation if a field is missing, the email is malformed or the
//     password is too short.
//   - ErrConflict if the email is already registered.
func (a *authService) Signup(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Str("func", "authService.Signup").Msg("invalid signup data provided")
		return models.User{}, NewValidationError(err)
	}

	passwordHash, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Signup").Msg("error hashing password")
		return models.User{}, err
	}

	user := models.User{
		Email:        normalizeEmail(credentials.Email),
		Name:         strings.TrimSpace(credentials.Name),
		PasswordHash: passwordHash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Debug().Str("func", "authService.Signup").Str("email", user.Email).Msg("email already registered")
		return models.User{}, fmt.Errorf("%w: %w", ErrConflict, err)
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Signup").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login verifies credentials and issues a session token.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	switch {
	case strings.TrimSpace(credentials.Email) == "":
		return models.User{}, models.Token{}, NewValidationError(validators.ErrEmptyEmail)
	case credentials.Password == "":
		return models.User{}, models.Token{}, NewValidationError(validators.ErrEmptyPassword)
	}

	email := normalizeEmail(credentials.Email)
	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		a.hasher.Verify(a.dummy(ctx), credentials.Password)
		log.Debug().Str("func", "authService.Login").Msg("login attempt failed")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(user.PasswordHash, credentials.Password) {
		log.Debug().Str("func", "authService.Login").Msg("login attempt failed")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Int64("id", user.UserID).Msg("error creating token")
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ResolveSession validates the signature, issuer and expiry of credential.
func (a *authService) ResolveSession(ctx context.Context, credential string) models.Principal {
	if credential == "" {
		return models.Anonymous()
	}

	token, err := utils.ValidateAndParseJWTToken(credential, a.tokenSignKey, a.tokenIssuer)
	if err != nil || token.UserID <= 0 {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ResolveSession").Msg("session credential rejected")
		return models.Anonymous()
	}

	return models.Authenticated(token.UserID)
}

// CurrentUser loads the user behind an authenticated principal. A principal
// whose account no longer exists is treated as unauthenticated.
func (a *authService) CurrentUser(ctx context.Context, principal models.Principal) (models.User, error) {
	userID, ok := principal.UserID()
	if !ok {
		return models.User{}, ErrUnauthenticated
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.CurrentUser").Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// dummy returns the hash compared against on logins for unknown emails.
func (a *authService) dummy(ctx context.Context) string {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "authService.dummy").Msg("dummy password hashing failed, using fallback hash")
			hash = fallbackDummyHash
		}
		a.dummyHash = hash
	})
	return a.dummyHash
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
