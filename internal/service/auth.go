// Package service holds the application services behind the transport layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/logger"
	"github.com/dtroode/deckhub-server/internal/model"
)

const minPasswordLength = 6

// Auth registers and signs in users and notifies subscribers about sign-in
// state changes.
type Auth struct {
	userStore    model.UserStore
	tokenService *TokenService
	kdf          model.KDFParams
	logger       *logger.Logger

	mu          sync.Mutex
	nextID      int
	subscribers map[int]func(model.AuthEvent)
}

func NewAuth(
	userStore model.UserStore,
	tokenService *TokenService,
	kdf model.KDFParams,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenService: tokenService,
		kdf:          kdf,
		logger:       logger,
		subscribers:  make(map[int]func(model.AuthEvent)),
	}
}

// Register creates an account and signs it in.
func (a *Auth) Register(ctx context.Context, email, password, name string) (model.Identity, model.TokenPair, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)

	if _, err := mail.ParseAddress(email); err != nil {
		return model.Identity{}, model.TokenPair{}, apierrors.NewErrValidation("email", "Please enter a valid email address")
	}
	if len(password) < minPasswordLength {
		return model.Identity{}, model.TokenPair{}, apierrors.NewErrValidation("password", fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}

	a.logger.Debug("Auth service: starting user registration", "email", email)

	hash, salt, err := hashPassword(password, a.kdf)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password", "email", email, "error", err.Error())
		return model.Identity{}, model.TokenPair{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		PasswordSalt: salt,
		KDF:          a.kdf,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			a.logger.Info("Auth service: user already exists", "email", email)
			return model.Identity{}, model.TokenPair{}, apierrors.NewErrEmailIsTaken(email)
		}
		a.logger.Error("Auth service: failed to create user", "email", email, "error", err.Error())
		return model.Identity{}, model.TokenPair{}, fmt.Errorf("failed to create user: %w", err)
	}

	tokens, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue tokens", "userID", user.ID, "error", err.Error())
		return model.Identity{}, model.TokenPair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully", "userID", user.ID)
	a.publish(model.AuthEvent{Identity: user.Identity(), SignedIn: true})

	return user.Identity(), tokens, nil
}

// Login verifies the password and issues a token pair.
func (a *Auth) Login(ctx context.Context, email, password string) (model.Identity, model.TokenPair, error) {
	email = normalizeEmail(email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: login for unknown email", "email", email)
			return model.Identity{}, model.TokenPair{}, apierrors.NewErrInvalidCredentials()
		}
		a.logger.Error("Auth service: failed to get user by email", "email", email, "error", err.Error())
		return model.Identity{}, model.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !verifyPassword(password, user) {
		a.logger.Info("Auth service: wrong password", "userID", user.ID)
		return model.Identity{}, model.TokenPair{}, apierrors.NewErrInvalidCredentials()
	}

	tokens, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue tokens", "userID", user.ID, "error", err.Error())
		return model.Identity{}, model.TokenPair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "userID", user.ID)
	a.publish(model.AuthEvent{Identity: user.Identity(), SignedIn: true})

	return user.Identity(), tokens, nil
}

// Refresh rotates a refresh token.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	tokens, _, err := a.tokenService.Refresh(ctx, refreshToken)
	if err != nil {
		a.logger.Info("Auth service: refresh rejected", "error", err.Error())
		return model.TokenPair{}, apierrors.NewErrInvalidAuthorizationToken()
	}
	return tokens, nil
}

// Logout revokes the refresh token.
func (a *Auth) Logout(ctx context.Context, refreshToken string) error {
	userID, err := a.tokenService.RevokeByToken(ctx, refreshToken)
	if err != nil {
		a.logger.Info("Auth service: logout rejected", "error", err.Error())
		return apierrors.NewErrInvalidAuthorizationToken()
	}

	identity := model.Identity{UserID: userID}
	if user, err := a.userStore.GetByID(ctx, userID); err == nil {
		identity = user.Identity()
	}

	a.logger.Info("Auth service: user logged out", "userID", userID)
	a.publish(model.AuthEvent{Identity: identity, SignedIn: false})
	return nil
}

// Subscribe registers cb for sign-in and sign-out events. The returned
// function removes the subscription.
func (a *Auth) Subscribe(cb func(model.AuthEvent)) func() {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.nextID
	a.nextID++
	a.subscribers[id] = cb

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.subscribers, id)
	}
}

func (a *Auth) publish(event model.AuthEvent) {
	a.mu.Lock()
	callbacks := make([]func(model.AuthEvent), 0, len(a.subscribers))
	for _, cb := range a.subscribers {
		callbacks = append(callbacks, cb)
	}
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(event)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
