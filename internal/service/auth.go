package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck-server/internal/logger"
	"github.com/taskdeck/taskdeck-server/internal/model"
)

// emailPattern is a basic syntactic check: local part, "@", domain with
// a dot. Applied on profile updates only; registration accepts the email
// the client sends.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates a user and issues a session token. The password is
// stored only as a salted one-way hash.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.AuthResult, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	if len(params.Password) < 6 {
		return model.AuthResult{}, model.NewValidationError("Password must be at least 6 characters long")
	}

	existingUser, err := a.userStore.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: email already registered",
			"email", params.Email)
		return model.AuthResult{}, model.NewConflictError("Email already registered")
	}

	passwordHash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        params.Email,
		Username:     params.Username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	savedUser, err := a.userStore.Create(ctx, user)
	if err != nil {
		var conflict *model.ConflictError
		if errors.As(err, &conflict) {
			return model.AuthResult{}, err
		}
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := a.tokenManager.GenerateToken(savedUser.ID)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registered successfully",
		"email", params.Email,
		"user_id", savedUser.ID)

	return model.AuthResult{Token: tokenString, User: savedUser}, nil
}

// Login verifies the presented credentials and issues a session token.
// An unknown email and a wrong password produce the same error.
func (a *Auth) Login(ctx context.Context, email, password string) (model.AuthResult, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	if email == "" || password == "" {
		return model.AuthResult{}, model.NewValidationError("Email and password are required")
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.AuthResult{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: password mismatch",
			"email", email)
		return model.AuthResult{}, model.ErrInvalidCredentials
	}

	tokenString, err := a.tokenManager.GenerateToken(user.ID)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed successfully",
		"email", email,
		"user_id", user.ID)

	return model.AuthResult{Token: tokenString, User: user}, nil
}

// UpdateProfile applies a partial update to the caller's profile.
// Uniqueness checks exclude the caller's own record.
func (a *Auth) UpdateProfile(ctx context.Context, params model.UpdateProfileParams) (model.User, error) {
	a.logger.Debug("Auth service: starting profile update",
		"user_id", params.UserID)

	if params.Username != nil && len(*params.Username) < 3 {
		return model.User{}, model.NewValidationError("Username must be at least 3 characters long")
	}
	if params.Password != nil && len(*params.Password) < 6 {
		return model.User{}, model.NewValidationError("Password must be at least 6 characters long")
	}
	if params.Email != nil && !emailPattern.MatchString(*params.Email) {
		return model.User{}, model.NewValidationError("Please enter a valid email")
	}

	if params.Email != nil {
		existing, err := a.userStore.GetByEmail(ctx, *params.Email)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
		}
		if err == nil && existing.ID != params.UserID {
			return model.User{}, model.NewConflictError("Email already in use")
		}
	}

	if params.Username != nil {
		existing, err := a.userStore.GetByUsername(ctx, *params.Username)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
		}
		if err == nil && existing.ID != params.UserID {
			return model.User{}, model.NewConflictError("Username already in use")
		}
	}

	var passwordHash *string
	if params.Password != nil {
		hash, err := a.hasher.Hash(*params.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		passwordHash = &hash
	}

	updatedUser, err := a.userStore.Update(ctx, model.UpdateUserParams{
		ID:           params.UserID,
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		var conflict *model.ConflictError
		if errors.As(err, &conflict) {
			return model.User{}, err
		}
		a.logger.Error("Auth service: failed to update user",
			"user_id", params.UserID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	a.logger.Info("Auth service: profile updated successfully",
		"user_id", params.UserID)

	return updatedUser, nil
}
