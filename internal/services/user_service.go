package services

import (
	"context"

	"github.com/janidumadawa/GameStore/internal/apperr"
	"github.com/janidumadawa/GameStore/internal/models"
	"github.com/janidumadawa/GameStore/internal/validation"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the credential store the service registers and looks up
// users against.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (*models.User, error)
}

type UserService struct {
	store  UserStore
	logger zerolog.Logger
}

func NewUserService(store UserStore, logger zerolog.Logger) *UserService {
	return &UserService{
		store:  store,
		logger: logger,
	}
}

// Register creates a new user account. The password is stored as a bcrypt
// hash; unknown roles fall back to the default "user" role.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if fields := validation.MissingFields(req); len(fields) > 0 {
		return nil, apperr.Validation("missing or invalid required fields", fields...)
	}

	role := req.Role
	if role != string(models.RoleUser) && role != string(models.RoleAdmin) {
		role = string(models.RoleUser)
	}

	existing, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error checking existing user")
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Duplicate("email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error hashing password")
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	created, err := s.store.Insert(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Error creating user")
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID.Hex()).Str("email", created.Email).Msg("User registered successfully")
	return created, nil
}

// Authenticate verifies an email/password pair. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	if fields := validation.MissingFields(req); len(fields) > 0 {
		return nil, apperr.Validation("email and password are required", fields...)
	}

	user, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error querying user")
		return nil, err
	}
	if user == nil {
		return nil, apperr.Validation("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn().Str("email", req.Email).Msg("Failed authentication attempt")
		return nil, apperr.Validation("invalid email or password")
	}

	s.logger.Info().Str("user_id", user.ID.Hex()).Str("email", user.Email).Msg("User authenticated successfully")
	return user, nil
}
