package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/session"
	"puntoventa/internal/core/tx"
	"puntoventa/pkg/logger"
)

const (
	maxFailedLogins = 5
	lockDuration    = 15 * time.Minute

	minPasswordLength = 8
)

// Service provides authentication operations.
type Service struct {
	users     UserRepository
	jwt       *JWTService
	txManager tx.Manager
}

// NewService creates a new auth service.
func NewService(users UserRepository, jwtService *JWTService, txManager tx.Manager) *Service {
	return &Service{
		users:     users,
		jwt:       jwtService,
		txManager: txManager,
	}
}

// Login authenticates the operator and returns an access token bound to
// the chosen store and register.
func (s *Service) Login(ctx context.Context, creds Credentials) (*TokenResult, error) {
	user, err := s.users.GetByEmail(ctx, creds.Email)
	if err != nil {
		// Same error for unknown email and wrong password.
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	if err := user.CanLogin(); err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		user.RecordFailedLogin(maxFailedLogins, lockDuration)
		if updateErr := s.users.Update(ctx, user); updateErr != nil {
			logger.Warn(ctx, "record failed login", "error", updateErr)
		}
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	user.RecordSuccessfulLogin()
	if err := s.users.Update(ctx, user); err != nil {
		logger.Warn(ctx, "record successful login", "error", err)
	}

	roles, err := s.users.LoadRoles(ctx, user.ID)
	if err == nil {
		user.Roles = roles
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(user, creds.StoreID, creds.RegisterID)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	logger.Info(ctx, "login", "user_id", user.ID, "register_id", creds.RegisterID)
	return &TokenResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		TokenType:   "Bearer",
		User:        user,
	}, nil
}

// Register creates a new user account.
func (s *Service) Register(ctx context.Context, email, password, fullName string) (*User, error) {
	if len(password) < minPasswordLength {
		return nil, apperror.NewValidation("password too short").
			WithDetail("minLength", minPasswordLength)
	}

	exists, err := s.users.Exists(ctx, email)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if exists {
		return nil, apperror.NewDuplicate("user", "email", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	user := NewUser(email, string(hash))
	user.FullName = fullName

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user registered", "user_id", user.ID, "email", email)
	return user, nil
}

// ChangePassword verifies the current password and replaces it.
func (s *Service) ChangePassword(ctx context.Context, userID id.ID, current, next string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return apperror.NewUnauthorized("current password is incorrect")
	}

	if len(next) < minPasswordLength {
		return apperror.NewValidation("password too short").
			WithDetail("minLength", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternal(err)
	}

	user.PasswordHash = string(hash)
	return s.users.Update(ctx, user)
}

// ValidateToken parses an access token into an operator session.
func (s *Service) ValidateToken(tokenString string) (*session.Session, error) {
	sess, err := s.jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid or expired token")
	}
	return sess, nil
}
