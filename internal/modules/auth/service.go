package auth

import (
	"context"

	"eventdesk/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type jwtService interface {
	GenerateToken(userID int64) (string, error)
}

// Service contains sign-up and sign-in logic. Sign-in persists a session
// row per issued token; the auth middleware rejects tokens without one.
type Service struct {
	users    UserRepository
	sessions SessionRepository
	jwt      jwtService
}

type SignInResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepository, sessions SessionRepository, jwt jwtService) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		jwt:      jwt,
	}
}

func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*domain.User, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*SignInResult, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Create(ctx, &domain.Session{UserID: user.ID, Token: token}); err != nil {
		return nil, err
	}

	return &SignInResult{User: user, Token: token}, nil
}
