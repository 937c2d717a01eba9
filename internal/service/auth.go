package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/apperr"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

// AuthService registers and logs in users with plaintext credentials
type AuthService interface {
	Register(ctx context.Context, name, email, password string, role models.Role) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
}

type authServiceImpl struct {
	users UserService
	log   logrus.FieldLogger
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserService, log logrus.FieldLogger) AuthService {
	return &authServiceImpl{users: users, log: log}
}

func (s *authServiceImpl) Register(ctx context.Context, name, email, password string, role models.Role) (models.User, error) {
	if name == "" || email == "" || password == "" {
		return models.User{}, apperr.AuthNotValid
	}
	return s.users.AddUser(ctx, models.NewUser(name, email, password, role))
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, apperr.UserNotFound) {
		s.log.WithField("email", email).Warn("login failed")
		return models.User{}, apperr.Unauthorized
	}
	if err != nil {
		return models.User{}, err
	}
	if user.Password != password {
		s.log.WithField("email", email).Warn("login failed")
		return models.User{}, apperr.Unauthorized
	}
	return user, nil
}
