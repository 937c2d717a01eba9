package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/apperr"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/database"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

// UserService defines the user service interface
type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	AddUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ModifyUser(ctx context.Context, id uuid.UUID, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Add(ctx context.Context, user models.User) (models.User, error)
}

// userServiceImpl implements UserService. Not safe for concurrent use.
type userServiceImpl struct {
	users *cachedList[models.User]
	log   logrus.FieldLogger
}

// NewUserService creates a new UserService
func NewUserService(repo database.Repository[models.User], log logrus.FieldLogger) UserService {
	return &userServiceImpl{
		users: newCachedList(repo, "users", func(u models.User) models.User { return u }),
		log:   log,
	}
}

func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.users.snapshot(ctx)
}

func (s *userServiceImpl) AddUser(ctx context.Context, user models.User) (models.User, error) {
	users, err := s.users.working(ctx)
	if err != nil {
		return models.User{}, err
	}
	if lo.ContainsBy(users, func(u models.User) bool { return strings.EqualFold(u.Email, user.Email) }) {
		return models.User{}, apperr.UserAlreadyExists
	}

	users = append(users, user)
	if err := s.users.commit(ctx, users); err != nil {
		return models.User{}, err
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user added")
	return user, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	users, err := s.users.working(ctx)
	if err != nil {
		return err
	}
	i := indexByID(users, id)
	if i < 0 {
		return apperr.UserNotFound
	}

	users = append(users[:i], users[i+1:]...)
	if err := s.users.commit(ctx, users); err != nil {
		return err
	}

	s.log.WithField("user_id", id).Info("user deleted")
	return nil
}

// ModifyUser checks that id exists and then replaces the user whose id equals user.ID
func (s *userServiceImpl) ModifyUser(ctx context.Context, id uuid.UUID, user models.User) (models.User, error) {
	users, err := s.users.working(ctx)
	if err != nil {
		return models.User{}, err
	}
	if indexByID(users, id) < 0 {
		return models.User{}, apperr.UserNotFound
	}
	i := indexByID(users, user.ID)
	if i < 0 {
		return models.User{}, apperr.UserNotFound
	}

	users[i] = user
	if err := s.users.commit(ctx, users); err != nil {
		return models.User{}, err
	}

	s.log.WithField("user_id", user.ID).Info("user modified")
	return user, nil
}

// FindByEmail returns the user with exactly this email
func (s *userServiceImpl) FindByEmail(ctx context.Context, email string) (models.User, error) {
	users, err := s.users.current(ctx)
	if err != nil {
		return models.User{}, err
	}
	user, ok := lo.Find(users, func(u models.User) bool { return u.Email == email })
	if !ok {
		return models.User{}, apperr.UserNotFound
	}
	return user, nil
}

func (s *userServiceImpl) Add(ctx context.Context, user models.User) (models.User, error) {
	return s.AddUser(ctx, user)
}
