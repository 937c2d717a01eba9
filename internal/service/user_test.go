package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/apperr"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/database"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/service/mocks"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

func newUserService(stored ...models.User) (UserService, *mocks.MockRepository[models.User]) {
	repo := new(mocks.MockRepository[models.User])
	repo.On("ReadAll", mock.Anything).Return(append([]models.User{}, stored...), nil)
	return NewUserService(repo, nullLogger()), repo
}

func TestUserService_AddUser(t *testing.T) {
	existing := buildUser("Karam@Example.com")

	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "new email", email: "other@example.com"},
		{name: "same email", email: "Karam@Example.com", wantErr: apperr.UserAlreadyExists},
		{name: "same email different case", email: "karam@example.COM", wantErr: apperr.UserAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newUserService(existing)
			repo.On("WriteAll", mock.Anything, mock.Anything).Return(nil)

			_, err := svc.AddUser(context.Background(), buildUser(tt.email))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	user := buildUser("a@example.com")
	svc, repo := newUserService(user)
	repo.On("WriteAll", mock.Anything, mock.Anything).Return(nil)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteUser(ctx, uuid.New()), apperr.UserNotFound)
	require.NoError(t, svc.DeleteUser(ctx, user.ID))
	repo.AssertCalled(t, "WriteAll", mock.Anything, mock.MatchedBy(func(items []models.User) bool {
		return len(items) == 0
	}))
}

func TestUserService_ModifyUser(t *testing.T) {
	user := buildUser("a@example.com")
	svc, repo := newUserService(user)
	repo.On("WriteAll", mock.Anything, mock.Anything).Return(nil)
	ctx := context.Background()

	promoted := user
	promoted.Role = models.RoleManager
	got, err := svc.ModifyUser(ctx, user.ID, promoted)
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, got.Role)

	_, err = svc.ModifyUser(ctx, uuid.New(), promoted)
	assert.ErrorIs(t, err, apperr.UserNotFound)

	_, err = svc.ModifyUser(ctx, user.ID, buildUser("b@example.com"))
	assert.ErrorIs(t, err, apperr.UserNotFound)
}

func TestUserService_FindByEmail(t *testing.T) {
	user := buildUser("a@example.com")
	svc, _ := newUserService(user)
	ctx := context.Background()

	got, err := svc.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.FindByEmail(ctx, "A@example.com")
	assert.ErrorIs(t, err, apperr.UserNotFound)
}

// AuthSuite runs registration and login against an in-memory store
type AuthSuite struct {
	suite.Suite
	ctx   context.Context
	users UserService
	auth  AuthService
}

func (s *AuthSuite) SetupTest() {
	s.ctx = context.Background()
	s.users = NewUserService(database.NewCollection[models.User](database.NewMemoryStore()), nullLogger())
	s.auth = NewAuthService(s.users, nullLogger())
}

func (s *AuthSuite) TestRegisterAndLogin() {
	registered, err := s.auth.Register(s.ctx, "Karam", "karam@example.com", "secret", models.RolePassenger)
	s.Require().NoError(err)

	user, err := s.auth.Login(s.ctx, "karam@example.com", "secret")
	s.Require().NoError(err)
	s.Equal(registered.ID, user.ID)
	s.Equal(models.RolePassenger, user.Role)
}

func (s *AuthSuite) TestRegisterRejectsBlankFields() {
	cases := [][3]string{
		{"", "a@example.com", "p"},
		{"A", "", "p"},
		{"A", "a@example.com", ""},
	}
	for _, c := range cases {
		_, err := s.auth.Register(s.ctx, c[0], c[1], c[2], models.RoleManager)
		s.ErrorIs(err, apperr.AuthNotValid)
	}
}

func (s *AuthSuite) TestRegisterDuplicateEmail() {
	_, err := s.auth.Register(s.ctx, "A", "a@example.com", "p", models.RolePassenger)
	s.Require().NoError(err)

	_, err = s.auth.Register(s.ctx, "B", "A@EXAMPLE.com", "q", models.RoleManager)
	s.ErrorIs(err, apperr.UserAlreadyExists)
}

func (s *AuthSuite) TestLoginFailures() {
	_, err := s.auth.Register(s.ctx, "A", "a@example.com", "p", models.RolePassenger)
	s.Require().NoError(err)

	_, err = s.auth.Login(s.ctx, "a@example.com", "wrong")
	s.ErrorIs(err, apperr.Unauthorized)

	_, err = s.auth.Login(s.ctx, "nobody@example.com", "p")
	s.ErrorIs(err, apperr.Unauthorized)
	s.ErrorIs(err, apperr.ErrUnauthorized)
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthSuite))
}
