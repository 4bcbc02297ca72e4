package service

import (
	"context"
	"testing"
	"time"

	"crowlands-be/internal/dto"
	"crowlands-be/internal/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeMailer struct {
	welcomed []string
}

func (f *fakeMailer) SendWelcome(toEmail, name string) error {
	f.welcomed = append(f.welcomed, toEmail)
	return nil
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegisterCreatesFreeTierUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	uow := newFakeUow()
	svc := NewAuthService(&fakeFactory{uow: uow}, &fakeMailer{}, nil)

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "hunter22",
		Name:     "New Seeker",
	})

	require.NoError(t, err)
	assert.Equal(t, "free", res.User.SubscriptionTier)
	assert.Equal(t, "active", res.User.SubscriptionStatus)
	require.Len(t, uow.userRepo.created, 1)
	assert.NotEqual(t, "hunter22", uow.userRepo.created[0].PasswordHash, "password is stored hashed")

	// The token is a 30-day HS256 bearer bound to the new user id.
	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, res.User.Id.String(), claims["user_id"])
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), exp.Time, time.Minute)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	uow := newFakeUow()
	existing := freeUser(0)
	existing.Email = "taken@example.com"
	uow.userRepo.byEmail = map[string]*entity.User{existing.Email: existing}
	svc := NewAuthService(&fakeFactory{uow: uow}, &fakeMailer{}, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "hunter22",
		Name:     "Late Arrival",
	})

	var conflict *dto.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Empty(t, uow.userRepo.created)
}

func TestLoginSucceedsAndStampsLastLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	uow := newFakeUow()
	user := freeUser(0)
	user.PasswordHash = hashed(t, "hunter22")
	uow.userRepo.byEmail = map[string]*entity.User{user.Email: user}
	svc := NewAuthService(&fakeFactory{uow: uow}, &fakeMailer{}, nil)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    user.Email,
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, user.Email, res.User.Email)
	require.Len(t, uow.userRepo.lastLogins, 1)
	assert.Equal(t, user.Id, uow.userRepo.lastLogins[0])
}

func TestLoginPublishesUserLoginEvent(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	uow := newFakeUow()
	user := freeUser(0)
	user.PasswordHash = hashed(t, "hunter22")
	uow.userRepo.byEmail = map[string]*entity.User{user.Email: user}
	bus := &fakeEventPublisher{}
	svc := NewAuthService(&fakeFactory{uow: uow}, &fakeMailer{}, bus)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    user.Email,
		Password: "hunter22",
	})

	require.NoError(t, err)
	require.Len(t, bus.published, 1)
	assert.Equal(t, "USER_LOGIN", bus.published[0].EventType())
	assert.Equal(t, user.Id.String(), bus.published[0].Payload()["user_id"])
}

func TestLoginFailureDoesNotPublish(t *testing.T) {
	uow := newFakeUow()
	user := freeUser(0)
	user.PasswordHash = hashed(t, "hunter22")
	uow.userRepo.byEmail = map[string]*entity.User{user.Email: user}
	bus := &fakeEventPublisher{}
	svc := NewAuthService(&fakeFactory{uow: uow}, &fakeMailer{}, bus)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    user.Email,
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Empty(t, bus.published)
}

func TestLoginWrongPassword(t *testing.T) {
	uow := newFakeUow()
	user := freeUser(0)
	user.PasswordHash = hashed(t, "hunter22")
	uow.userRepo.byEmail = map[string]*entity.User{user.Email: user}
	svc := NewAuthService(&fakeFactory{uow: uow}, &fakeMailer{}, nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    user.Email,
		Password: "wrong",
	})

	var unauthorized *dto.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)
	assert.Equal(t, "invalid credentials", unauthorized.Message)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	uow := newFakeUow()
	svc := NewAuthService(&fakeFactory{uow: uow}, &fakeMailer{}, nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	// Unknown account and wrong password are indistinguishable.
	var unauthorized *dto.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)
	assert.Equal(t, "invalid credentials", unauthorized.Message)
}

func TestUpdateEmailRequiresPassword(t *testing.T) {
	uow := newFakeUow()
	user := freeUser(0)
	user.PasswordHash = hashed(t, "hunter22")
	uow.userRepo.user = user
	svc := NewAuthService(&fakeFactory{uow: uow}, &fakeMailer{}, nil)

	_, err := svc.UpdateEmail(context.Background(), user.Id, &dto.UpdateEmailRequest{
		NewEmail: "fresh@example.com",
		Password: "wrong",
	})

	var unauthorized *dto.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)
	assert.Empty(t, uow.userRepo.emailUpdates)
}

func TestUpdateEmailTakenConflicts(t *testing.T) {
	uow := newFakeUow()
	user := freeUser(0)
	user.PasswordHash = hashed(t, "hunter22")
	other := freeUser(0)
	other.Email = "occupied@example.com"
	uow.userRepo.user = user
	uow.userRepo.byEmail = map[string]*entity.User{other.Email: other}
	svc := NewAuthService(&fakeFactory{uow: uow}, &fakeMailer{}, nil)

	_, err := svc.UpdateEmail(context.Background(), user.Id, &dto.UpdateEmailRequest{
		NewEmail: "occupied@example.com",
		Password: "hunter22",
	})

	var conflict *dto.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Empty(t, uow.userRepo.emailUpdates)
}

func TestUpdateEmailSucceeds(t *testing.T) {
	uow := newFakeUow()
	user := freeUser(0)
	user.PasswordHash = hashed(t, "hunter22")
	uow.userRepo.user = user
	svc := NewAuthService(&fakeFactory{uow: uow}, &fakeMailer{}, nil)

	res, err := svc.UpdateEmail(context.Background(), user.Id, &dto.UpdateEmailRequest{
		NewEmail: "fresh@example.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh@example.com", res.Email)
	require.Len(t, uow.userRepo.emailUpdates, 1)
}

func TestResolveUserUnknownIsNil(t *testing.T) {
	uow := newFakeUow()
	svc := NewAuthService(&fakeFactory{uow: uow}, &fakeMailer{}, nil)

	user, err := svc.ResolveUser(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Nil(t, user)
}
