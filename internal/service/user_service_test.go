package service

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/model"
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/security"
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.dupErr = &mysql.MySQLError{Number: MySQLDuplicateEntry}
	producer := &fakeProducer{}
	svc := NewUserService(userRepo, producer)
	ctx := context.Background()

	err := svc.Register(ctx, &dto.RegisterDTO{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	user, err := userRepo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	// 密码不落明文
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, security.CheckPasswordHash("secret123", user.Password))

	require.Len(t, producer.events, 1)
	assert.Equal(t, consts.EventTypeRegistration, producer.events[0].eventType)
	assert.Equal(t, user.ID, producer.events[0].userId)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.dupErr = &mysql.MySQLError{Number: MySQLDuplicateEntry}
	svc := NewUserService(userRepo, &fakeProducer{})
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &dto.RegisterDTO{Email: "alice@example.com", Password: "secret123"}))
	err := svc.Register(ctx, &dto.RegisterDTO{Email: "alice@example.com", Password: "another66"})
	assert.ErrorIs(t, err, ErrUserEmailExist)
}

func TestLogin(t *testing.T) {
	hash, err := security.HashPassword("secret123")
	require.NoError(t, err)
	userRepo := newFakeUserRepo(&model.User{ID: 10, Email: "alice@example.com", Password: hash})
	userRepo.roles[10] = []*model.Role{{ID: 1, Name: consts.RoleAdmin}}
	svc := NewUserService(userRepo, &fakeProducer{})
	ctx := context.Background()

	result, err := svc.Login(ctx, &dto.LoginDTO{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, uint64(10), result.User.UserID)
	assert.Contains(t, result.User.Roles, consts.RoleAdmin)
	require.NotNil(t, result.User.LastLogin)

	claims, err := security.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), claims.UserID)
	assert.Contains(t, claims.Roles, consts.RoleAdmin)
}

func TestLoginWrongCredentials(t *testing.T) {
	hash, err := security.HashPassword("secret123")
	require.NoError(t, err)
	userRepo := newFakeUserRepo(&model.User{ID: 10, Email: "alice@example.com", Password: hash})
	svc := NewUserService(userRepo, &fakeProducer{})
	ctx := context.Background()

	// 未注册邮箱与错误密码返回同一个错误，不泄露账号是否存在
	_, err = svc.Login(ctx, &dto.LoginDTO{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	_, err = svc.Login(ctx, &dto.LoginDTO{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestGetUserInfo(t *testing.T) {
	userRepo := newFakeUserRepo(&model.User{ID: 10, Email: "alice@example.com"})
	svc := NewUserService(userRepo, &fakeProducer{})
	ctx := context.Background()

	info, err := svc.GetUserInfo(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", info.Email)

	_, err = svc.GetUserInfo(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
