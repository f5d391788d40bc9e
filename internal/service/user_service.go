package service

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/model"
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/kafka"
	"Kiosque/internal/pkg/redis"
	"Kiosque/internal/pkg/security"
	"Kiosque/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
)

const MySQLDuplicateEntry = 1062

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	producer kafka.EventProducer
}

func NewUserService(userRepo repository.UserRepo, producer kafka.EventProducer) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		producer: producer,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:       regDTO.Email,
		Password:    passwordHash,
		DisplayName: regDTO.DisplayName,
	}
	err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == MySQLDuplicateEntry {
			return ErrUserEmailExist
		}
		return err
	}

	s.producer.Publish(ctx, consts.EventTypeRegistration, user.ID, 0)
	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, loginDTO.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}
	if err := security.CheckPasswordHash(loginDTO.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	roles, err := s.userRepo.GetUserRoles(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	roleNames := make([]string, 0, len(roles))
	for _, role := range roles {
		roleNames = append(roleNames, role.Name)
	}

	token, err := security.GenerateToken(user.ID, roleNames)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		log.WarnContext(ctx, "update last login error", "userID", user.ID, "err", err)
	}
	user.LastLogin = &now

	return &dto.LoginResultDTO{
		Token: token,
		User:  toUserDTO(user, roleNames),
	}, nil
}

// Logout 将令牌签名写入黑名单，有效期与令牌剩余时长一致
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		return nil
	}
	remaining := security.TokenRemaining(claims)
	if remaining <= 0 {
		return nil
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, true, remaining)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	roles, err := s.userRepo.GetUserRoles(ctx, id)
	if err != nil {
		return nil, err
	}
	roleNames := make([]string, 0, len(roles))
	for _, role := range roles {
		roleNames = append(roleNames, role.Name)
	}
	return toUserDTO(user, roleNames), nil
}

func toUserDTO(user *model.User, roleNames []string) *dto.UserDTO {
	return &dto.UserDTO{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Roles:       roleNames,
		LastLogin:   user.LastLogin,
		CreatedAt:   user.CreatedAt,
	}
}
