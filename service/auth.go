package service

import (
	"Tipbox/config"
	"Tipbox/dao"
	"Tipbox/models"
	"Tipbox/pkg/jwt"
	"Tipbox/pkg/response"
	"Tipbox/types"
	"context"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
}

type AuthService struct {
	UserDAO *dao.UserDAO
	Config  *config.Config
}

// Register 注册普通用户
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error) {
	if s.UserDAO.IsUsernameExist(ctx, req.Username) {
		return nil, response.NewError(http.StatusConflict, "用户名已存在")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Password: string(hashed),
		Role:     models.RoleMember,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 校验密码并签发访问令牌
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	user, err := s.UserDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewError(http.StatusUnauthorized, "用户名或密码错误")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, response.NewError(http.StatusUnauthorized, "用户名或密码错误")
	}

	expire := time.Duration(s.Config.Jwt.ExpiresTime) * time.Second
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	token, err := jwt.GenerateToken(
		[]byte(s.Config.Jwt.Secret),
		user.ID,
		string(user.Role),
		"access",
		expire,
	)
	if err != nil {
		return nil, err
	}

	return &types.LoginResponse{
		AccessToken: token,
		UserID:      user.ID,
		Role:        string(user.Role),
	}, nil
}
