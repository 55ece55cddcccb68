package service

import (
	"context"
	"strings"

	"ClipStream.com/cmd/auth/dal/db"
	"ClipStream.com/cmd/model"
	"ClipStream.com/pkg/errno"
	"ClipStream.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type LoginService struct {
	ctx context.Context
}

func NewLoginService(ctx context.Context) *LoginService {
	return &LoginService{ctx: ctx}
}

// Login verifies the credential and issues a fresh token. An unknown username
// and a wrong password produce the same error, nothing distinguishes the two.
func (s *LoginService) Login(username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", errno.ParamErr.WithMessage("Username and password are required")
	}

	user, err := db.GetUserByUsername(s.ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errno.AuthorizationFailErr
		}
		return nil, "", errors.WithMessage(err, "dal.GetUserByUsername failed")
	}
	if !utils.VerifyPassword(password, user.PasswordHash) {
		return nil, "", errno.AuthorizationFailErr
	}

	token, err := utils.GenerateToken()
	if err != nil {
		return nil, "", errors.WithMessage(err, "generate token failed")
	}
	return user, token, nil
}
