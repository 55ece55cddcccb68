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

type RegisterService struct {
	ctx context.Context
}

func NewRegisterService(ctx context.Context) *RegisterService {
	return &RegisterService{ctx: ctx}
}

// Register creates the user and hands back a fresh opaque token. The token is
// never persisted; clients present it on trust.
func (s *RegisterService) Register(username, email, password, displayName string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, "", errno.ParamErr.WithMessage("Username, email and password are required")
	}
	if displayName == "" {
		displayName = username
	}

	hash, err := utils.Crypt(password)
	if err != nil {
		return nil, "", errors.WithMessage(err, "hash password failed")
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
	}
	if err := db.CreateUser(s.ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", errno.RecordAlreadyExist.WithMessage("Username or email already exists")
		}
		return nil, "", errors.WithMessage(err, "dal.CreateUser failed")
	}

	token, err := utils.GenerateToken()
	if err != nil {
		return nil, "", errors.WithMessage(err, "generate token failed")
	}
	return user, token, nil
}
