package db

import (
	"context"

	"ClipStream.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateUser inserts a new user row. A duplicate username or email surfaces as
// gorm.ErrDuplicatedKey through the translated driver error.
func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return errors.Wrap(err, "CreateUser failed")
	}
	return nil
}

func GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("username = ?", username).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "GetUserByUsername failed")
	}
	return &user, nil
}
