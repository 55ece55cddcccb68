package service

import (
	"context"

	"ClipStream.com/cmd/model"
	"ClipStream.com/cmd/profile/dal/db"
	"ClipStream.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UpdateProfileService struct {
	ctx context.Context
}

func NewUpdateProfileService(ctx context.Context) *UpdateProfileService {
	return &UpdateProfileService{ctx: ctx}
}

// UpdateProfile applies a partial update; absent fields stay untouched.
func (s *UpdateProfileService) UpdateProfile(userID int64, patch *db.UserPatch) (*model.User, error) {
	if userID == 0 {
		return nil, errno.ParamErr.WithMessage("user_id is required")
	}
	if patch.Empty() {
		return nil, errno.ParamErr.WithMessage("No fields to update")
	}

	user, err := db.UpdateUser(s.ctx, userID, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("User not found")
		}
		return nil, errors.WithMessage(err, "dal.UpdateUser failed")
	}
	return user, nil
}
