package service

import (
	"context"

	"ClipStream.com/cmd/model"
	"ClipStream.com/cmd/profile/dal/db"
	"ClipStream.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GetProfileService struct {
	ctx context.Context
}

func NewGetProfileService(ctx context.Context) *GetProfileService {
	return &GetProfileService{ctx: ctx}
}

// GetProfile resolves a user by exactly one of id or username and returns the
// profile together with its on-demand aggregates.
func (s *GetProfileService) GetProfile(userID int64, username string) (*model.User, int64, int64, error) {
	if (userID == 0) == (username == "") {
		return nil, 0, 0, errno.ParamErr.WithMessage("user_id or username is required")
	}

	var user *model.User
	var err error
	if userID != 0 {
		user, err = db.GetUserByID(s.ctx, userID)
	} else {
		user, err = db.GetUserByUsername(s.ctx, username)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, 0, errno.RecordNotFoundErr.WithMessage("User not found")
		}
		return nil, 0, 0, errors.WithMessage(err, "dal.GetUser failed")
	}

	subscribers, err := db.CountSubscribers(s.ctx, user.ID)
	if err != nil {
		return nil, 0, 0, errors.WithMessage(err, "dal.CountSubscribers failed")
	}
	videos, err := db.CountVideos(s.ctx, user.ID)
	if err != nil {
		return nil, 0, 0, errors.WithMessage(err, "dal.CountVideos failed")
	}
	return user, subscribers, videos, nil
}
