package service

import (
	"context"

	"ClipStream.com/cmd/interaction/dal/db"
	"ClipStream.com/pkg/cache"
	"ClipStream.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ToggleLikeService struct {
	ctx context.Context
}

func NewToggleLikeService(ctx context.Context) *ToggleLikeService {
	return &ToggleLikeService{ctx: ctx}
}

// ToggleLike flips the like state and returns the fresh counter. There is no
// separate like/unlike verb.
func (s *ToggleLikeService) ToggleLike(videoID, userID int64) (bool, int64, error) {
	if videoID == 0 || userID == 0 {
		return false, 0, errno.ParamErr.WithMessage("video_id and user_id are required")
	}

	liked, likesCount, err := db.ToggleLike(s.ctx, videoID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, errno.RecordNotFoundErr.WithMessage("Video not found")
		}
		return false, 0, errors.WithMessage(err, "dal.ToggleLike failed")
	}
	cache.DelVideoInfo(s.ctx, videoID)
	return liked, likesCount, nil
}
