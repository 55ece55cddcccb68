package service

import (
	"context"

	"ClipStream.com/cmd/interaction/dal/db"
	"ClipStream.com/pkg/cache"
	"ClipStream.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type RecordViewService struct {
	ctx context.Context
}

func NewRecordViewService(ctx context.Context) *RecordViewService {
	return &RecordViewService{ctx: ctx}
}

// RecordView appends a view, anonymous when userID is nil. Every call counts,
// repeat views are not deduplicated.
func (s *RecordViewService) RecordView(videoID int64, userID *int64) (int64, error) {
	if videoID == 0 {
		return 0, errno.ParamErr.WithMessage("video_id is required")
	}

	viewsCount, err := db.AddView(s.ctx, videoID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errno.RecordNotFoundErr.WithMessage("Video not found")
		}
		return 0, errors.WithMessage(err, "dal.AddView failed")
	}
	cache.DelVideoInfo(s.ctx, videoID)
	return viewsCount, nil
}
