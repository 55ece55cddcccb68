package service

import (
	"context"

	"ClipStream.com/cmd/video/dal/db"
	"ClipStream.com/pkg/cache"
	"ClipStream.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GetVideoService struct {
	ctx context.Context
}

func NewGetVideoService(ctx context.Context) *GetVideoService {
	return &GetVideoService{ctx: ctx}
}

func (s *GetVideoService) GetVideo(videoID int64) (*db.VideoDetail, error) {
	if videoID == 0 {
		return nil, errno.ParamErr.WithMessage("id is required")
	}

	var cached db.VideoDetail
	if cache.GetVideoInfo(s.ctx, videoID, &cached) {
		return &cached, nil
	}

	detail, err := db.GetVideoDetail(s.ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Video not found")
		}
		return nil, errors.WithMessage(err, "dal.GetVideoDetail failed")
	}
	cache.SetVideoInfo(s.ctx, videoID, detail)
	return detail, nil
}
