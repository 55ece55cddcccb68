package service

import (
	"context"

	"ClipStream.com/cmd/video/dal/db"
	"github.com/pkg/errors"
)

type ListVideosService struct {
	ctx context.Context
}

func NewListVideosService(ctx context.Context) *ListVideosService {
	return &ListVideosService{ctx: ctx}
}

// List returns the newest-first feed, at most one filter applied.
func (s *ListVideosService) List(ownerID int64, shortsOnly bool) ([]db.VideoListRow, error) {
	rows, err := db.ListVideos(s.ctx, ownerID, shortsOnly)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.ListVideos failed")
	}
	return rows, nil
}
