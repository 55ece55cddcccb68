package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"ClipStream.com/cmd/model"
	"ClipStream.com/cmd/video/dal/db"
	"ClipStream.com/pkg/errno"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// BlobStore is the slice of the object store the upload path needs.
type BlobStore interface {
	UploadVideo(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type UploadVideoService struct {
	ctx   context.Context
	store BlobStore
}

func NewUploadVideoService(ctx context.Context, store BlobStore) *UploadVideoService {
	return &UploadVideoService{ctx: ctx, store: store}
}

type UploadRequest struct {
	UserID      int64
	Title       string
	Description string
	VideoData   string // base64 payload
	Duration    int64
	IsShort     bool
}

// Upload decodes the payload, writes the blob, then records the metadata row.
// A failed insert does not clean the blob up.
func (s *UploadVideoService) Upload(req *UploadRequest) (*model.Video, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.UserID == 0 || req.Title == "" || req.VideoData == "" {
		return nil, errno.ParamErr.WithMessage("user_id, title and video_data are required")
	}

	data, err := base64.StdEncoding.DecodeString(req.VideoData)
	if err != nil {
		return nil, errno.ParamErr.WithMessage("video_data is not valid base64")
	}

	key := fmt.Sprintf("videos/%d_%s_%s.mp4",
		req.UserID, time.Now().Format("20060102_150405"), uuid.New().String()[:8])
	videoURL, err := s.store.UploadVideo(s.ctx, key, data, "video/mp4")
	if err != nil {
		return nil, errors.WithMessage(err, "blob upload failed")
	}

	video := &model.Video{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    videoURL,
		Duration:    req.Duration,
		IsShort:     req.IsShort,
	}
	if err := db.CreateVideo(s.ctx, video); err != nil {
		return nil, errors.WithMessage(err, "dal.CreateVideo failed")
	}
	return video, nil
}
