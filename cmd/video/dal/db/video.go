package db

import (
	"context"
	"time"

	"ClipStream.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const listLimit = 50

// VideoDetail is the full metadata row joined with the owner's public identity.
type VideoDetail struct {
	ID                int64     `gorm:"column:id" json:"id"`
	Title             string    `gorm:"column:title" json:"title"`
	Description       string    `gorm:"column:description" json:"description"`
	VideoURL          string    `gorm:"column:video_url" json:"video_url"`
	ThumbnailURL      *string   `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	Duration          int64     `gorm:"column:duration" json:"duration"`
	IsShort           bool      `gorm:"column:is_short" json:"is_short"`
	ViewsCount        int64     `gorm:"column:views_count" json:"views_count"`
	LikesCount        int64     `gorm:"column:likes_count" json:"likes_count"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	AuthorID          int64     `gorm:"column:author_id" json:"author_id"`
	AuthorUsername    string    `gorm:"column:author_username" json:"author_username"`
	AuthorDisplayName string    `gorm:"column:author_display_name" json:"author_display_name"`
	AuthorAvatarURL   *string   `gorm:"column:author_avatar_url" json:"author_avatar_url"`
}

// VideoListRow is the lighter list projection: no description, no likes count.
type VideoListRow struct {
	ID                int64     `gorm:"column:id" json:"id"`
	Title             string    `gorm:"column:title" json:"title"`
	VideoURL          string    `gorm:"column:video_url" json:"video_url"`
	ThumbnailURL      *string   `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	Duration          int64     `gorm:"column:duration" json:"duration"`
	IsShort           bool      `gorm:"column:is_short" json:"is_short"`
	ViewsCount        int64     `gorm:"column:views_count" json:"views_count"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	AuthorID          int64     `gorm:"column:author_id" json:"author_id"`
	AuthorUsername    string    `gorm:"column:author_username" json:"author_username"`
	AuthorDisplayName string    `gorm:"column:author_display_name" json:"author_display_name"`
	AuthorAvatarURL   *string   `gorm:"column:author_avatar_url" json:"author_avatar_url"`
}

func CreateVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrap(err, "CreateVideo failed")
	}
	return nil
}

func GetVideoDetail(ctx context.Context, videoID int64) (*VideoDetail, error) {
	var detail VideoDetail
	err := DB.WithContext(ctx).Table("videos").
		Select("videos.id, videos.title, videos.description, videos.video_url, videos.thumbnail_url, " +
			"videos.duration, videos.is_short, videos.views_count, videos.likes_count, videos.created_at, " +
			"users.id AS author_id, users.username AS author_username, " +
			"users.display_name AS author_display_name, users.avatar_url AS author_avatar_url").
		Joins("JOIN users ON videos.user_id = users.id").
		Where("videos.id = ?", videoID).
		Take(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "GetVideoDetail failed")
	}
	return &detail, nil
}

// ListVideos returns the newest rows first, capped at 50. The owner filter wins
// over the is_short filter when both are set.
func ListVideos(ctx context.Context, ownerID int64, shortsOnly bool) ([]VideoListRow, error) {
	rows := make([]VideoListRow, 0, listLimit)
	query := DB.WithContext(ctx).Table("videos").
		Select("videos.id, videos.title, videos.video_url, videos.thumbnail_url, " +
			"videos.duration, videos.is_short, videos.views_count, videos.created_at, " +
			"users.id AS author_id, users.username AS author_username, " +
			"users.display_name AS author_display_name, users.avatar_url AS author_avatar_url").
		Joins("JOIN users ON videos.user_id = users.id")

	if ownerID != 0 {
		query = query.Where("videos.user_id = ?", ownerID)
	} else if shortsOnly {
		query = query.Where("videos.is_short = ?", true)
	}

	if err := query.Order("videos.created_at DESC, videos.id DESC").Limit(listLimit).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "ListVideos failed")
	}
	return rows, nil
}
