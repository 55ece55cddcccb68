package model

import "time"

type Video struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       int64     `gorm:"column:user_id;index;not null" json:"user_id"`
	Title        string    `gorm:"column:title;size:255;not null" json:"title"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	VideoURL     string    `gorm:"column:video_url;size:512;not null" json:"video_url"`
	ThumbnailURL *string   `gorm:"column:thumbnail_url;size:512" json:"thumbnail_url"`
	Duration     int64     `gorm:"column:duration;default:0" json:"duration"`
	IsShort      bool      `gorm:"column:is_short;default:false" json:"is_short"`
	ViewsCount   int64     `gorm:"column:views_count;default:0" json:"views_count"`
	LikesCount   int64     `gorm:"column:likes_count;default:0" json:"likes_count"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (Video) TableName() string {
	return "videos"
}
