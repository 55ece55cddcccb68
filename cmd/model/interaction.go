package model

import "time"

// Like encodes "liked" by row presence. The composite unique index is what
// makes the toggle idempotent under concurrent requests.
type Like struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	VideoID   int64     `gorm:"column:video_id;uniqueIndex:idx_likes_video_user;not null" json:"video_id"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_likes_video_user;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

type Comment struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	VideoID   int64     `gorm:"column:video_id;index;not null" json:"video_id"`
	UserID    int64     `gorm:"column:user_id;not null" json:"user_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// View rows are append-only; UserID stays nil for anonymous views.
type View struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	VideoID   int64     `gorm:"column:video_id;index;not null" json:"video_id"`
	UserID    *int64    `gorm:"column:user_id" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (View) TableName() string {
	return "views"
}
