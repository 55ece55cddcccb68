package model

import "time"

type User struct {
	ID                 int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username           string    `gorm:"column:username;size:64;uniqueIndex;not null" json:"username"`
	Email              string    `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	PasswordHash       string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	DisplayName        string    `gorm:"column:display_name;size:128" json:"display_name"`
	ChannelDescription *string   `gorm:"column:channel_description;type:text" json:"channel_description"`
	AvatarURL          *string   `gorm:"column:avatar_url;size:512" json:"avatar_url"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
