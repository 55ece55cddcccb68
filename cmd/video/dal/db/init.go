package db

import "gorm.io/gorm"

var DB *gorm.DB

func Init(database *gorm.DB) {
	DB = database
}
