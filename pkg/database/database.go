package database

import (
	"fmt"
	"time"

	"ClipStream.com/cmd/model"
	"ClipStream.com/config"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init opens the process-wide MySQL pool. Every request checks a connection out
// of this pool through gorm instead of dialing per call.
func Init() {
	var err error
	c := config.ConfigInfo.Mysql
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=True&loc=Local",
		c.Username, c.Password, c.Addr, c.Database, c.Charset)
	DB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
			TranslateError:         true,
		},
	)
	if err != nil {
		panic(err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		panic(err)
	}
	if c.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetime != "" {
		if lifetime, err := time.ParseDuration(c.ConnMaxLifetime); err == nil {
			sqlDB.SetConnMaxLifetime(lifetime)
		} else {
			logrus.Warnf("invalid mysql.conn_max_lifetime %q: %v", c.ConnMaxLifetime, err)
		}
	}

	if err := Migrate(DB); err != nil {
		panic(err)
	}
}

// Migrate creates the tables and the unique indexes the toggle pattern relies on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Like{},
		&model.Subscription{},
		&model.Comment{},
		&model.View{},
	)
}
