package service_test

import (
	"context"
	"testing"

	"ClipStream.com/cmd/model"
	db "ClipStream.com/cmd/profile/dal/db"
	"ClipStream.com/cmd/profile/service"
	"ClipStream.com/pkg/database"
	"ClipStream.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, _ := gdb.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.Init(gdb)
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username:     username,
		Email:        username + "@x.com",
		PasswordHash: "hash",
		DisplayName:  username,
	}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestGetProfileWithAggregates(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")
	carol := seedUser(t, gdb, "carol")

	assert.NoError(t, gdb.Create(&model.Subscription{SubscriberID: bob.ID, ChannelID: alice.ID}).Error)
	assert.NoError(t, gdb.Create(&model.Subscription{SubscriberID: carol.ID, ChannelID: alice.ID}).Error)
	assert.NoError(t, gdb.Create(&model.Video{UserID: alice.ID, Title: "v1", VideoURL: "u1"}).Error)

	user, subscribers, videos, err := service.NewGetProfileService(ctx).GetProfile(alice.ID, "")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, int64(2), subscribers)
	assert.Equal(t, int64(1), videos)

	// lookup by username resolves the same row
	byName, _, _, err := service.NewGetProfileService(ctx).GetProfile(0, "alice")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
}

func TestGetProfileIdentifierValidation(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, gdb, "alice")

	_, _, _, err := service.NewGetProfileService(ctx).GetProfile(0, "")
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)

	_, _, _, err = service.NewGetProfileService(ctx).GetProfile(alice.ID, "alice")
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestGetProfileNotFound(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	_, _, _, err := service.NewGetProfileService(ctx).GetProfile(999, "")
	assert.Equal(t, int64(errno.RecordNotFoundCode), errno.ConvertErr(err).ErrCode)
}

func TestUpdateProfilePartial(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	alice := seedUser(t, gdb, "alice")
	desc := "my channel"
	_, err := service.NewUpdateProfileService(ctx).UpdateProfile(alice.ID, &db.UserPatch{
		DisplayName:        strptr("Alice A."),
		ChannelDescription: &desc,
	})
	assert.NoError(t, err)

	// only avatar supplied: display name and description stay put
	updated, err := service.NewUpdateProfileService(ctx).UpdateProfile(alice.ID, &db.UserPatch{
		AvatarURL: strptr("http://cdn/a.png"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Alice A.", updated.DisplayName)
	assert.Equal(t, "my channel", *updated.ChannelDescription)
	assert.Equal(t, "http://cdn/a.png", *updated.AvatarURL)
}

func TestUpdateProfileValidation(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, gdb, "alice")

	_, err := service.NewUpdateProfileService(ctx).UpdateProfile(0, &db.UserPatch{DisplayName: strptr("x")})
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)

	_, err = service.NewUpdateProfileService(ctx).UpdateProfile(alice.ID, &db.UserPatch{})
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)

	_, err = service.NewUpdateProfileService(ctx).UpdateProfile(999, &db.UserPatch{DisplayName: strptr("x")})
	assert.Equal(t, int64(errno.RecordNotFoundCode), errno.ConvertErr(err).ErrCode)
}

func strptr(s string) *string {
	return &s
}
