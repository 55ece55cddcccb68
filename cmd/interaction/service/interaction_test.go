package service_test

import (
	"context"
	"testing"
	"time"

	db "ClipStream.com/cmd/interaction/dal/db"
	"ClipStream.com/cmd/interaction/service"
	"ClipStream.com/cmd/model"
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
	user := &model.User{Username: username, Email: username + "@x.com", PasswordHash: "hash", DisplayName: username}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedVideo(t *testing.T, gdb *gorm.DB, ownerID int64) *model.Video {
	t.Helper()
	video := &model.Video{UserID: ownerID, Title: "Hi", VideoURL: "u"}
	if err := gdb.Create(video).Error; err != nil {
		t.Fatalf("seed video: %v", err)
	}
	return video
}

func TestToggleLikeInvolution(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")
	video := seedVideo(t, gdb, alice.ID)

	liked, count, err := service.NewToggleLikeService(ctx).ToggleLike(video.ID, bob.ID)
	assert.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	liked, count, err = service.NewToggleLikeService(ctx).ToggleLike(video.ID, bob.ID)
	assert.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), count)

	var likeRows int64
	assert.NoError(t, gdb.Model(&model.Like{}).Count(&likeRows).Error)
	assert.Equal(t, int64(0), likeRows)
}

func TestToggleLikeCounterNeverNegative(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")
	video := seedVideo(t, gdb, alice.ID)

	// drifted state: like row present but counter already at zero
	assert.NoError(t, gdb.Create(&model.Like{VideoID: video.ID, UserID: bob.ID}).Error)

	liked, count, err := service.NewToggleLikeService(ctx).ToggleLike(video.ID, bob.ID)
	assert.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), count)
}

func TestToggleLikeMissingVideo(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	_, _, err := service.NewToggleLikeService(ctx).ToggleLike(999, 1)
	assert.Equal(t, int64(errno.RecordNotFoundCode), errno.ConvertErr(err).ErrCode)
}

func TestToggleLikeValidation(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	_, _, err := service.NewToggleLikeService(ctx).ToggleLike(0, 1)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
	_, _, err = service.NewToggleLikeService(ctx).ToggleLike(1, 0)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestRecordViewCountsEveryCall(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")
	video := seedVideo(t, gdb, alice.ID)

	var count int64
	var err error
	for i := 0; i < 3; i++ {
		count, err = service.NewRecordViewService(ctx).RecordView(video.ID, &bob.ID)
		assert.NoError(t, err)
	}
	assert.Equal(t, int64(3), count)

	// anonymous views count too
	count, err = service.NewRecordViewService(ctx).RecordView(video.ID, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)

	var anon model.View
	assert.NoError(t, gdb.Where("user_id IS NULL").Take(&anon).Error)
	assert.Equal(t, video.ID, anon.VideoID)
}

func TestRecordViewValidation(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	_, err := service.NewRecordViewService(ctx).RecordView(0, nil)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestToggleSubscriptionAndCheck(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")

	subscribed, err := service.NewToggleSubscriptionService(ctx).ToggleSubscription(bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.True(t, subscribed)

	present, err := service.NewCheckSubscriptionService(ctx).CheckSubscription(bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.True(t, present)

	subscribed, err = service.NewToggleSubscriptionService(ctx).ToggleSubscription(bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.False(t, subscribed)

	present, err = service.NewCheckSubscriptionService(ctx).CheckSubscription(bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.False(t, present)
}

func TestComments(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")
	video := seedVideo(t, gdb, alice.ID)

	first, err := service.NewPostCommentService(ctx).PostComment(video.ID, bob.ID, "first")
	assert.NoError(t, err)
	assert.NotZero(t, first.ID)

	// force distinct timestamps so ordering is observable
	assert.NoError(t, gdb.Model(first).Update("created_at", time.Now().Add(-time.Minute)).Error)

	second, err := service.NewPostCommentService(ctx).PostComment(video.ID, alice.ID, "  second  ")
	assert.NoError(t, err)
	assert.Equal(t, "second", second.Content) // trimmed

	comments, err := service.NewListCommentsService(ctx).ListComments(video.ID)
	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Content)
	assert.Equal(t, "alice", comments[0].AuthorUsername)
	assert.Equal(t, "first", comments[1].Content)
	assert.Equal(t, "bob", comments[1].AuthorUsername)
}

func TestPostCommentValidation(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	_, err := service.NewPostCommentService(ctx).PostComment(0, 1, "hi")
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
	_, err = service.NewPostCommentService(ctx).PostComment(1, 0, "hi")
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
	_, err = service.NewPostCommentService(ctx).PostComment(1, 1, "   ")
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}
