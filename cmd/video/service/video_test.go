package service_test

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"

	"ClipStream.com/cmd/model"
	db "ClipStream.com/cmd/video/dal/db"
	"ClipStream.com/cmd/video/service"
	"ClipStream.com/pkg/database"
	"ClipStream.com/pkg/errno"
	"github.com/pkg/errors"
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

type fakeBlobStore struct {
	key         string
	data        []byte
	contentType string
	err         error
}

func (f *fakeBlobStore) UploadVideo(_ context.Context, key string, data []byte, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.key = key
	f.data = data
	f.contentType = contentType
	return "http://cdn.test/" + key, nil
}

func TestGetVideo(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	alice := seedUser(t, gdb, "alice")
	video := &model.Video{UserID: alice.ID, Title: "Hi", Description: "desc", VideoURL: "http://cdn.test/v.mp4"}
	assert.NoError(t, gdb.Create(video).Error)

	detail, err := service.NewGetVideoService(ctx).GetVideo(video.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Hi", detail.Title)
	assert.Equal(t, alice.ID, detail.AuthorID)
	assert.Equal(t, "alice", detail.AuthorUsername)

	_, err = service.NewGetVideoService(ctx).GetVideo(999)
	assert.Equal(t, int64(errno.RecordNotFoundCode), errno.ConvertErr(err).ErrCode)
}

func TestListVideosCapAndOrder(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	alice := seedUser(t, gdb, "alice")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 55; i++ {
		v := &model.Video{
			UserID:    alice.ID,
			Title:     fmt.Sprintf("v%02d", i),
			VideoURL:  "u",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		assert.NoError(t, gdb.Create(v).Error)
	}

	rows, err := service.NewListVideosService(ctx).List(0, false)
	assert.NoError(t, err)
	assert.Len(t, rows, 50)
	assert.Equal(t, "v54", rows[0].Title)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].CreatedAt.After(rows[i-1].CreatedAt))
	}
}

func TestListVideosFilterPrecedence(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")
	assert.NoError(t, gdb.Create(&model.Video{UserID: alice.ID, Title: "long", VideoURL: "u"}).Error)
	assert.NoError(t, gdb.Create(&model.Video{UserID: bob.ID, Title: "short", VideoURL: "u", IsShort: true}).Error)

	// owner filter wins even when shorts are requested too
	rows, err := service.NewListVideosService(ctx).List(alice.ID, true)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "long", rows[0].Title)

	rows, err = service.NewListVideosService(ctx).List(0, true)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "short", rows[0].Title)
}

func TestUpload(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	alice := seedUser(t, gdb, "alice")
	payload := []byte("fake mp4 bytes")
	store := &fakeBlobStore{}

	video, err := service.NewUploadVideoService(ctx, store).Upload(&service.UploadRequest{
		UserID:    alice.ID,
		Title:     "Hi",
		VideoData: base64.StdEncoding.EncodeToString(payload),
		Duration:  42,
		IsShort:   true,
	})
	assert.NoError(t, err)
	assert.NotZero(t, video.ID)
	assert.Equal(t, payload, store.data)
	assert.Equal(t, "video/mp4", store.contentType)
	assert.True(t, strings.HasPrefix(store.key, fmt.Sprintf("videos/%d_", alice.ID)))
	assert.Equal(t, "http://cdn.test/"+store.key, video.VideoURL)

	var saved model.Video
	assert.NoError(t, gdb.Take(&saved, video.ID).Error)
	assert.Equal(t, int64(0), saved.ViewsCount)
	assert.Equal(t, int64(0), saved.LikesCount)
	assert.True(t, saved.IsShort)
}

func TestUploadValidation(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	store := &fakeBlobStore{}

	cases := []*service.UploadRequest{
		{Title: "Hi", VideoData: "aGk="},
		{UserID: 1, VideoData: "aGk="},
		{UserID: 1, Title: "Hi"},
		{UserID: 1, Title: "   ", VideoData: "aGk="},
		{UserID: 1, Title: "Hi", VideoData: "%%% not base64 %%%"},
	}
	for _, req := range cases {
		_, err := service.NewUploadVideoService(ctx, store).Upload(req)
		assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
	}
}

func TestUploadBlobFailure(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	store := &fakeBlobStore{err: errors.New("minio unreachable")}
	_, err := service.NewUploadVideoService(ctx, store).Upload(&service.UploadRequest{
		UserID:    1,
		Title:     "Hi",
		VideoData: "aGk=",
	})
	assert.Equal(t, int64(errno.ServiceErrCode), errno.ConvertErr(err).ErrCode)
}
