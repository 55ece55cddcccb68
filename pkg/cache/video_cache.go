package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ClipStream.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

// Best-effort read-through cache for video detail lookups. A miss, a marshal
// failure or an unreachable redis all fall back to the relational store.

var rdb *redis.Client

const (
	videoInfoKey    = "video:info:%d"
	videoInfoExpire = 10 * time.Minute
)

func Load() {
	rdb = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		hlog.Warnf("redis unreachable, video cache disabled: %v", err)
		rdb = nil
	}
}

// InitWithClient swaps in an explicit client, used by tests.
func InitWithClient(client *redis.Client) {
	rdb = client
}

// GetVideoInfo loads a cached video detail into dest and reports whether it hit.
func GetVideoInfo(ctx context.Context, videoID int64, dest interface{}) bool {
	if rdb == nil {
		return false
	}
	data, err := rdb.Get(ctx, fmt.Sprintf(videoInfoKey, videoID)).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		hlog.Warnf("corrupt cache entry for video %d: %v", videoID, err)
		return false
	}
	return true
}

func SetVideoInfo(ctx context.Context, videoID int64, val interface{}) {
	if rdb == nil {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, fmt.Sprintf(videoInfoKey, videoID), data, videoInfoExpire).Err(); err != nil {
		hlog.Warnf("cache video %d failed: %v", videoID, err)
	}
}

// DelVideoInfo drops the cached entry after a counter mutation.
func DelVideoInfo(ctx context.Context, videoID int64) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, fmt.Sprintf(videoInfoKey, videoID)).Err(); err != nil {
		hlog.Warnf("invalidate video %d failed: %v", videoID, err)
	}
}
