package main

import (
	"context"
	"time"

	authdb "ClipStream.com/cmd/auth/dal/db"
	interactiondb "ClipStream.com/cmd/interaction/dal/db"
	profiledb "ClipStream.com/cmd/profile/dal/db"
	videodb "ClipStream.com/cmd/video/dal/db"

	"ClipStream.com/cmd/api/router"
	"ClipStream.com/config"
	"ClipStream.com/pkg/cache"
	"ClipStream.com/pkg/database"
	"ClipStream.com/pkg/errno"
	"ClipStream.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

func Init() {
	config.Init()
	database.Init()
	authdb.Init(database.DB)
	profiledb.Init(database.DB)
	videodb.Init(database.DB)
	interactiondb.Init(database.DB)
	oss.Init()
	cache.Load()
}

func main() {
	Init()

	addr := config.ConfigInfo.Server.Addr
	if addr == "" {
		addr = "0.0.0.0:8888"
	}
	r := server.New(
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(512*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"error": errno.ServiceErr.ErrMsg,
			})
		})))

	router.Register(r)

	r.Spin()
}
