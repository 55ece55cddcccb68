package router

import (
	auth "ClipStream.com/cmd/api/handlers/auth"
	interaction "ClipStream.com/cmd/api/handlers/interaction"
	profile "ClipStream.com/cmd/api/handlers/profile"
	video "ClipStream.com/cmd/api/handlers/video"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// Register wires the four endpoint groups. Verbs outside each group's contract
// answer 405 with the usual error body; OPTIONS preflight is handled by the
// CORS middleware before routing.
func Register(h *server.Hertz) {
	api := h.Group("/api")

	api.POST("/auth", auth.AuthAction)
	api.GET("/auth", auth.MethodNotAllowed)
	api.PUT("/auth", auth.MethodNotAllowed)
	api.DELETE("/auth", auth.MethodNotAllowed)

	api.GET("/profile", profile.GetProfile)
	api.POST("/profile", profile.UpdateProfile)
	api.PUT("/profile", profile.MethodNotAllowed)
	api.DELETE("/profile", profile.MethodNotAllowed)

	api.GET("/videos", video.ListOrGetVideos)
	api.POST("/videos", video.VideoAction)
	api.PUT("/videos", video.MethodNotAllowed)
	api.DELETE("/videos", video.MethodNotAllowed)

	api.GET("/interactions", interaction.InteractionAction)
	api.POST("/interactions", interaction.InteractionAction)
	api.DELETE("/interactions", interaction.InteractionAction)
	api.PUT("/interactions", interaction.MethodNotAllowed)
}
