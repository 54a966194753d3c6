package router

import (
	interactionhandler "ReelVibe.com/cmd/api/handlers/interaction"
	reelhandler "ReelVibe.com/cmd/api/handlers/reel"
	reporthandler "ReelVibe.com/cmd/api/handlers/report"
	userhandler "ReelVibe.com/cmd/api/handlers/user"
	"ReelVibe.com/cmd/api/router/authfunc"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/cors"
)

// Register 注册全部路由
func Register(h *server.Hertz) {
	h.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Refresh-Token"},
		ExposeHeaders:    []string{"New-Access-Token"},
		AllowCredentials: false,
	}))

	api := h.Group("/api/v1")

	userGroup := api.Group("/user")
	userGroup.POST("/register", userhandler.Register)
	userGroup.POST("/login", userhandler.Login)
	userGroup.GET("/info", userhandler.GetUserInfo)

	reelGroup := api.Group("/reel")
	reelGroup.GET("/feed", reelhandler.Feed)
	reelGroup.GET("/get", reelhandler.GetReel)
	reelGroup.GET("/list", reelhandler.ListUserReels)
	reelAuthed := reelGroup.Group("/", authfunc.Auth())
	reelAuthed.POST("/publish", reelhandler.PublishReel)
	reelAuthed.POST("/delete", reelhandler.DeleteReel)

	commentGroup := api.Group("/comment")
	commentGroup.GET("/get", interactionhandler.GetComment)
	commentGroup.GET("/list", interactionhandler.ListComment)
	commentAuthed := commentGroup.Group("/", authfunc.Auth())
	commentAuthed.POST("/create", interactionhandler.CreateComment)
	commentAuthed.POST("/update", interactionhandler.UpdateComment)
	commentAuthed.POST("/delete", interactionhandler.DeleteComment)
	commentAuthed.POST("/like", interactionhandler.CommentLikeAction)

	replyGroup := api.Group("/reply")
	replyGroup.GET("/get", interactionhandler.GetReply)
	replyGroup.GET("/list", interactionhandler.ListReply)
	replyAuthed := replyGroup.Group("/", authfunc.Auth())
	replyAuthed.POST("/add", interactionhandler.AddReply)
	replyAuthed.POST("/update", interactionhandler.UpdateReply)
	replyAuthed.POST("/like", interactionhandler.ReplyLikeAction)

	notificationGroup := api.Group("/notification", authfunc.Auth())
	notificationGroup.GET("/list", interactionhandler.ListNotification)
	notificationGroup.GET("/unread_count", interactionhandler.UnreadNotificationCount)
	notificationGroup.POST("/read", interactionhandler.MarkNotificationRead)
	notificationGroup.POST("/read_all", interactionhandler.MarkAllNotificationsRead)

	reportGroup := api.Group("/report", authfunc.Auth())
	reportGroup.POST("/submit", reporthandler.SubmitReport)
	reportGroup.POST("/withdraw", reporthandler.WithdrawReport)

	// 审核队列只对版主开放
	moderationGroup := api.Group("/moderation", authfunc.Auth(), authfunc.ModeratorOnly())
	moderationGroup.GET("/report/get", reporthandler.GetReport)
	moderationGroup.GET("/report/list", reporthandler.ListReport)
	moderationGroup.POST("/report/review", reporthandler.ReviewReport)
}
