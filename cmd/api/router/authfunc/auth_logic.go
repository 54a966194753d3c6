package authfunc

import (
	"context"

	"ReelVibe.com/cmd/api/handlers"
	"ReelVibe.com/pkg/errno"
	"ReelVibe.com/pkg/jwt"
	"ReelVibe.com/pkg/permission"
	"github.com/cloudwego/hertz/pkg/app"
)

// Auth 双token鉴权 access过期但refresh有效时自动续签
func Auth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if jwt.IsAccessTokenAvailable(ctx, c) {
			c.Next(ctx)
			return
		}
		if jwt.IsRefreshTokenAvailable(ctx, c) {
			jwt.GenerateAccessToken(ctx, c)
			c.Next(ctx)
			return
		}
		handlers.SendResponse(c, errno.TokenInvailedErr, nil)
		c.Abort()
	}
}

// ModeratorOnly 审核相关接口只放行admin与super-admin
func ModeratorOnly() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !permission.IsModerator(jwt.GetRole(ctx, c)) {
			handlers.SendResponse(c, errno.ForbiddenErr, nil)
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}
