package user

import (
	"context"

	"ReelVibe.com/cmd/api/handlers"
	"ReelVibe.com/cmd/user/service"
	"ReelVibe.com/pkg/errno"
	"ReelVibe.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type RegisterParam struct {
	UserName string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type LoginParam struct {
	UserName string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type UserIdParam struct {
	UserId int64 `json:"user_id" form:"user_id" query:"user_id"`
}

// Register 注册新用户
func Register(ctx context.Context, c *app.RequestContext) {
	var param RegisterParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	u, err := service.NewUserService(ctx).CreateUser(ctx, &service.RegisterRequest{
		UserName: param.UserName,
		Password: param.Password,
	})
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, u)
}

// Login 登录并签发access/refresh双token
func Login(ctx context.Context, c *app.RequestContext) {
	var param LoginParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	u, err := service.NewUserService(ctx).LoginUser(ctx, &service.LoginRequest{
		UserName: param.UserName,
		Password: param.Password,
	})
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	accessToken, refreshToken, err := jwt.GenerateTokenPair(u.UserId, u.Role)
	if err != nil {
		handlers.SendResponse(c, errno.ServiceErr, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"user":          u,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// GetUserInfo 用户资料
func GetUserInfo(ctx context.Context, c *app.RequestContext) {
	var param UserIdParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	u, err := service.NewUserService(ctx).GetUserInfo(ctx, param.UserId)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, u)
}
