package jwt

import (
	"context"
	"time"

	"ReelVibe.com/config"
	"ReelVibe.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/jwt"
)

var (
	AccessTokenJwtMiddleware  *jwt.HertzJWTMiddleware
	RefreshTokenJwtMiddleware *jwt.HertzJWTMiddleware
)

const (
	IdentityKey = "user_id"
	RoleKey     = "role"
)

// TokenPayload 登录后写入token的身份信息 (userId, role)
type TokenPayload struct {
	UserId int64
	Role   string
}

func payloadFunc(data interface{}) jwt.MapClaims {
	if v, ok := data.(*TokenPayload); ok {
		return jwt.MapClaims{
			IdentityKey: v.UserId,
			RoleKey:     v.Role,
		}
	}
	return jwt.MapClaims{}
}

// AccessTokenJwtInit 初始化短期的access-token
func AccessTokenJwtInit() {
	var err error
	AccessTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "reelvibe-access",
		Key:           []byte(config.ConfigInfo.Jwt.AccessSecret),
		Timeout:       time.Hour,
		MaxRefresh:    time.Hour,
		IdentityKey:   IdentityKey,
		PayloadFunc:   payloadFunc,
		TokenLookup:   "header: Authorization, query: token",
		TokenHeadName: "Bearer",
	})
	if err != nil {
		panic(err)
	}
}

// RefreshTokenJwtInit 初始化长期的refresh-token
func RefreshTokenJwtInit() {
	var err error
	RefreshTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "reelvibe-refresh",
		Key:           []byte(config.ConfigInfo.Jwt.RefreshSecret),
		Timeout:       72 * time.Hour,
		MaxRefresh:    72 * time.Hour,
		IdentityKey:   IdentityKey,
		PayloadFunc:   payloadFunc,
		TokenLookup:   "header: Refresh-Token",
		TokenHeadName: "Bearer",
	})
	if err != nil {
		panic(err)
	}
}

func tokenAvailable(ctx context.Context, c *app.RequestContext, mw *jwt.HertzJWTMiddleware) bool {
	claims, err := mw.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok || int64(exp) < time.Now().Unix() {
		return false
	}
	// 把身份信息写入请求上下文 供后续handler使用
	c.Set(IdentityKey, utils.Transfer(claims[IdentityKey]))
	if role, ok := claims[RoleKey].(string); ok {
		c.Set(RoleKey, role)
	}
	return true
}

func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	return tokenAvailable(ctx, c, AccessTokenJwtMiddleware)
}

func IsRefreshTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	return tokenAvailable(ctx, c, RefreshTokenJwtMiddleware)
}

// GenerateAccessToken refresh-token尚未过期时 签发一个新的access-token放入响应头
func GenerateAccessToken(ctx context.Context, c *app.RequestContext) {
	claims, err := RefreshTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		hlog.CtxWarnf(ctx, "failed to parse refresh token: %v", err)
		return
	}
	payload := &TokenPayload{UserId: utils.Transfer(claims[IdentityKey])}
	if role, ok := claims[RoleKey].(string); ok {
		payload.Role = role
	}
	token, _, err := AccessTokenJwtMiddleware.TokenGenerator(payload)
	if err != nil {
		hlog.CtxWarnf(ctx, "failed to generate access token: %v", err)
		return
	}
	c.Header("New-Access-Token", token)
	c.Set(IdentityKey, payload.UserId)
	c.Set(RoleKey, payload.Role)
}

// GenerateTokenPair 登录成功后签发access/refresh双token
func GenerateTokenPair(userId int64, role string) (accessToken, refreshToken string, err error) {
	payload := &TokenPayload{UserId: userId, Role: role}
	accessToken, _, err = AccessTokenJwtMiddleware.TokenGenerator(payload)
	if err != nil {
		return "", "", err
	}
	refreshToken, _, err = RefreshTokenJwtMiddleware.TokenGenerator(payload)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// ConvertJWTPayloadToString 从请求上下文中取出用户身份
func ConvertJWTPayloadToString(ctx context.Context, c *app.RequestContext) (interface{}, error) {
	if v, ok := c.Get(IdentityKey); ok {
		return v, nil
	}
	claims, err := AccessTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return nil, err
	}
	return claims[IdentityKey], nil
}

// GetRole 取出调用方角色 默认为普通用户
func GetRole(ctx context.Context, c *app.RequestContext) string {
	if v, ok := c.Get(RoleKey); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	claims, err := AccessTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return ""
	}
	if role, ok := claims[RoleKey].(string); ok {
		return role
	}
	return ""
}
