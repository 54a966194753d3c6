package handlers

import (
	"context"

	"ReelVibe.com/pkg/errno"
	"ReelVibe.com/pkg/jwt"
	"ReelVibe.com/pkg/mq"
	"ReelVibe.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Response 统一响应体 业务码在body里 HTTP状态码恒为200
type Response struct {
	Code int64       `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code: Err.ErrCode,
		Msg:  Err.ErrMsg,
		Data: data,
	})
}

// GetCallerIdentity 从token中取出调用方的(userId, role)
func GetCallerIdentity(ctx context.Context, c *app.RequestContext) (int64, string, error) {
	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		return 0, "", errno.TokenInvailedErr
	}
	userId := utils.Transfer(v)
	if userId <= 0 {
		return 0, "", errno.TokenInvailedErr
	}
	return userId, jwt.GetRole(ctx, c), nil
}

var producer *mq.Producer

// SetProducer 注入MQ生产者 启动时调用一次 测试与MQ不可用时保持nil
func SetProducer(p *mq.Producer) {
	producer = p
}

func GetProducer() *mq.Producer {
	return producer
}
