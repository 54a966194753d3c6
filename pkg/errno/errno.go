package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode      = 0
	ServiceErrCode   = 10001
	ParamErrCode     = 10002
	NotFoundErrCode  = 10003
	ForbiddenErrCode = 10004
	ConflictErrCode  = 10005
	MysqlErrCode     = 10006
	RedisErrCode     = 10007
	MqErrCode        = 10008
	OssErrCode       = 10009
	TokenErrCode     = 10010
	UserExistErrCode = 10011
	PasswordErrCode  = 10012
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

// WithMessage 保留错误码 替换提示信息
func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success          = NewErrNo(SuccessCode, "Success")
	ServiceErr       = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	RequestErr       = NewErrNo(ParamErrCode, "Wrong request parameter")
	NotFoundErr      = NewErrNo(NotFoundErrCode, "Resource not found")
	ForbiddenErr     = NewErrNo(ForbiddenErrCode, "No permission to operate")
	ConflictErr      = NewErrNo(ConflictErrCode, "Resource conflict")
	MysqlErr         = NewErrNo(MysqlErrCode, "Mysql is unable to work")
	RedisErr         = NewErrNo(RedisErrCode, "Redis is unable to work")
	MqErr            = NewErrNo(MqErrCode, "Message queue is unable to work")
	OssErr           = NewErrNo(OssErrCode, "Object storage is unable to work")
	TokenInvailedErr = NewErrNo(TokenErrCode, "Token is invalid")
	UserExistErr     = NewErrNo(UserExistErrCode, "User already exists")
	PasswordErr      = NewErrNo(PasswordErrCode, "Wrong password")
)

// ConvertErr 将任意error转换为ErrNo
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
