package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"ReelVibe.com/cmd/model"
	"ReelVibe.com/cmd/user/dal/db"
	"ReelVibe.com/pkg/constants"
	"ReelVibe.com/pkg/errno"
	"ReelVibe.com/pkg/utils"
)

// UserStore 用户服务依赖的存储操作
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByName(ctx context.Context, userName string) (*model.User, error)
	GetUserInfo(ctx context.Context, userId int64) (*model.User, error)
	CheckUserExistsByName(ctx context.Context, userName string) (bool, error)
}

type dbUserStore struct{}

func (dbUserStore) CreateUser(ctx context.Context, user *model.User) error {
	return db.CreateUser(ctx, user)
}
func (dbUserStore) GetUserByName(ctx context.Context, userName string) (*model.User, error) {
	return db.GetUserByName(ctx, userName)
}
func (dbUserStore) GetUserInfo(ctx context.Context, userId int64) (*model.User, error) {
	return db.GetUserInfo(ctx, userId)
}
func (dbUserStore) CheckUserExistsByName(ctx context.Context, userName string) (bool, error) {
	return db.CheckUserExistsByName(ctx, userName)
}

type RegisterRequest struct {
	UserName string
	Password string
}

type LoginRequest struct {
	UserName string
	Password string
}

type UserService struct {
	ctx   context.Context
	store UserStore
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx, store: dbUserStore{}}
}

// CreateUser 注册 用户名唯一 密码bcrypt入库
func (service *UserService) CreateUser(ctx context.Context, req *RegisterRequest) (*model.User, error) {
	userName := strings.TrimSpace(req.UserName)
	if utf8.RuneCountInString(userName) < 2 || utf8.RuneCountInString(userName) > 32 {
		return nil, errno.RequestErr.WithMessage("username must be 2-32 characters")
	}
	if len(req.Password) < 6 {
		return nil, errno.RequestErr.WithMessage("password must be at least 6 characters")
	}

	exists, err := service.store.CheckUserExistsByName(ctx, userName)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if exists {
		return nil, errno.UserExistErr
	}

	hashed, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errno.ServiceErr
	}

	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserId:    utils.GenerateUserID(),
		UserName:  userName,
		Password:  hashed,
		Role:      constants.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := service.store.CreateUser(ctx, user); err != nil {
		return nil, errno.MysqlErr
	}
	return user, nil
}

// LoginUser 校验用户名密码 成功返回用户 token由handler签发
func (service *UserService) LoginUser(ctx context.Context, req *LoginRequest) (*model.User, error) {
	user, err := service.store.GetUserByName(ctx, strings.TrimSpace(req.UserName))
	if err != nil {
		return nil, errno.PasswordErr
	}
	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, errno.PasswordErr
	}
	return user, nil
}

// GetUserInfo 用户资料
func (service *UserService) GetUserInfo(ctx context.Context, userId int64) (*model.User, error) {
	user, err := service.store.GetUserInfo(ctx, userId)
	if err != nil {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}
	return user, nil
}
