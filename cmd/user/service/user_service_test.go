package service

import (
	"context"
	"errors"
	"testing"

	"ReelVibe.com/cmd/model"
	"ReelVibe.com/pkg/constants"
	"ReelVibe.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	byName map[string]*model.User
	byId   map[int64]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byName: make(map[string]*model.User),
		byId:   make(map[int64]*model.User),
	}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *model.User) error {
	f.byName[user.UserName] = user
	f.byId[user.UserId] = user
	return nil
}

func (f *fakeUserStore) GetUserByName(ctx context.Context, userName string) (*model.User, error) {
	user, ok := f.byName[userName]
	if !ok {
		return nil, errors.New("record not found")
	}
	return user, nil
}

func (f *fakeUserStore) GetUserInfo(ctx context.Context, userId int64) (*model.User, error) {
	user, ok := f.byId[userId]
	if !ok {
		return nil, errors.New("record not found")
	}
	return user, nil
}

func (f *fakeUserStore) CheckUserExistsByName(ctx context.Context, userName string) (bool, error) {
	_, ok := f.byName[userName]
	return ok, nil
}

func newUserServiceForTest(store UserStore) *UserService {
	return &UserService{ctx: context.Background(), store: store}
}

func TestCreateUserAndLogin(t *testing.T) {
	store := newFakeUserStore()
	service := newUserServiceForTest(store)
	ctx := context.Background()

	user, err := service.CreateUser(ctx, &RegisterRequest{UserName: "alice", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleUser, user.Role)
	assert.NotEqual(t, "s3cret!", user.Password, "password must be hashed")

	loggedIn, err := service.LoginUser(ctx, &LoginRequest{UserName: "alice", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, user.UserId, loggedIn.UserId)

	_, err = service.LoginUser(ctx, &LoginRequest{UserName: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, errno.PasswordErr.ErrCode, errno.ConvertErr(err).ErrCode)
}

func TestCreateUserDuplicateName(t *testing.T) {
	store := newFakeUserStore()
	service := newUserServiceForTest(store)
	ctx := context.Background()

	_, err := service.CreateUser(ctx, &RegisterRequest{UserName: "bob", Password: "s3cret!"})
	require.NoError(t, err)

	_, err = service.CreateUser(ctx, &RegisterRequest{UserName: "bob", Password: "another1"})
	require.Error(t, err)
	assert.Equal(t, errno.UserExistErr.ErrCode, errno.ConvertErr(err).ErrCode)
}

func TestCreateUserValidation(t *testing.T) {
	service := newUserServiceForTest(newFakeUserStore())
	ctx := context.Background()

	_, err := service.CreateUser(ctx, &RegisterRequest{UserName: "x", Password: "s3cret!"})
	require.Error(t, err)
	assert.Equal(t, errno.RequestErr.ErrCode, errno.ConvertErr(err).ErrCode)

	_, err = service.CreateUser(ctx, &RegisterRequest{UserName: "carol", Password: "123"})
	require.Error(t, err)
	assert.Equal(t, errno.RequestErr.ErrCode, errno.ConvertErr(err).ErrCode)
}
