package db

import (
	"context"

	"ReelVibe.com/cmd/model"
)

func CreateUser(ctx context.Context, user *model.User) error {
	return DB.WithContext(ctx).Create(user).Error
}

func GetUserByName(ctx context.Context, userName string) (*model.User, error) {
	user := &model.User{}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", userName).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserInfo(ctx context.Context, userId int64) (*model.User, error) {
	user := &model.User{}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func CheckUserExistsByName(ctx context.Context, userName string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", userName).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}
