package db

import (
	"ReelVibe.com/cmd/model"
	"ReelVibe.com/pkg/utils"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"
)

var DB *gorm.DB

// Init init DB
func Init() {
	var err error
	dsn := utils.GetMysqlDsn()
	DB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		panic(err)
	}
	if err = DB.Use(gormopentracing.New()); err != nil {
		panic(err)
	}

	if err = DB.AutoMigrate(
		&model.Comment{},
		&model.Reply{},
		&model.CommentLike{},
		&model.ReplyLike{},
		&model.Notification{},
	); err != nil {
		panic(err)
	}
}
