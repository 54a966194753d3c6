package dal

import (
	"ReelVibe.com/cmd/user/dal/db"
)

func Init() {
	db.Init()
}
