package dal

import (
	"ReelVibe.com/cmd/interaction/dal/db"
)

func Init() {
	db.Init()
}
