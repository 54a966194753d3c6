package dal

import (
	"ReelVibe.com/cmd/reel/dal/db"
)

func Init() {
	db.Init()
}
