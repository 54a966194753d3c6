package dal

import (
	"ReelVibe.com/cmd/report/dal/db"
)

func Init() {
	db.Init()
}
