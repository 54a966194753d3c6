package lock

import (
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

var rs *redsync.Redsync

// Init 基于Redis构建分布式锁 用于收敛举报去重的check-then-act窗口
func Init(client *redis.Client) {
	pool := goredis.NewPool(client)
	rs = redsync.New(pool)
}

// NewMutex 短租约互斥锁 持有方崩溃后自动过期
func NewMutex(name string) *redsync.Mutex {
	if rs == nil {
		return nil
	}
	return rs.NewMutex(name,
		redsync.WithExpiry(8*time.Second),
		redsync.WithTries(3),
	)
}
