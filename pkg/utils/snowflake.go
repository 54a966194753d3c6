package utils

import (
	"errors"
	"sync"
	"time"
)

const (
	epoch             = int64(1577836800000) // 起始时间戳 (2020-01-01)
	datacenterIDBits  = uint(5)
	workerIDBits      = uint(5)
	sequenceBits      = uint(12)
	maxDatacenterID   = int64(-1 ^ (-1 << datacenterIDBits))
	maxWorkerID       = int64(-1 ^ (-1 << workerIDBits))
	maxSequence       = int64(-1 ^ (-1 << sequenceBits))
	timestampShift    = sequenceBits + workerIDBits + datacenterIDBits
	datacenterIDShift = sequenceBits + workerIDBits
	workerIDShift     = sequenceBits
)

// Snowflake 雪花算法结构体
type Snowflake struct {
	mutex        sync.Mutex
	lastTime     int64
	workerID     int64
	datacenterID int64
	sequence     int64
}

func NewSnowflake(workerID, datacenterID int64) (*Snowflake, error) {
	if workerID < 0 || workerID > maxWorkerID {
		return nil, errors.New("worker ID out of range")
	}
	if datacenterID < 0 || datacenterID > maxDatacenterID {
		return nil, errors.New("datacenter ID out of range")
	}
	return &Snowflake{
		workerID:     workerID,
		datacenterID: datacenterID,
	}, nil
}

// GenerateID 生成唯一ID
func (s *Snowflake) GenerateID() int64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	currentTime := time.Now().UnixNano() / 1e6
	if currentTime < s.lastTime {
		// 时钟回拨，等待
		time.Sleep(time.Duration(s.lastTime-currentTime) * time.Millisecond)
		currentTime = time.Now().UnixNano() / 1e6
	}

	if currentTime == s.lastTime {
		s.sequence = (s.sequence + 1) & maxSequence
		if s.sequence == 0 {
			// 序列号用完，等待下一毫秒
			for currentTime <= s.lastTime {
				currentTime = time.Now().UnixNano() / 1e6
			}
		}
	} else {
		s.sequence = 0
	}

	s.lastTime = currentTime
	id := ((currentTime - epoch) << timestampShift) |
		(s.datacenterID << datacenterIDShift) |
		(s.workerID << workerIDShift) |
		s.sequence

	return id
}

// GlobalSnowflake 全局雪花算法实例
var GlobalSnowflake *Snowflake

func InitSnowflake(workerID, datacenterID int64) error {
	var err error
	GlobalSnowflake, err = NewSnowflake(workerID, datacenterID)
	return err
}

func nextID() int64 {
	if GlobalSnowflake == nil {
		// 如果未初始化，使用默认配置
		_ = InitSnowflake(1, 1)
	}
	return GlobalSnowflake.GenerateID()
}

// GenerateCommentID 生成评论ID
func GenerateCommentID() int64 { return nextID() }

// GenerateReplyID 生成回复ID
func GenerateReplyID() int64 { return nextID() }

// GenerateReportID 生成举报ID
func GenerateReportID() int64 { return nextID() }

// GenerateReelID 生成Reel ID
func GenerateReelID() int64 { return nextID() }

// GenerateUserID 生成用户ID
func GenerateUserID() int64 { return nextID() }

// GenerateLikeID 生成点赞记录ID
func GenerateLikeID() int64 { return nextID() }

// GenerateNotificationID 生成通知ID
func GenerateNotificationID() int64 { return nextID() }
