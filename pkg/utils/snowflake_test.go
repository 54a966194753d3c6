package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnowflakeRange(t *testing.T) {
	_, err := NewSnowflake(-1, 1)
	require.Error(t, err)
	_, err = NewSnowflake(1, maxDatacenterID+1)
	require.Error(t, err)
	_, err = NewSnowflake(1, 1)
	require.NoError(t, err)
}

// 点赞记录的主键冲突会被OnConflict吞掉当成重复点赞 所以ID必须全局唯一
func TestGenerateLikeIDUnique(t *testing.T) {
	const workers = 8
	const perWorker = 1000

	var mu sync.Mutex
	seen := make(map[int64]struct{}, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]int64, 0, perWorker)
			for j := 0; j < perWorker; j++ {
				ids = append(ids, GenerateLikeID())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				assert.Positive(t, id)
				_, dup := seen[id]
				assert.False(t, dup, "duplicate id %d", id)
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*perWorker)
}
