package utils

import (
	"fmt"
	"sync"
	"time"

	DB "Backend-Fieldforce/src/database"

	"github.com/google/uuid"
)

var localLocks sync.Map // lock key -> *sync.Mutex

const (
	lockTTL       = 10 * time.Second
	lockRetryWait = 50 * time.Millisecond
	lockRetries   = 100
)

// LockAttendanceKey serializes check-in / check-out / forced checkout on a
// single (employeeId, projectId, day) key. Uses Redis SET NX when Redis is
// configured so multiple instances serialize too; falls back to an
// in-process mutex otherwise (dev mode without Redis).
//
// Returns a release func that must be called when the critical section ends.
func LockAttendanceKey(employeeID, projectID int, day time.Time) (func(), error) {
	key := fmt.Sprintf("attendance_lock:%d:%d:%s", employeeID, projectID, day.Format("2006-01-02"))

	client := DB.RedisClient
	if client == nil {
		return lockLocal(key), nil
	}

	token := uuid.NewString()
	for i := 0; i < lockRetries; i++ {
		ok, err := client.SetNX(DB.RedisCtx, key, token, lockTTL).Result()
		if err != nil {
			// Redis went away mid-flight; degrade to the local mutex
			return lockLocal(key), nil
		}
		if ok {
			return func() {
				// release only our own token, never a later holder's
				val, err := client.Get(DB.RedisCtx, key).Result()
				if err == nil && val == token {
					client.Del(DB.RedisCtx, key)
				}
			}, nil
		}
		time.Sleep(lockRetryWait)
	}
	return nil, fmt.Errorf("timed out waiting for attendance lock %s", key)
}

func lockLocal(key string) func() {
	v, _ := localLocks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
