package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Without Redis the lock falls back to an in-process keyed mutex; these
// tests cover that path.
func TestLockAttendanceKey(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("SerializesSameKey", func(t *testing.T) {
		const goroutines = 20
		counter := 0
		var wg sync.WaitGroup

		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				release, err := LockAttendanceKey(7, 12, day)
				assert.NoError(t, err)
				defer release()

				// racy without the lock
				v := counter
				time.Sleep(time.Millisecond)
				counter = v + 1
			}()
		}
		wg.Wait()

		assert.Equal(t, goroutines, counter)
	})

	t.Run("DifferentKeysDoNotBlockEachOther", func(t *testing.T) {
		release1, err := LockAttendanceKey(1, 12, day)
		assert.NoError(t, err)
		defer release1()

		done := make(chan struct{})
		go func() {
			release2, err := LockAttendanceKey(2, 12, day)
			assert.NoError(t, err)
			release2()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("lock on a different key blocked")
		}
	})

	t.Run("ReleaseAllowsReacquire", func(t *testing.T) {
		release, err := LockAttendanceKey(3, 12, day)
		assert.NoError(t, err)
		release()

		release, err = LockAttendanceKey(3, 12, day)
		assert.NoError(t, err)
		release()
	})
}
