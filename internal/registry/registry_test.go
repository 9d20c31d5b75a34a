package registry

import (
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func newTestRegistry() *Registry {
	hookLogger, _ := logtest.NewNullLogger()
	return New(logrus.NewEntry(hookLogger))
}

func TestRecordIsIdempotent(t *testing.T) {
	r := newTestRegistry()

	assert.True(t, r.Record(42))
	assert.Equal(t, 1, r.Size())

	assert.False(t, r.Record(42))
	assert.Equal(t, 1, r.Size())
	assert.True(t, r.Contains(42))
}

func TestRecordIgnoresZeroID(t *testing.T) {
	r := newTestRegistry()

	assert.False(t, r.Record(0))
	assert.Equal(t, 0, r.Size())
}

func TestSnapshotIsACopy(t *testing.T) {
	r := newTestRegistry()
	r.Record(1)
	r.Record(2)

	snap := r.Snapshot()
	assert.ElementsMatch(t, []int64{1, 2}, snap)

	snap[0] = 99
	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(2))
	assert.Equal(t, 2, r.Size())
}

func TestConcurrentRecordAndSnapshot(t *testing.T) {
	r := newTestRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		id := int64(i % 10)
		go func() {
			defer wg.Done()
			r.Record(id + 1)
		}()
		go func() {
			defer wg.Done()
			_ = r.Snapshot()
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, r.Size())
}
