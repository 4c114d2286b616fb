package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCompletionAccumulates(t *testing.T) {
	acc := NewAccumulator()

	acc.RecordCompletion("GET /x", 100)
	acc.RecordCompletion("GET /x", 200)

	snap := acc.Snapshot()
	require.Contains(t, snap.Endpoints, "GET /x")
	assert.Equal(t, int64(2), snap.Endpoints["GET /x"].Count)
	assert.Equal(t, int64(300), snap.Endpoints["GET /x"].TotalMillis)
	assert.Equal(t, int64(2), snap.TotalRequests)
	assert.Equal(t, int64(300), snap.TotalMillis)
}

func TestSnapshotKeysPreserveInsertionOrder(t *testing.T) {
	acc := NewAccumulator()

	acc.RecordCompletion("GET /b", 1)
	acc.RecordCompletion("GET /a", 1)
	acc.RecordCompletion("GET /b", 1)
	acc.RecordCompletion("GET /c", 1)

	snap := acc.Snapshot()
	assert.Equal(t, []string{"GET /b", "GET /a", "GET /c"}, snap.Keys)
}

func TestReset(t *testing.T) {
	acc := NewAccumulator()
	acc.RecordCompletion("GET /x", 100)

	acc.Reset()

	snap := acc.Snapshot()
	assert.Zero(t, snap.TotalRequests)
	assert.Zero(t, snap.TotalMillis)
	assert.Empty(t, snap.Keys)
	assert.Empty(t, snap.Endpoints)
}

func TestSnapshotIsIsolatedCopy(t *testing.T) {
	acc := NewAccumulator()
	acc.RecordCompletion("GET /x", 100)

	snap := acc.Snapshot()
	snap.Endpoints["GET /x"] = EndpointStats{Count: 99, TotalMillis: 9999}
	snap.Endpoints["GET /injected"] = EndpointStats{Count: 1}
	snap.Keys[0] = "mutated"

	fresh := acc.Snapshot()
	assert.Equal(t, int64(1), fresh.Endpoints["GET /x"].Count)
	assert.NotContains(t, fresh.Endpoints, "GET /injected")
	assert.Equal(t, []string{"GET /x"}, fresh.Keys)
}

func TestRecordCompletionConcurrent(t *testing.T) {
	acc := NewAccumulator()

	const workers = 8
	const perWorker = 250

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				acc.RecordCompletion("GET /x", 2)
			}
		}()
	}
	wg.Wait()

	snap := acc.Snapshot()
	assert.Equal(t, int64(workers*perWorker), snap.TotalRequests)
	assert.Equal(t, int64(workers*perWorker*2), snap.TotalMillis)
	assert.Equal(t, int64(workers*perWorker), snap.Endpoints["GET /x"].Count)
}
