package services

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastSummary_DeliversPayload(t *testing.T) {
	h := NewRealtimeHub()
	cl := NewWSClient(7, nil)
	h.Register(cl)

	h.BroadcastSummary(7, map[string]string{"type": "daily_summary"})

	select {
	case msg := <-cl.send:
		assert.JSONEq(t, `{"type":"daily_summary"}`, string(msg))
	default:
		t.Fatal("expected a queued payload")
	}

	// Other users' broadcasts never reach this client.
	h.BroadcastSummary(8, map[string]string{"type": "daily_summary"})
	assert.Empty(t, cl.send)
}

func TestBroadcastSummary_ConcurrentCallers(t *testing.T) {
	h := NewRealtimeHub()
	cl := NewWSClient(1, nil)
	h.Register(cl)

	var received int64
	drained := make(chan struct{})
	go func() {
		for range cl.send {
			atomic.AddInt64(&received, 1)
		}
		close(drained)
	}()

	// Simultaneous meal/activity writes all broadcast to the same user.
	const callers, perCaller = 8, 50
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perCaller; j++ {
				h.BroadcastSummary(1, map[string]string{"type": "daily_summary"})
			}
		}()
	}
	wg.Wait()

	h.Unregister(cl)
	<-drained

	require.Greater(t, atomic.LoadInt64(&received), int64(0))
	assert.LessOrEqual(t, atomic.LoadInt64(&received), int64(callers*perCaller))
}

func TestEnqueue_DropsWhenFull(t *testing.T) {
	cl := NewWSClient(1, nil)

	// Nobody draining: enqueue must drop, not block.
	for i := 0; i < sendBuffer+10; i++ {
		cl.enqueue([]byte("x"))
	}
	assert.Equal(t, sendBuffer, len(cl.send))
}

func TestUnregister_Idempotent(t *testing.T) {
	h := NewRealtimeHub()
	cl := NewWSClient(3, nil)
	h.Register(cl)

	h.Unregister(cl)
	h.Unregister(cl) // second call must not panic on the closed channel

	h.BroadcastSummary(3, map[string]string{"type": "daily_summary"})
}
