package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type schedRecorder struct {
	mu    sync.Mutex
	runs  []string
	gens  []uint64
	fired chan struct{}
}

func newSchedRecorder() *schedRecorder {
	return &schedRecorder{fired: make(chan struct{}, 16)}
}

func (r *schedRecorder) run(text string, generation uint64) {
	r.mu.Lock()
	r.runs = append(r.runs, text)
	r.gens = append(r.gens, generation)
	r.mu.Unlock()
	r.fired <- struct{}{}
}

func (r *schedRecorder) texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.runs))
	copy(out, r.runs)
	return out
}

func waitFired(t *testing.T, r *schedRecorder) {
	t.Helper()
	select {
	case <-r.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler never fired")
	}
}

func TestScheduler_CoalescesBurst(t *testing.T) {
	rec := newSchedRecorder()
	sched := NewScheduler(40*time.Millisecond, rec.run)

	sched.Trigger("か")
	sched.Trigger("かい")
	sched.Trigger("かいぎ")

	waitFired(t, rec)
	assert.Equal(t, []string{"かいぎ"}, rec.texts(), "only the last text of the burst fires")
}

func TestScheduler_GenerationSupersedes(t *testing.T) {
	rec := newSchedRecorder()
	sched := NewScheduler(20*time.Millisecond, rec.run)

	first := sched.Trigger("old")
	second := sched.Trigger("new")

	assert.False(t, sched.Current(first))
	assert.True(t, sched.Current(second))

	waitFired(t, rec)
	require.Len(t, rec.texts(), 1)
	assert.Equal(t, "new", rec.texts()[0])
	assert.Equal(t, second, rec.gens[0])
}

func TestScheduler_CancelStopsPending(t *testing.T) {
	rec := newSchedRecorder()
	sched := NewScheduler(30*time.Millisecond, rec.run)

	generation := sched.Trigger("pending")
	sched.Cancel()

	assert.False(t, sched.Current(generation))

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.texts())
}

func TestScheduler_SequentialFires(t *testing.T) {
	rec := newSchedRecorder()
	sched := NewScheduler(10*time.Millisecond, rec.run)

	sched.Trigger("first")
	waitFired(t, rec)
	sched.Trigger("second")
	waitFired(t, rec)

	assert.Equal(t, []string{"first", "second"}, rec.texts())
}
