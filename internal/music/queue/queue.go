package queue

import (
	"errors"
	"math/rand"
	"sync"

	"tocadiscos/internal/music/sources"
)

var (
	ErrQueueFull       = errors.New("queue is full")
	ErrIndexOutOfRange = errors.New("track index out of range")
)

// Queue holds the pending tracks and playback flags for one guild.
// All methods are safe for concurrent use; command handlers and the playback
// loop may touch the same queue from different goroutines.
type Queue struct {
	mu       sync.Mutex
	pending  []sources.Track
	current  *sources.Track
	loop     bool
	volume   float64
	capacity int // 0 means unbounded
}

// Snapshot is a read-only copy of queue state for display.
type Snapshot struct {
	Pending []sources.Track
	Current *sources.Track
	Loop    bool
	Volume  float64
}

func New(capacity int, volume float64) *Queue {
	return &Queue{
		capacity: capacity,
		volume:   volume,
	}
}

// Enqueue appends a track. Fails with ErrQueueFull when a capacity is set
// and already reached; the queue is left unchanged in that case.
func (q *Queue) Enqueue(t sources.Track) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.capacity > 0 && len(q.pending) >= q.capacity {
		return ErrQueueFull
	}
	q.pending = append(q.pending, t)
	return nil
}

// TakeNext returns the track to play next. With loop enabled and a current
// track present it repeats the current track and leaves pending untouched;
// otherwise it pops the head of pending and makes it current. The second
// return value is false when nothing is left to play.
func (q *Queue) TakeNext() (sources.Track, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.loop && q.current != nil {
		return *q.current, true
	}
	if len(q.pending) == 0 {
		return sources.Track{}, false
	}
	head := q.pending[0]
	q.pending = q.pending[1:]
	q.current = &head
	return head, true
}

// ClearCurrent drops the now-playing pointer after a track finishes.
func (q *Queue) ClearCurrent() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.current = nil
}

// Clear empties pending and the now-playing pointer. Voice resources are
// lifecycle-independent of queue contents and are not touched here.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = nil
	q.current = nil
}

// Remove deletes one pending entry by 1-based position.
func (q *Queue) Remove(index int) (sources.Track, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if index < 1 || index > len(q.pending) {
		return sources.Track{}, ErrIndexOutOfRange
	}
	removed := q.pending[index-1]
	q.pending = append(q.pending[:index-1], q.pending[index:]...)
	return removed, nil
}

// Shuffle uniformly permutes pending tracks. The current track is untouched.
func (q *Queue) Shuffle() {
	q.mu.Lock()
	defer q.mu.Unlock()

	rand.Shuffle(len(q.pending), func(i, j int) {
		q.pending[i], q.pending[j] = q.pending[j], q.pending[i]
	})
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *Queue) Current() (sources.Track, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.current == nil {
		return sources.Track{}, false
	}
	return *q.current, true
}

func (q *Queue) Loop() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.loop
}

func (q *Queue) SetLoop(loop bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.loop = loop
}

// ToggleLoop flips loop mode and returns the new value.
func (q *Queue) ToggleLoop() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.loop = !q.loop
	return q.loop
}

func (q *Queue) Volume() float64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.volume
}

// SetVolume clamps v into [0,1].
func (q *Queue) SetVolume(v float64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	q.volume = v
}

func (q *Queue) Snapshot() Snapshot {
	q.mu.Lock()
	defer q.mu.Unlock()

	snap := Snapshot{
		Pending: make([]sources.Track, len(q.pending)),
		Loop:    q.loop,
		Volume:  q.volume,
	}
	copy(snap.Pending, q.pending)
	if q.current != nil {
		cur := *q.current
		snap.Current = &cur
	}
	return snap
}
