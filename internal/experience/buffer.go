package experience

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gridmind/TicTacToeRL/internal/game"
)

// ErrBufferClosed is returned when operations are attempted on a closed buffer
var ErrBufferClosed = errors.New("experience buffer is closed")

// Transition is one agent step: the board before the action, the action,
// the reward, and the board after the environment resolved the step
// (including the opponent's reply).
type Transition struct {
	ID          string
	EpisodeID   string
	State       game.Board
	Action      int
	Reward      float64
	NextState   game.Board
	Done        bool
	Ply         int
	CollectedAt time.Time
}

// Buffer is a thread-safe circular buffer for transitions. When full it
// drops the oldest entry.
type Buffer struct {
	mu       sync.RWMutex
	buffer   []*Transition
	capacity int
	size     int
	head     int // Write position
	tail     int // Read position
	closed   bool

	// Statistics
	totalAdded   int64
	totalDropped int64

	logger zerolog.Logger
}

// NewBuffer creates a new transition buffer with the specified capacity.
func NewBuffer(capacity int, logger zerolog.Logger) *Buffer {
	if capacity <= 0 {
		capacity = 10000 // Default capacity
	}

	return &Buffer{
		buffer:   make([]*Transition, capacity),
		capacity: capacity,
		logger:   logger.With().Str("component", "experience_buffer").Logger(),
	}
}

// Add adds a transition to the buffer.
func (b *Buffer) Add(tr *Transition) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBufferClosed
	}

	b.add(tr)
	return nil
}

// AddBatch adds multiple transitions to the buffer.
func (b *Buffer) AddBatch(transitions []*Transition) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBufferClosed
	}

	for _, tr := range transitions {
		b.add(tr)
	}

	if len(transitions) > 0 {
		b.logger.Debug().
			Int("batch_size", len(transitions)).
			Int64("total_added", b.totalAdded).
			Msg("Added batch of transitions")
	}

	return nil
}

// add assumes the lock is held.
func (b *Buffer) add(tr *Transition) {
	if b.size >= b.capacity {
		// Drop oldest transition (circular buffer behavior)
		b.tail = (b.tail + 1) % b.capacity
		b.totalDropped++
		b.logger.Debug().
			Int64("dropped_total", b.totalDropped).
			Msg("Buffer full, dropping oldest transition")
	} else {
		b.size++
	}

	b.buffer[b.head] = tr
	b.head = (b.head + 1) % b.capacity
	b.totalAdded++
}

// Get retrieves and removes up to n transitions from the buffer, oldest
// first.
func (b *Buffer) Get(n int) []*Transition {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n > b.size {
		n = b.size
	}

	result := make([]*Transition, n)
	for i := 0; i < n; i++ {
		result[i] = b.buffer[b.tail]
		b.tail = (b.tail + 1) % b.capacity
		b.size--
	}

	return result
}

// GetAll retrieves and removes all transitions from the buffer.
func (b *Buffer) GetAll() []*Transition {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.size == 0 {
		return []*Transition{}
	}

	result := make([]*Transition, b.size)
	for i := 0; i < b.size; i++ {
		result[i] = b.buffer[b.tail]
		b.tail = (b.tail + 1) % b.capacity
	}
	b.size = 0

	return result
}

// GetLatest returns the n most recent transitions without removing them.
func (b *Buffer) GetLatest(n int) []*Transition {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n > b.size {
		n = b.size
	}

	result := make([]*Transition, n)
	start := b.size - n
	for i := 0; i < n; i++ {
		idx := (b.tail + start + i) % b.capacity
		result[i] = b.buffer[idx]
	}

	return result
}

// Len returns the current number of buffered transitions.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.size
}

// Capacity returns the buffer capacity.
func (b *Buffer) Capacity() int {
	return b.capacity
}

// TotalAdded returns how many transitions were ever added.
func (b *Buffer) TotalAdded() int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.totalAdded
}

// TotalDropped returns how many transitions were dropped to make room.
func (b *Buffer) TotalDropped() int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.totalDropped
}

// Close marks the buffer closed; further Add calls fail with
// ErrBufferClosed. Buffered transitions remain readable.
func (b *Buffer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}
