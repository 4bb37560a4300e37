package mocks

import (
	"github.com/user/framepace/pkg/ports"
)

// ChapterQueue is a mock implementation of ports.ChapterQueue that
// records enqueue/dequeue traffic.
type ChapterQueue struct {
	EnqueueCalls []EnqueueCall
	DequeueCalls int

	pending []int
}

// EnqueueCall records a call to Enqueue.
type EnqueueCall struct {
	Seq     int64
	Chapter int
}

func (m *ChapterQueue) Enqueue(seq int64, chapter int) {
	m.EnqueueCalls = append(m.EnqueueCalls, EnqueueCall{Seq: seq, Chapter: chapter})
	m.pending = append(m.pending, chapter)
}

func (m *ChapterQueue) Dequeue() (int, bool) {
	m.DequeueCalls++
	if len(m.pending) == 0 {
		return 0, false
	}
	chapter := m.pending[0]
	m.pending = m.pending[1:]
	return chapter, true
}

func (m *ChapterQueue) Pending() int {
	return len(m.pending)
}

var _ ports.ChapterQueue = (*ChapterQueue)(nil)
