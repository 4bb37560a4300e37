package pacing

import (
	"github.com/user/framepace/pkg/ports"
)

type pendingMark struct {
	seq     int64
	chapter int
}

// ChapterSync is the in-memory ChapterQueue used when chapter storage
// is not owned externally. Marks accumulate while chapter frames are
// buffered inside the encoder and resolve strictly FIFO against
// successive keyframes: first mark pairs with first keyframe, and so
// on. A mark that never meets a keyframe before end of stream stays
// pending; it is reported, never silently dropped.
type ChapterSync struct {
	pending []pendingMark
}

// NewChapterSync returns an empty chapter queue.
func NewChapterSync() *ChapterSync {
	return &ChapterSync{}
}

// Enqueue records a chapter boundary requested by frame seq.
func (c *ChapterSync) Enqueue(seq int64, chapter int) {
	c.pending = append(c.pending, pendingMark{seq: seq, chapter: chapter})
}

// Dequeue pops the oldest pending mark, pairing it with the keyframe
// packet the caller just observed.
func (c *ChapterSync) Dequeue() (int, bool) {
	if len(c.pending) == 0 {
		return 0, false
	}
	mark := c.pending[0]
	c.pending = c.pending[1:]
	return mark.chapter, true
}

// Pending reports how many marks are still waiting for a keyframe.
func (c *ChapterSync) Pending() int {
	return len(c.pending)
}

var _ ports.ChapterQueue = (*ChapterSync)(nil)
