package ports

// ChapterQueue tracks chapter boundaries that are waiting for the
// keyframe that will carry them. Marks are enqueued when a chapter
// frame is submitted to the encoder and dequeued, strictly FIFO, when
// a keyframe packet is observed. The storage may be owned outside the
// pacing layer; the pacer only issues these calls.
type ChapterQueue interface {
	// Enqueue records a pending chapter boundary requested by the frame
	// with the given sequence number.
	Enqueue(seq int64, chapter int)

	// Dequeue pops the oldest pending mark. ok is false when no mark
	// is pending, in which case the keyframe carries no boundary.
	Dequeue() (chapter int, ok bool)

	// Pending reports how many marks are still waiting for a keyframe.
	Pending() int
}
