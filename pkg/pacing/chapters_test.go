package pacing

import (
	"testing"
)

func TestChapterSync_FIFOOrder(t *testing.T) {
	c := NewChapterSync()
	c.Enqueue(3, 1)
	c.Enqueue(48, 2)
	c.Enqueue(90, 3)

	for want := 1; want <= 3; want++ {
		got, ok := c.Dequeue()
		if !ok {
			t.Fatalf("Dequeue %d: no mark pending", want)
		}
		if got != want {
			t.Errorf("Dequeue = chapter %d, want %d", got, want)
		}
	}
	if _, ok := c.Dequeue(); ok {
		t.Error("Dequeue on empty queue reported a mark")
	}
}

func TestChapterSync_NoMarkPending(t *testing.T) {
	c := NewChapterSync()
	if chapter, ok := c.Dequeue(); ok || chapter != 0 {
		t.Errorf("Dequeue = (%d, %v), want (0, false)", chapter, ok)
	}
}

func TestChapterSync_StarvedMarksStayPending(t *testing.T) {
	c := NewChapterSync()
	c.Enqueue(0, 1)
	c.Enqueue(10, 2)

	if _, ok := c.Dequeue(); !ok {
		t.Fatal("first mark should resolve")
	}
	if got := c.Pending(); got != 1 {
		t.Errorf("Pending = %d, want 1 (starved mark is not dropped)", got)
	}
}
