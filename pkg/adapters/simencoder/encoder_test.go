package simencoder

import (
	"testing"

	"github.com/user/framepace/pkg/ports"
)

func submitN(t *testing.T, e *Encoder, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		start := int64(i) * 1000
		frame := ports.Frame{Start: start, Stop: start + 1000}
		if err := e.Submit(frame, int64(i), false); err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
	}
}

func drainTokens(t *testing.T, e *Encoder) []int64 {
	t.Helper()
	var tokens []int64
	for {
		pkt, ok, err := e.Receive()
		if err != nil {
			t.Fatalf("Receive: %v", err)
		}
		if !ok {
			return tokens
		}
		tokens = append(tokens, pkt.Token)
	}
}

func TestEncoder_DepthZeroKeepsSubmissionOrder(t *testing.T) {
	e := New(0, 0)
	if err := e.Begin(ports.EncoderOptions{}); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	submitN(t, e, 5)
	tokens := drainTokens(t, e)

	want := []int64{0, 1, 2, 3, 4}
	if len(tokens) != len(want) {
		t.Fatalf("got %d packets, want %d", len(tokens), len(want))
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d = %d, want %d", i, tokens[i], want[i])
		}
	}
}

func TestEncoder_ReordersLikeBFrameLookahead(t *testing.T) {
	e := New(2, 0)
	if err := e.Begin(ports.EncoderOptions{}); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	submitN(t, e, 7)
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	tokens := drainTokens(t, e)

	// Coded order for display order 0..6 at depth 2.
	want := []int64{0, 3, 1, 2, 6, 4, 5}
	if len(tokens) != len(want) {
		t.Fatalf("got tokens %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("got tokens %v, want %v", tokens, want)
		}
	}
}

func TestEncoder_HoldsLookaheadBeforeFirstPacket(t *testing.T) {
	e := New(4, 0)
	if err := e.Begin(ports.EncoderOptions{}); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	submitN(t, e, 4)
	if tokens := drainTokens(t, e); len(tokens) != 0 {
		t.Fatalf("%d packets before lookahead filled", len(tokens))
	}

	frame := ports.Frame{Start: 4000, Stop: 5000}
	if err := e.Submit(frame, 4, false); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	tokens := drainTokens(t, e)
	if len(tokens) != 1 || tokens[0] != 0 {
		t.Fatalf("first packet = %v, want token 0 alone", tokens)
	}
}

func TestEncoder_ForcedKeyframe(t *testing.T) {
	e := New(0, 0)
	if err := e.Begin(ports.EncoderOptions{}); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	if err := e.Submit(ports.Frame{Start: 0, Stop: 1000}, 0, false); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := e.Submit(ports.Frame{Start: 1000, Stop: 2000}, 1, true); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := e.Submit(ports.Frame{Start: 2000, Stop: 3000}, 2, false); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	var keys []int64
	for {
		pkt, ok, err := e.Receive()
		if err != nil {
			t.Fatalf("Receive: %v", err)
		}
		if !ok {
			break
		}
		if pkt.Keyframe {
			keys = append(keys, pkt.Token)
		}
	}
	if len(keys) != 2 || keys[0] != 0 || keys[1] != 1 {
		t.Errorf("keyframes at %v, want [0 1]", keys)
	}
}

func TestEncoder_FlushDrainsEverything(t *testing.T) {
	e := New(8, 0)
	if err := e.Begin(ports.EncoderOptions{}); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	submitN(t, e, 5)
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	tokens := drainTokens(t, e)
	if len(tokens) != 5 {
		t.Fatalf("flush drained %d packets, want 5", len(tokens))
	}
	for i, tok := range tokens {
		if tok != int64(i) {
			t.Errorf("tail packet %d = token %d, want %d (display order)", i, tok, i)
		}
	}
}

func TestEncoder_StatsAfterFlush(t *testing.T) {
	e := New(2, 0)
	if err := e.Begin(ports.EncoderOptions{}); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if s := e.Stats(); s != "" {
		t.Errorf("stats before flush = %q, want empty", s)
	}

	submitN(t, e, 3)
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if s := e.Stats(); s == "" {
		t.Error("no stats after flush")
	}
	if s := e.Stats(); s != "" {
		t.Errorf("stats returned twice: %q", s)
	}
}
