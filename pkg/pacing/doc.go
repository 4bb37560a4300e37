// Package pacing recovers decode timestamps for packets produced by an
// encoder that reorders frames internally, and aligns chapter boundary
// markers with the keyframes that carry them.
//
// The encoder is handed frames in presentation order together with a
// sequence-number token. Packets come back in coded order, each echoing
// the token of its source frame. The pacer looks the token up in a
// fixed-window registry to restore the frame's original timing, holds
// packets until the encoder's reorder delay is known, and then assigns
// every packet a render offset (DTS) such that RenderOffset <= Start.
package pacing
