package ports

import "image"

// ChartRenderer draws a diagnostic chart from paced packets.
type ChartRenderer interface {
	// Render draws the PTS/DTS timeline for the given packets.
	Render(packets []Packet) image.Image
}
