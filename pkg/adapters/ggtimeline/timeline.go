// Package ggtimeline renders a PTS/DTS pacing chart using the gg
// library. The chart plots presentation and decode timestamps against
// packet index, with keyframes dotted and chapter boundaries marked,
// and is meant for the debug sink.
package ggtimeline

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/framepace/pkg/ports"
)

const (
	defaultWidth  = 960
	defaultHeight = 540
	margin        = 40.0
	supersample   = 2
)

// Renderer draws pacing timelines.
type Renderer struct {
	width  int
	height int
}

// New creates a renderer with the default chart size.
func New() *Renderer {
	return &Renderer{width: defaultWidth, height: defaultHeight}
}

// NewWithSize creates a renderer with a custom chart size.
func NewWithSize(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// Render draws the chart for the given packets. It always returns an
// image, even for an empty packet list.
func (r *Renderer) Render(packets []ports.Packet) image.Image {
	w := r.width * supersample
	h := r.height * supersample

	dc := gg.NewContext(w, h)
	dc.SetRGB(0.12, 0.12, 0.12)
	dc.Clear()

	if len(packets) > 0 {
		r.drawChart(dc, packets, float64(w), float64(h))
	}

	// Supersampled render scaled down for smoother lines.
	dst := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), dc.Image(), dc.Image().Bounds(), draw.Over, nil)
	return dst
}

func (r *Renderer) drawChart(dc *gg.Context, packets []ports.Packet, w, h float64) {
	m := margin * supersample

	minTS, maxTS := packets[0].RenderOffset, packets[0].Stop
	for _, p := range packets {
		if p.RenderOffset < minTS {
			minTS = p.RenderOffset
		}
		if p.Stop > maxTS {
			maxTS = p.Stop
		}
	}
	span := maxTS - minTS
	if span == 0 {
		span = 1
	}

	x := func(i int) float64 {
		if len(packets) == 1 {
			return m
		}
		return m + (w-2*m)*float64(i)/float64(len(packets)-1)
	}
	y := func(ts int64) float64 {
		return h - m - (h-2*m)*float64(ts-minTS)/float64(span)
	}

	// Axes
	dc.SetRGB(0.45, 0.45, 0.45)
	dc.SetLineWidth(1 * supersample)
	dc.DrawLine(m, h-m, w-m, h-m)
	dc.DrawLine(m, m, m, h-m)
	dc.Stroke()

	// Chapter boundaries
	dc.SetRGB(0.85, 0.75, 0.25)
	for i, p := range packets {
		if p.Chapter > 0 {
			dc.DrawLine(x(i), m, x(i), h-m)
		}
	}
	dc.Stroke()

	// PTS line
	dc.SetRGB(0.35, 0.65, 0.95)
	dc.SetLineWidth(2 * supersample)
	for i := 1; i < len(packets); i++ {
		dc.DrawLine(x(i-1), y(packets[i-1].Start), x(i), y(packets[i].Start))
	}
	dc.Stroke()

	// DTS line
	dc.SetRGB(0.35, 0.85, 0.45)
	for i := 1; i < len(packets); i++ {
		dc.DrawLine(x(i-1), y(packets[i-1].RenderOffset), x(i), y(packets[i].RenderOffset))
	}
	dc.Stroke()

	// Keyframe dots on the PTS line
	dc.SetRGB(0.95, 0.4, 0.4)
	for i, p := range packets {
		if p.Flags&ports.FlagKey != 0 {
			dc.DrawCircle(x(i), y(p.Start), 3*supersample)
			dc.Fill()
		}
	}

	dc.SetRGB(0.8, 0.8, 0.8)
	dc.DrawString("pts", m, m-8*supersample)
	dc.DrawString("dts", m+40*supersample, m-8*supersample)
}

// Ensure Renderer implements ports.ChartRenderer
var _ ports.ChartRenderer = (*Renderer)(nil)
