package filesink

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/user/framepace/pkg/mocks"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveJobJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	data := []byte(`{"timescale": 90000}`)
	err := sink.SaveJobJSON(data)
	if err != nil {
		t.Fatalf("SaveJobJSON failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "job.json")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SavePacketReport(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	data := []byte(`[{"start": 0, "renderOffset": -1024}]`)
	err := sink.SavePacketReport(data)
	if err != nil {
		t.Fatalf("SavePacketReport failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "packets.json")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveTimeline(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	err := sink.SaveTimeline(img)
	if err != nil {
		t.Fatalf("SaveTimeline failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "timeline.png")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}

	decoded, err := png.Decode(bytes.NewReader(saved))
	if err != nil {
		t.Fatalf("saved timeline is not valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 64 || decoded.Bounds().Dy() != 32 {
		t.Errorf("decoded bounds = %v, want 64x32", decoded.Bounds())
	}
}

func TestSink_SaveStatsLog(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	data := []byte("frames=240 avg_qp=23.5\n")
	err := sink.SaveStatsLog(data)
	if err != nil {
		t.Fatalf("SaveStatsLog failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "stats.log")
	_, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
}
