package gdan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	a, _ := newTestApp(t)
	a.Screenshot("a")
	a.Screenshot("b")
	a.Screenshot("c")
	if len(a.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(a.screenshotQueue))
	}
	if a.screenshotQueue[0] != "a" || a.screenshotQueue[1] != "b" || a.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", a.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	a, _ := newTestApp(t)
	if a.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", a.ScreenshotDir, "screenshots")
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		100, 50, 0, 200, // half-ish alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	if img.Pix[0] != 127 || img.Pix[1] != 63 || img.Pix[3] != 200 {
		t.Errorf("pixel 0 = %v, want [127 63 0 200]", img.Pix[0:4])
	}
	if img.Pix[4] != 10 || img.Pix[5] != 20 || img.Pix[6] != 30 {
		t.Errorf("opaque pixel changed: %v", img.Pix[4:8])
	}
	if img.Pix[11] != 0 {
		t.Errorf("transparent alpha = %d, want 0", img.Pix[11])
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, unpremultiply([]byte{255, 0, 0, 255}, 1, 1)); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}
