package main

import (
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/collist/config"
)

func TestSetupLog(t *testing.T) {
	defer log.SetOutput(log.Writer())

	setuplog(false)
	if log.Writer() != io.Discard {
		t.Errorf("log output not discarded without -d")
	}
	setuplog(true)
	if log.Writer() != os.Stderr {
		t.Errorf("log output %v with -d, want stderr", log.Writer())
	}
}

func TestParseWinsize(t *testing.T) {
	testvector := []struct {
		s    string
		want image.Rectangle
		ok   bool
	}{
		{"640x480", image.Rect(0, 0, 640, 480), true},
		{"640", image.Rectangle{}, false},
		{"ax480", image.Rectangle{}, false},
		{"640xb", image.Rectangle{}, false},
	}
	for _, tc := range testvector {
		got, err := parsewinsize(tc.s)
		if (err == nil) != tc.ok || got != tc.want {
			t.Errorf("parsewinsize(%q) got %v, %v want %v ok %v", tc.s, got, err, tc.want, tc.ok)
		}
	}
}

func TestScanrows(t *testing.T) {
	got, err := scanrows(strings.NewReader("a\tb\nc\td\n"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a\tb", "c\td"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadrowsFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	if err := os.WriteFile(a, []byte("one\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("two\nthree\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := readrows([]string{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"one", "two", "three"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := readrows([]string{filepath.Join(dir, "missing")}); err == nil {
		t.Error("missing file accepted")
	}
}

func TestHeadless(t *testing.T) {
	c := config.Default()
	c.TabStops = []int{8, 16}
	c.MaxChars = 24
	c.Selected = []int{1}
	rows := []string{"name\tsize\tdate", "a.go\t120\tToday", "b.go\t4\tYesterday"}

	out := filepath.Join(t.TempDir(), "list.png")
	if err := headless(c, rows, out); err != nil {
		t.Fatalf("headless failed: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		t.Errorf("empty image %v", b)
	}

	c.WinSize = "300x100"
	if err := headless(c, rows, out); err != nil {
		t.Fatalf("headless with size failed: %v", err)
	}
	c.WinSize = "300"
	if err := headless(c, rows, out); err == nil {
		t.Error("bad window size accepted")
	}
}
