package svgraster

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestParseNilForEmptyInput(t *testing.T) {
	if img := Parse(nil); img != nil {
		t.Error("Parse(nil) should return nil")
	}
	if img := Parse([]byte{}); img != nil {
		t.Error("Parse([]byte{}) should return nil")
	}
}

func TestParseMinimalRectDocument(t *testing.T) {
	data := []byte(`<svg width="20" height="20"><rect x="0" y="0" width="10" height="10" fill="#ff0000"/></svg>`)
	img := Parse(data)
	if img == nil {
		t.Fatal("Parse returned nil for a well-formed document")
	}
	if img.Width != 20 || img.Height != 20 {
		t.Errorf("Width/Height = %v/%v, want 20/20", img.Width, img.Height)
	}
	if len(img.Shapes) != 1 {
		t.Fatalf("len(Shapes) = %d, want 1", len(img.Shapes))
	}
	if !img.Shapes[0].HasFill || img.Shapes[0].FillColor.R() != 255 {
		t.Error("rect fill=#ff0000 not reflected in the parsed shape")
	}
}

func TestParseEmptySVGHasNoShapesButIsNonNil(t *testing.T) {
	img := Parse([]byte(`<svg width="10" height="10"></svg>`))
	if img == nil {
		t.Fatal("Parse should return a non-nil Image for a valid empty <svg>")
	}
	if len(img.Shapes) != 0 {
		t.Errorf("len(Shapes) = %d, want 0", len(img.Shapes))
	}
}

func TestParseExtendedColorNamesOption(t *testing.T) {
	data := []byte(`<rect width="1" height="1" fill="cornflowerblue"/>`)

	withoutExt := Parse(bytes.Clone(data))
	if c := withoutExt.Shapes[0].FillColor; uint32(c)&0x00ffffff != 0 {
		t.Errorf("unrecognized keyword without WithExtendedColorNames should resolve to black, got %#x", uint32(c))
	}

	withExt := Parse(bytes.Clone(data), WithExtendedColorNames())
	if uint32(withExt.Shapes[0].FillColor)&0x00ffffff == 0 {
		t.Error("cornflowerblue with WithExtendedColorNames should not resolve to black")
	}
}

func TestParseWithDPIAffectsAbsoluteLengths(t *testing.T) {
	data := []byte(`<svg width="1in" height="1in"></svg>`)
	img := Parse(bytes.Clone(data), WithDPI(72))
	if img.Width != 72 {
		t.Errorf("Width = %v, want 72 (1in at 72dpi)", img.Width)
	}
}

func TestParseReaderMatchesParse(t *testing.T) {
	data := []byte(`<svg width="5" height="5"><rect width="5" height="5" fill="#00ff00"/></svg>`)
	img := ParseReader(bytes.NewReader(data))
	if img == nil || len(img.Shapes) != 1 {
		t.Fatal("ParseReader should parse the same as Parse")
	}
	if img.Shapes[0].FillColor.G() != 255 {
		t.Error("ParseReader did not preserve fill color")
	}
}

func TestParseFileReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.svg")
	data := []byte(`<svg width="3" height="3"><rect width="3" height="3" fill="#0000ff"/></svg>`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	img, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile returned error: %v", err)
	}
	if len(img.Shapes) != 1 || img.Shapes[0].FillColor.B() != 255 {
		t.Error("ParseFile did not correctly parse the written document")
	}
}

func TestParseFileReturnsErrorForMissingFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.svg"))
	if err == nil {
		t.Error("ParseFile should return an error for a nonexistent path")
	}
}
