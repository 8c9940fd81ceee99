package fontmap

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T, size float64) *Face {
	t.Helper()
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("Failed to parse test font: %v", err)
	}
	return source.Face(size)
}

// TestFaceWarmCache tests that warming covers every rune of the sample.
func TestFaceWarmCache(t *testing.T) {
	face := testFace(t, 16)

	face.WarmCache("Hello")
	for _, r := range "Helo" {
		if !face.IsWarm(r) {
			t.Errorf("Expected %q to be warm", r)
		}
	}
	if face.IsWarm('W') {
		t.Error("Expected 'W' to be cold before warming")
	}
}

// TestFaceWarmCacheMerges tests that repeated warms accumulate.
func TestFaceWarmCacheMerges(t *testing.T) {
	face := testFace(t, 16)

	face.WarmCache("Hello")
	face.WarmCache("World")

	// Union of both samples: H e l o W r d
	for _, r := range "HeloWrd" {
		if !face.IsWarm(r) {
			t.Errorf("Expected %q to be warm after merging samples", r)
		}
	}
	if got := face.CachedGlyphs(); got != 7 {
		t.Errorf("Expected 7 cached glyphs, got %d", got)
	}
}

// TestFaceGlyphComputesOnMiss tests that Glyph fills the cache lazily.
func TestFaceGlyphComputesOnMiss(t *testing.T) {
	face := testFace(t, 16)

	g := face.Glyph('A')
	if g.Rune != 'A' {
		t.Errorf("Expected rune 'A', got %q", g.Rune)
	}
	if g.GID == 0 {
		t.Error("Expected a real glyph index for 'A'")
	}
	if g.Advance <= 0 {
		t.Errorf("Expected positive advance, got %v", g.Advance)
	}
	if !face.IsWarm('A') {
		t.Error("Expected 'A' to be cached after lookup")
	}
}

// TestFaceAdvance tests text advance accumulation.
func TestFaceAdvance(t *testing.T) {
	face := testFace(t, 16)

	single := face.Glyph('A').Advance
	total := face.Advance("AA")
	if total != 2*single {
		t.Errorf("Expected advance %v for \"AA\", got %v", 2*single, total)
	}
	if face.Advance("") != 0 {
		t.Error("Expected zero advance for empty text")
	}
}

// TestFaceMetrics tests size-dependent metrics.
func TestFaceMetrics(t *testing.T) {
	small := testFace(t, 12)
	large := testFace(t, 24)

	ms, ml := small.Metrics(), large.Metrics()
	if ms.Ascent <= 0 || ms.Descent <= 0 {
		t.Errorf("Expected positive ascent/descent, got %+v", ms)
	}
	if ml.Ascent <= ms.Ascent {
		t.Errorf("Expected larger size to have larger ascent: %v vs %v", ml.Ascent, ms.Ascent)
	}
	if got := ms.Height(); got != ms.Ascent+ms.Descent+ms.LineGap {
		t.Errorf("Expected Height to be ascent+descent+line gap, got %v", got)
	}
}

// TestFaceAccessors tests Size and Source.
func TestFaceAccessors(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("Failed to parse test font: %v", err)
	}
	face := source.Face(18)

	if face.Size() != 18 {
		t.Errorf("Expected size 18, got %v", face.Size())
	}
	if face.Source() != source {
		t.Error("Expected Source to return the originating FontSource")
	}
}
