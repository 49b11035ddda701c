package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iburimskiy/cursorglow/internal/highlight"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	want := Record{
		Size:             50,
		Color:            [4]float64{1, 1, 1, 0.8},
		CornerRadius:     15,
		Rotation:         0,
		Shape:            "rounded_square",
		BorderWidth:      4,
		InnerStrokeWidth: 2,
		AnimationEnabled: true,
		AnimationSpeed:   5.0,
		InnerOpacity:     0.5,
		GlowSize:         10.0,
		GlowOpacity:      0.3,
		InnerPadding:     4,
	}
	if d != want {
		t.Errorf("Defaults() = %+v, want %+v", d, want)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Defaults().Validate() = %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	h := highlight.New(time.Time{})
	h.Size = 73.25
	h.Color = highlight.Color{R: 0.1, G: 0.2, B: 0.30000000000000004, A: 1.0 / 3}
	h.CornerRadius = 0
	h.Rotation = 359.5
	h.Shape = highlight.Circle
	h.BorderWidth = 1.5
	h.InnerStrokeWidth = 0
	h.AnimationEnabled = false
	h.AnimationSpeed = 0.05
	h.InnerOpacity = 0.1
	h.GlowSize = 0
	h.GlowOpacity = 1
	h.InnerPadding = 2.75

	data, err := Encode(Serialize(h))
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	rec, err := Decode(data, Defaults())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	got := highlight.New(time.Time{})
	rec.Apply(got)
	if Serialize(got) != Serialize(h) {
		t.Errorf("round trip = %+v, want %+v", Serialize(got), Serialize(h))
	}
}

func TestDecodeMissingKeysUseDefaults(t *testing.T) {
	rec, err := Decode([]byte(`{"size": 80, "shape": "circle"}`), Defaults())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	want := Defaults()
	want.Size = 80
	want.Shape = "circle"
	if rec != want {
		t.Errorf("Decode() = %+v, want %+v", rec, want)
	}
}

func TestDecodeFallsBackPerField(t *testing.T) {
	doc := `{
  "shape": "hexagon",
  "size": "big",
  "glow_size": -3,
  "inner_opacity": 2,
  "color": [0.5, 0.5, 0.5, 1],
  "rotation": 45
}`
	rec, err := Decode([]byte(doc), Defaults())
	if err == nil {
		t.Fatal("Decode() error = nil, want warnings")
	}
	for _, key := range []string{"shape", "size", "glow_size", "inner_opacity"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("warnings %q do not mention %s", err, key)
		}
	}

	want := Defaults()
	want.Color = [4]float64{0.5, 0.5, 0.5, 1}
	want.Rotation = 45
	if rec != want {
		t.Errorf("Decode() = %+v, want %+v", rec, want)
	}
}

func TestDecodeNotAnObject(t *testing.T) {
	rec, err := Decode([]byte(`[1, 2, 3]`), Defaults())
	if err == nil {
		t.Error("Decode() error = nil for a JSON array")
	}
	if rec != Defaults() {
		t.Errorf("Decode() = %+v, want defaults", rec)
	}
}

func TestStoreMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "cursorglow", "settings.json"))
	rec, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if rec != Defaults() {
		t.Errorf("Load() = %+v, want defaults", rec)
	}
}

func TestStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cursorglow", "settings.json")
	s := NewStore(path)

	rec := Defaults()
	rec.Size = 64
	rec.Shape = "circle"
	if err := s.Save(rec); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"size\": 64,") {
		t.Errorf("settings not written with two-space indent:\n%s", data)
	}
	if !strings.HasPrefix(string(data), "{\n  \"size\"") {
		t.Errorf("size is not the first key:\n%s", data)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded != rec {
		t.Errorf("Load() = %+v, want %+v", loaded, rec)
	}
}

func TestStoreLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	rec, err := NewStore(path).Load()
	if err == nil {
		t.Error("Load() error = nil for malformed file")
	}
	if rec != Defaults() {
		t.Errorf("Load() = %+v, want defaults", rec)
	}
}
