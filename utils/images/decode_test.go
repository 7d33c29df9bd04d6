package images

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"
)

func pngData(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("unable to encode test image: %v", err)
	}
	return buf.Bytes()
}

func gifData(t *testing.T, frames int) []byte {
	t.Helper()
	anim := &gif.GIF{}
	pal := color.Palette{color.Black, color.White}
	for range frames {
		anim.Image = append(anim.Image, image.NewPaletted(image.Rect(0, 0, 4, 3), pal))
		anim.Delay = append(anim.Delay, 10)
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		t.Fatalf("unable to encode test animation: %v", err)
	}
	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    string
		wantErr bool
	}{
		{"png", pngData(t, 2, 2), "png", false},
		{"gif", gifData(t, 1), "gif", false},
		{"svg", plotSVG, FormatSVG, false},
		{"svg with prolog", append([]byte(`<?xml version="1.0"?>`+"\n"), plotSVG...), FormatSVG, false},
		{"text", []byte("plot data 1 2 3"), "", true},
		{"empty", nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Detect() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSizeAndDecode(t *testing.T) {
	data := pngData(t, 7, 5)
	size, err := Size(data, "png")
	if err != nil {
		t.Fatalf("Size() error: %v", err)
	}
	if size != image.Pt(7, 5) {
		t.Fatalf("Size() = %v", size)
	}
	img, err := Decode(data, "png")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if img.Bounds().Size() != size {
		t.Fatalf("decoded bounds %v", img.Bounds())
	}
	if _, err := Decode([]byte("garbage"), "png"); err == nil {
		t.Fatal("Decode() accepted garbage")
	}
	if size, err := Size(plotSVG, FormatSVG); err != nil || size != image.Pt(100, 50) {
		t.Fatalf("svg Size() = %v, %v", size, err)
	}
}

func TestFrames(t *testing.T) {
	frames, err := Frames(gifData(t, 3))
	if err != nil {
		t.Fatalf("Frames() error: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("Frames() returned %d frames", len(frames))
	}
	if frames, _ := Frames(gifData(t, 1)); frames != nil {
		t.Fatal("single frame gif is not an animation")
	}
	if frames, _ := Frames(pngData(t, 1, 1)); frames != nil {
		t.Fatal("png is not an animation")
	}
}

func TestResize(t *testing.T) {
	img, _ := Decode(pngData(t, 100, 50), "png")
	if got := Resize(img, 10, 10).Bounds().Size(); got != image.Pt(10, 10) {
		t.Fatalf("Resize() size %v", got)
	}
	if Resize(img, 100, 50) != img {
		t.Fatal("Resize() to own size must keep image")
	}
}

func TestEncode(t *testing.T) {
	img, _ := Decode(pngData(t, 3, 3), "png")
	for _, name := range []string{"out.png", "out.jpg", "out"} {
		var buf bytes.Buffer
		if err := Encode(&buf, img, name); err != nil {
			t.Fatalf("Encode(%q) error: %v", name, err)
		}
		format, err := Detect(buf.Bytes())
		if err != nil {
			t.Fatalf("Encode(%q) produced undetectable data: %v", name, err)
		}
		want := "png"
		if name == "out.jpg" {
			want = "jpg"
		}
		if format != want {
			t.Fatalf("Encode(%q) produced %s", name, format)
		}
	}
}
