package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "hero.png", want: "hero.png"},
		{in: "assets/hero.png", want: "hero.png"},
		{in: "/home/me/trophydash/assets/jump.wav", want: "jump.wav"},
		{in: "/tmp/other.png", want: "other.png"},
	}
	for _, tt := range tests {
		if got := cleanAssetPath(tt.in); got != tt.want {
			t.Errorf("cleanAssetPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeImage(t *testing.T) {
	img, err := DecodeImage("hero.png")
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 34*6 || b.Dy() != 52*4 {
		t.Fatalf("hero sheet is %dx%d, want %dx%d", b.Dx(), b.Dy(), 34*6, 52*4)
	}

	if _, err := DecodeImage("missing.png"); err == nil {
		t.Fatal("expected error for missing image")
	}
}

func TestLoadFileWav(t *testing.T) {
	for _, name := range []string{"jump.wav", "collision.wav", "win.wav", "background_music.wav"} {
		b, err := LoadFile(name)
		if err != nil {
			t.Fatalf("LoadFile(%q): %v", name, err)
		}
		if len(b) < 44 || string(b[:4]) != "RIFF" {
			t.Fatalf("%s is not a RIFF file", name)
		}
	}
}
