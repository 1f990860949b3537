package render

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestLoadSheetErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr func(error) bool
	}{
		{name: "empty", file: "", wantErr: func(err error) bool { return errors.Is(err, errEmptySheet) }},
		{name: "not_embedded", file: "missing.png", wantErr: func(err error) bool {
			return errors.Is(err, fs.ErrNotExist) && strings.Contains(err.Error(), "missing.png")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := LoadSheet(tt.file)
			if img != nil || !tt.wantErr(err) {
				t.Fatalf("LoadSheet(%q) = %v, %v", tt.file, img, err)
			}
			if GetImage(tt.file) != nil {
				t.Fatalf("failed load registered %q", tt.file)
			}
		})
	}
}
