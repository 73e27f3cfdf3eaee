package render

import (
	"image/color"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Fonts caches UI faces by point size.
type Fonts struct {
	font  *opentype.Font
	size  float64
	faces map[float64]font.Face
}

// LoadFonts parses the TrueType file at path. When the file is missing or
// unreadable every face falls back to basicfont.Face7x13.
func LoadFonts(path string, size float64) *Fonts {
	fs := &Fonts{size: size, faces: make(map[float64]font.Face)}
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("ui font not found, using basic font", "path", path, "err", err)
		return fs
	}
	f, err := opentype.Parse(data)
	if err != nil {
		slog.Warn("ui font parse error, using basic font", "path", path, "err", err)
		return fs
	}
	fs.font = f
	return fs
}

// Face returns the default UI face.
func (fs *Fonts) Face() font.Face {
	return fs.FaceOf(fs.size)
}

// FaceOf returns the face for a point size.
func (fs *Fonts) FaceOf(size float64) font.Face {
	if fs == nil || fs.font == nil || size <= 0 {
		return basicfont.Face7x13
	}
	if face, ok := fs.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(fs.font, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		slog.Warn("ui font face error, using basic font", "size", size, "err", err)
		face = basicfont.Face7x13
	}
	fs.faces[size] = face
	return face
}

// TextWidth measures the advance of s in pixels.
func TextWidth(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

// DrawTextLines draws multiline text with the provided font.Face and color
// starting at (x,y), where y is the top of the first line.
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := ascent + metrics.Descent.Ceil()
	if lineHeight <= 0 {
		lineHeight = 16
		ascent = 12
	}
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, y+ascent+i*lineHeight, clr)
	}
}
