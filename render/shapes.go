package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// fillRoundedRect fills a rectangle whose top and bottom corner pairs are
// rounded independently. Colours should be opaque; the corner circles
// overlap the bands they join.
func fillRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, roundTop, roundBottom bool, clr color.Color) {
	if r*2 > w {
		r = w / 2
	}
	if r*2 > h {
		r = h / 2
	}
	if r <= 0 || (!roundTop && !roundBottom) {
		vector.DrawFilledRect(dst, x, y, w, h, clr, true)
		return
	}
	var rt, rb float32
	if roundTop {
		rt = r
	}
	if roundBottom {
		rb = r
	}
	vector.DrawFilledRect(dst, x, y+rt, w, h-rt-rb, clr, true)
	if roundTop {
		vector.DrawFilledRect(dst, x+r, y, w-2*r, r, clr, true)
		vector.DrawFilledCircle(dst, x+r, y+r, r, clr, true)
		vector.DrawFilledCircle(dst, x+w-r, y+r, r, clr, true)
	}
	if roundBottom {
		vector.DrawFilledRect(dst, x+r, y+h-r, w-2*r, r, clr, true)
		vector.DrawFilledCircle(dst, x+r, y+h-r, r, clr, true)
		vector.DrawFilledCircle(dst, x+w-r, y+h-r, r, clr, true)
	}
}

// clip returns the part of dst inside the given screen rectangle. Drawing
// into it keeps dst's coordinates.
func clip(dst *ebiten.Image, x, y, w, h float64) *ebiten.Image {
	r := image.Rect(int(x), int(y), int(x+w+0.5), int(y+h+0.5))
	return dst.SubImage(r).(*ebiten.Image)
}
