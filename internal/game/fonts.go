package game

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	bodySize = 13.0
	nameSize = 39.0
)

var (
	bodyFace *text.GoTextFace
	nameFace *text.GoTextFace
)

func init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("[GAME] font: %v", err)
	}
	bodyFace = &text.GoTextFace{Source: src, Size: bodySize}
	nameFace = &text.GoTextFace{Source: src, Size: nameSize}
}

// textWidth is the advance of s in face, in pixels.
func textWidth(s string, face text.Face) float64 {
	return text.Advance(s, face)
}

// centerLeft is the x at which s starts when centered on cx.
func centerLeft(s string, face text.Face, cx float64) float64 {
	return cx - textWidth(s, face)/2
}

// drawText draws s vertically centered on cy. align picks whether x is the
// start, center or end of the line.
func drawText(dst *ebiten.Image, s string, face text.Face, x, cy float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, cy)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}
