package viz

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font atlas layout: printable ASCII on a fixed grid, rasterized from the
// Go mono faces at startup. A fixed-advance face keeps glyphs inside their
// cells, so DrawString can advance by whole cells.
const (
	fontCols      = 32
	fontFirstChar = 32  // space
	fontLastChar  = 126 // tilde
)

const fontRows = (fontLastChar-fontFirstChar)/fontCols + 1

// atlasImage is a rasterized font grid ready for texture upload.
type atlasImage struct {
	img   *image.NRGBA
	cellW int
	cellH int
}

func regularAtlas() (atlasImage, error) {
	return buildAtlasImage(gomono.TTF, FontSizeRegular)
}

func italicAtlas() (atlasImage, error) {
	return buildAtlasImage(gomonoitalic.TTF, FontSizeItalic)
}

func buildAtlasImage(ttf []byte, size float64) (atlasImage, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return atlasImage{}, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return atlasImage{}, fmt.Errorf("font face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	cellH := ascent + metrics.Descent.Ceil()

	advance, ok := face.GlyphAdvance('M')
	if !ok {
		return atlasImage{}, fmt.Errorf("font face has no advance for 'M'")
	}
	// Italic glyphs can lean past their advance; one spare pixel keeps the
	// slant inside the cell.
	cellW := advance.Ceil() + 1

	img := image.NewNRGBA(image.Rect(0, 0, cellW*fontCols, cellH*fontRows))
	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for ch := fontFirstChar; ch <= fontLastChar; ch++ {
		col := (ch - fontFirstChar) % fontCols
		row := (ch - fontFirstChar) / fontCols
		d.Dot = fixed.P(col*cellW, row*cellH+ascent)
		d.DrawString(string(rune(ch)))
	}

	return atlasImage{img: img, cellW: cellW, cellH: cellH}, nil
}
