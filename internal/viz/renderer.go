package viz

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// fontAtlas is an uploaded font texture plus its cell metrics and the quad
// buffer accumulated for the current frame.
type fontAtlas struct {
	tex   uint32
	cellW int
	cellH int
	buf   []float32
}

// Renderer turns a laid-out Frame into GL draw calls. Three programs: flat
// screen-space rects, point-sprite lamps, and textured font quads.
type Renderer struct {
	rectProg uint32
	rectVAO  uint32
	rectVBO  uint32
	rectURes int32

	lampProg uint32
	lampVAO  uint32
	lampVBO  uint32
	lampURes int32

	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32

	fonts [2]fontAtlas // indexed by Font

	// Reusable buffers to avoid per-frame heap allocations.
	rectBuf []float32
	lampBuf []float32
}

func NewRenderer() (*Renderer, error) {
	rectProg, err := linkProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		return nil, fmt.Errorf("rect program: %w", err)
	}
	lampProg, err := linkProgram(lampVertSrc, lampFragSrc)
	if err != nil {
		gl.DeleteProgram(rectProg)
		return nil, fmt.Errorf("lamp program: %w", err)
	}

	r := &Renderer{
		rectProg: rectProg,
		lampProg: lampProg,
	}

	// Rect VAO/VBO: streaming triangles, 6 floats per vertex (pos2 + color4).
	var rVAO, rVBO uint32
	gl.GenVertexArrays(1, &rVAO)
	gl.GenBuffers(1, &rVBO)
	gl.BindVertexArray(rVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, rVBO)

	rectStride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, rectStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, rectStride, glOffset(2*4))
	r.rectVAO = rVAO
	r.rectVBO = rVBO

	gl.UseProgram(rectProg)
	r.rectURes = gl.GetUniformLocation(rectProg, gl.Str("uResolution\x00"))

	// Lamp VAO/VBO: streaming point sprites, 7 floats per vertex
	// (pos2 + size + color4).
	var lVAO, lVBO uint32
	gl.GenVertexArrays(1, &lVAO)
	gl.GenBuffers(1, &lVBO)
	gl.BindVertexArray(lVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, lVBO)

	lampStride := int32(7 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, lampStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, lampStride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, lampStride, glOffset(3*4))
	r.lampVAO = lVAO
	r.lampVBO = lVBO

	gl.UseProgram(lampProg)
	r.lampURes = gl.GetUniformLocation(lampProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

// InitFonts rasterizes the regular and italic atlases, uploads them as
// textures and sets up the text pipeline.
func (r *Renderer) InitFonts() error {
	reg, err := regularAtlas()
	if err != nil {
		return fmt.Errorf("regular atlas: %w", err)
	}
	ita, err := italicAtlas()
	if err != nil {
		return fmt.Errorf("italic atlas: %w", err)
	}
	r.fonts[FontRegular] = fontAtlas{tex: uploadAtlas(reg), cellW: reg.cellW, cellH: reg.cellH}
	r.fonts[FontItalic] = fontAtlas{tex: uploadAtlas(ita), cellW: ita.cellW, cellH: ita.cellH}

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 0)

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

func uploadAtlas(a atlasImage) uint32 {
	b := a.img.Bounds()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(a.img.Pix))
	return tex
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.rectVBO, r.lampVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.rectVAO, r.lampVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.rectProg, r.lampProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for i := range r.fonts {
		if r.fonts[i].tex != 0 {
			gl.DeleteTextures(1, &r.fonts[i].tex)
		}
	}
}

// Draw renders one frame: clear to the background colour, then rects, lamps
// and text back to front.
func (r *Renderer) Draw(f Frame, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(
		float32(f.Background.R)/255.0,
		float32(f.Background.G)/255.0,
		float32(f.Background.B)/255.0,
		1.0,
	)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.drawRects(f.Rects, fbW, fbH)
	r.drawLamps(f.Lamps, fbW, fbH)
	r.drawLabels(f.Labels, fbW, fbH)
}

func (r *Renderer) drawRects(rects []Rect, fbW, fbH int) {
	if len(rects) == 0 {
		return
	}
	r.rectBuf = r.rectBuf[:0]
	for _, rc := range rects {
		x0 := float32(rc.X)
		y0 := float32(rc.Y)
		x1 := float32(rc.X + rc.W)
		y1 := float32(rc.Y + rc.H)
		cr := float32(rc.Color.R) / 255.0
		cg := float32(rc.Color.G) / 255.0
		cb := float32(rc.Color.B) / 255.0
		r.rectBuf = append(r.rectBuf,
			x0, y0, cr, cg, cb, 1,
			x1, y0, cr, cg, cb, 1,
			x0, y1, cr, cg, cb, 1,
			x1, y0, cr, cg, cb, 1,
			x1, y1, cr, cg, cb, 1,
			x0, y1, cr, cg, cb, 1,
		)
	}

	gl.UseProgram(r.rectProg)
	gl.BindVertexArray(r.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.rectVBO)
	gl.Uniform2f(r.rectURes, float32(fbW), float32(fbH))
	gl.BufferData(gl.ARRAY_BUFFER, len(r.rectBuf)*4, gl.Ptr(r.rectBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.rectBuf)/6))
}

func (r *Renderer) drawLamps(lamps []Lamp, fbW, fbH int) {
	if len(lamps) == 0 {
		return
	}
	r.lampBuf = r.lampBuf[:0]
	for _, l := range lamps {
		r.lampBuf = append(r.lampBuf,
			float32(l.X), float32(l.Y), float32(2*l.R),
			float32(l.Color.R)/255.0, float32(l.Color.G)/255.0, float32(l.Color.B)/255.0, 1,
		)
	}

	gl.UseProgram(r.lampProg)
	gl.BindVertexArray(r.lampVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lampVBO)
	gl.Uniform2f(r.lampURes, float32(fbW), float32(fbH))
	gl.BufferData(gl.ARRAY_BUFFER, len(r.lampBuf)*4, gl.Ptr(r.lampBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(len(r.lampBuf)/7))
}

func (r *Renderer) drawLabels(labels []Label, fbW, fbH int) {
	if len(labels) == 0 {
		return
	}
	for _, lbl := range labels {
		r.queueString(lbl)
	}
	for i := range r.fonts {
		r.flushText(&r.fonts[i], fbW, fbH)
	}
}

// queueString appends one textured quad per character into the label's
// atlas buffer.
func (r *Renderer) queueString(lbl Label) {
	a := &r.fonts[lbl.Font]
	atlasW := float32(a.cellW * fontCols)
	atlasH := float32(a.cellH * fontRows)
	cr := float32(lbl.Color.R) / 255.0
	cg := float32(lbl.Color.G) / 255.0
	cb := float32(lbl.Color.B) / 255.0

	x := float32(lbl.X)
	y := float32(lbl.Y)
	w := float32(a.cellW)
	h := float32(a.cellH)
	for _, ch := range lbl.Text {
		if ch < fontFirstChar || ch > fontLastChar {
			x += w
			continue
		}
		idx := int(ch) - fontFirstChar
		col := idx % fontCols
		row := idx / fontCols

		u0 := float32(col*a.cellW) / atlasW
		v0 := float32(row*a.cellH) / atlasH
		u1 := float32((col+1)*a.cellW) / atlasW
		v1 := float32((row+1)*a.cellH) / atlasH

		a.buf = append(a.buf,
			x, y, u0, v0, cr, cg, cb, 1,
			x+w, y, u1, v0, cr, cg, cb, 1,
			x, y+h, u0, v1, cr, cg, cb, 1,
			x+w, y, u1, v0, cr, cg, cb, 1,
			x+w, y+h, u1, v1, cr, cg, cb, 1,
			x, y+h, u0, v1, cr, cg, cb, 1,
		)
		x += w
	}
}

// flushText draws all buffered quads for one atlas and clears its buffer.
func (r *Renderer) flushText(a *fontAtlas, fbW, fbH int) {
	if len(a.buf) == 0 {
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, a.tex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(a.buf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(a.buf)*4, gl.Ptr(a.buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	a.buf = a.buf[:0]
}
