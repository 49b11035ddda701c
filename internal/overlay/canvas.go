package overlay

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/cursorglow/internal/highlight"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	b := whiteImage.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	for i := range pix {
		pix[i] = 0xff
	}
	whiteImage.WritePixels(pix)
}

type canvasState struct {
	geoM  ebiten.GeoM
	color highlight.Color
	width float64
}

// Canvas implements highlight.Canvas on an ebiten image. Paths are built in
// user space and the stroke geometry is transformed afterwards, so scaling
// also scales the stroke width.
type Canvas struct {
	dst   *ebiten.Image
	layer *ebiten.Image

	state canvasState
	stack []canvasState

	path      vector.Path
	needMove  bool
	started   bool
	origin    [2]float64
	hasExtent bool

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

// Begin targets dst and resets the transformation and path.
func (c *Canvas) Begin(dst *ebiten.Image) *Canvas {
	c.dst = dst
	b := dst.Bounds()
	if c.layer == nil || c.layer.Bounds().Size() != b.Size() {
		if c.layer != nil {
			c.layer.Deallocate()
		}
		c.layer = ebiten.NewImage(b.Dx(), b.Dy())
	}
	c.state = canvasState{width: 1}
	c.stack = c.stack[:0]
	c.resetPath()
	return c
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// prepend makes m apply before the current transformation.
func (c *Canvas) prepend(m ebiten.GeoM) {
	m.Concat(c.state.geoM)
	c.state.geoM = m
}

func (c *Canvas) Translate(tx, ty float64) {
	var m ebiten.GeoM
	m.Translate(tx, ty)
	c.prepend(m)
}

func (c *Canvas) Scale(sx, sy float64) {
	var m ebiten.GeoM
	m.Scale(sx, sy)
	c.prepend(m)
}

func (c *Canvas) Rotate(radians float64) {
	var m ebiten.GeoM
	m.Rotate(radians)
	c.prepend(m)
}

func (c *Canvas) NewSubPath() {
	c.needMove = true
}

func (c *Canvas) Arc(cx, cy, radius, startAngle, endAngle float64) {
	if c.needMove {
		c.path.MoveTo(float32(cx+radius*math.Cos(startAngle)), float32(cy+radius*math.Sin(startAngle)))
		c.needMove = false
	}
	// A path is only worth stroking once it covers more than a single point.
	if !c.started {
		c.started = true
		c.origin = [2]float64{cx, cy}
	}
	if radius > 0 || c.origin != [2]float64{cx, cy} {
		c.hasExtent = true
	}
	c.path.Arc(float32(cx), float32(cy), float32(radius), float32(startAngle), float32(endAngle), vector.Clockwise)
}

func (c *Canvas) ClosePath() {
	c.path.Close()
}

func (c *Canvas) SetColor(clr highlight.Color) {
	c.state.color = clr
}

func (c *Canvas) SetLineWidth(w float64) {
	c.state.width = w
}

// Stroke draws the current path opaque into a scratch layer and composites
// the layer with the color's alpha, so overlapping stroke triangles do not
// darken translucent strokes.
func (c *Canvas) Stroke() {
	defer c.resetPath()

	clr := c.state.color
	if c.dst == nil || !c.hasExtent || c.state.width <= 0 || clr.A <= 0 {
		return
	}

	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], &vector.StrokeOptions{
		Width:    float32(c.state.width),
		LineJoin: vector.LineJoinRound,
	})
	for i := range c.vertices {
		v := &c.vertices[i]
		x, y := c.state.geoM.Apply(float64(v.DstX), float64(v.DstY))
		v.DstX, v.DstY = float32(x), float32(y)
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(clamp01(clr.R))
		v.ColorG = float32(clamp01(clr.G))
		v.ColorB = float32(clamp01(clr.B))
		v.ColorA = 1
	}

	c.layer.Clear()
	c.layer.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(clamp01(clr.A)))
	c.dst.DrawImage(c.layer, op)
}

func (c *Canvas) resetPath() {
	c.path = vector.Path{}
	c.needMove = true
	c.started = false
	c.hasExtent = false
}
