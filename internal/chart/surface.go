package chart

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Style - параметры линии
type Style struct {
	Color string // hex без '#'
	Width float64
}

var (
	BackgroundColor = "0f142e"
	AxisStyle       = Style{Color: "444455", Width: 1}
	ListStyle       = Style{Color: "4aa3ff", Width: 2}
	FunctionStyle   = Style{Color: "3ddc97", Width: 2}
)

// Surface - поверхность рисования
type Surface interface {
	Size() Frame
	Clear()
	Stroke(style Style, points []Point)
}

// Draw очищает поверхность и рисует на ней оси и линию графика
func Draw(s Surface, d Drawing) {
	s.Clear()
	for _, axis := range d.Axes {
		s.Stroke(AxisStyle, []Point{axis.From, axis.To})
	}
	if len(d.Line) == 0 {
		return
	}
	style := FunctionStyle
	if d.Mode == ModeList {
		style = ListStyle
	}
	s.Stroke(style, d.Line)
}

// RasterSurface рисует в RGBA-изображение
type RasterSurface struct {
	img *image.RGBA
	gc  *drawing.RasterGraphicContext
}

// NewRasterSurface создает поверхность заданного размера
func NewRasterSurface(width, height int) (*RasterSurface, error) {
	if width <= padLeft+padRight || height <= padTop+padBottom {
		return nil, fmt.Errorf("surface %dx%d is too small", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc, err := drawing.NewRasterGraphicContext(img)
	if err != nil {
		return nil, err
	}
	return &RasterSurface{img: img, gc: gc}, nil
}

func (s *RasterSurface) Size() Frame {
	b := s.img.Bounds()
	return Frame{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (s *RasterSurface) Clear() {
	bg := image.NewUniform(drawing.ColorFromHex(BackgroundColor))
	draw.Draw(s.img, s.img.Bounds(), bg, image.Point{}, draw.Src)
}

func (s *RasterSurface) Stroke(style Style, points []Point) {
	if len(points) < 2 {
		return
	}
	s.gc.SetStrokeColor(drawing.ColorFromHex(style.Color))
	s.gc.SetLineWidth(style.Width)
	s.gc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.gc.LineTo(p.X, p.Y)
	}
	s.gc.Stroke()
}

// Image возвращает нарисованное изображение
func (s *RasterSurface) Image() image.Image {
	return s.img
}

// EncodePNG записывает изображение в PNG
func (s *RasterSurface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}
