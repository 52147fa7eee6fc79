// Package chart строит линейные графики списка значений и фиксированных функций.
// Геометрия считается чистыми функциями, рисование выполняет Surface.
package chart

import (
	"errors"
	"math"
)

// Mode - режим графика
type Mode string

const (
	ModeList     Mode = "list"
	ModeSin      Mode = "sin"
	ModeCos      Mode = "cos"
	ModeXSquared Mode = "xSquared"
)

// Отступы области построения
const (
	padLeft   = 40
	padRight  = 10
	padTop    = 10
	padBottom = 30
)

// Параметры дискретизации функций
const (
	Samples = 200
	xMin    = -10.0
	xMax    = 10.0
)

var ErrUnknownMode = errors.New("unknown chart mode")

var functions = map[Mode]func(float64) float64{
	ModeSin:      math.Sin,
	ModeCos:      math.Cos,
	ModeXSquared: func(x float64) float64 { return x * x / 5 },
}

var aliases = map[string]Mode{
	"list":     ModeList,
	"csv":      ModeList,
	"sin":      ModeSin,
	"cos":      ModeCos,
	"xSquared": ModeXSquared,
	"x2":       ModeXSquared,
}

// ParseMode возвращает режим по имени
func ParseMode(name string) (Mode, error) {
	mode, ok := aliases[name]
	if !ok {
		return "", ErrUnknownMode
	}
	return mode, nil
}

// Label возвращает подпись режима для поля информации
func (m Mode) Label() string {
	switch m {
	case ModeList:
		return "CSV"
	case ModeSin:
		return "sin(x)"
	case ModeCos:
		return "cos(x)"
	case ModeXSquared:
		return "x^2"
	}
	return string(m)
}

type Point struct {
	X, Y float64
}

type Segment struct {
	From, To Point
}

// Frame - размеры поверхности рисования
type Frame struct {
	Width, Height float64
}

func (f Frame) plotWidth() float64  { return f.Width - padLeft - padRight }
func (f Frame) plotHeight() float64 { return f.Height - padBottom - padTop }

// Axes возвращает оси X и Y
func (f Frame) Axes() []Segment {
	return []Segment{
		{From: Point{padLeft, f.Height - padBottom}, To: Point{f.Width - padRight, f.Height - padBottom}},
		{From: Point{padLeft, padTop}, To: Point{padLeft, f.Height - padBottom}},
	}
}

// Drawing - все, что нужно нарисовать на поверхности
type Drawing struct {
	Mode  Mode
	Frame Frame
	Axes  []Segment
	Line  []Point
}

// ListLine масштабирует значения по их минимуму и максимуму.
// Если все значения равны, линия идет посередине высоты.
func ListLine(f Frame, data []float64) []Point {
	if len(data) == 0 {
		return nil
	}

	minV, maxV := data[0], data[0]
	for _, v := range data[1:] {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	plotH := f.plotHeight()
	scaleY := func(v float64) float64 {
		if maxV == minV {
			return plotH / 2
		}
		return plotH - (v-minV)/(maxV-minV)*plotH
	}

	stepX := f.plotWidth() / math.Max(1, float64(len(data)-1))
	points := make([]Point, len(data))
	for i, v := range data {
		points[i] = Point{X: padLeft + float64(i)*stepX, Y: padTop + scaleY(v)}
	}
	return points
}

// FunctionLine дискретизирует fn на [-10, 10] в Samples+1 точках.
// Значения из [-10, 10] отображаются на высоту области построения.
func FunctionLine(f Frame, fn func(float64) float64) []Point {
	plotW, plotH := f.plotWidth(), f.plotHeight()
	points := make([]Point, 0, Samples+1)
	for i := 0; i <= Samples; i++ {
		t := float64(i) / Samples
		x := xMin + t*(xMax-xMin)
		y := fn(x)
		points = append(points, Point{
			X: padLeft + t*plotW,
			Y: padTop + (plotH - ((y+10)/20)*plotH),
		})
	}
	return points
}

// Plot строит рисунок для режима. Значения используются только в режиме списка.
func Plot(mode Mode, values []float64, f Frame) (Drawing, error) {
	d := Drawing{Mode: mode, Frame: f, Axes: f.Axes()}
	if mode == ModeList {
		d.Line = ListLine(f, values)
		return d, nil
	}
	fn, ok := functions[mode]
	if !ok {
		return Drawing{}, ErrUnknownMode
	}
	d.Line = FunctionLine(f, fn)
	return d, nil
}
