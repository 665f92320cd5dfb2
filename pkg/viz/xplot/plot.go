package xplot

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/omeyang/xviz/pkg/sim/xchord"
	"github.com/omeyang/xviz/pkg/sim/xnewton"
)

// CircleSamples 单位圆轮廓的默认采样点数。
const CircleSamples = 100

// Circle 返回单位圆周上 num 个等距点 (sin φ, cos φ)，首尾重合。
// num < 2 时按 2 处理。
func Circle(num int) plotter.XYs {
	num = max(num, 2)
	pts := make(plotter.XYs, num)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(num-1)
		p := xchord.OnCircle(phi)
		pts[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return pts
}

// Option 圆周图的绘制选项。
type Option func(*options)

type options struct {
	circle int
}

// WithCircle 设置单位圆轮廓的采样点数，n < 2 时忽略。
func WithCircle(n int) Option {
	return func(o *options) {
		if n >= 2 {
			o.circle = n
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{circle: CircleSamples}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// newSquare 创建隐藏坐标轴、范围为 [-lim, lim]² 的空白图。
func newSquare(title string, lim float64) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(20)
	p.X.Min, p.X.Max = -lim, lim
	p.Y.Min, p.Y.Max = -lim, lim
	p.HideAxes()
	return p
}

// addCircle 在 p 上叠加黑色单位圆轮廓。
func addCircle(p *plot.Plot, num int) error {
	line, err := plotter.NewLine(Circle(num))
	if err != nil {
		return err
	}
	line.LineStyle.Color = withAlpha(color.NRGBA{A: 255}, 0.7)
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	return nil
}

// chordLines 一次性绘制全部弦的 plot.Plotter，避免为每条弦创建一个 plotter.Line。
type chordLines struct {
	chords []xchord.Chord
	style  draw.LineStyle
}

// Plot 实现 plot.Plotter。
func (c *chordLines) Plot(canvas draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&canvas)
	for _, ch := range c.chords {
		canvas.StrokeLine2(c.style,
			trX(ch.A.X), trY(ch.A.Y),
			trX(ch.B.X), trY(ch.B.Y),
		)
	}
}

// DataRange 实现 plot.DataRanger。
func (c *chordLines) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1, 1, -1, 1
}

// Chords 绘制单位圆与全部弦。
func Chords(sum xchord.Summary, set xchord.SampleSet, c color.NRGBA, opts ...Option) (*plot.Plot, error) {
	o := applyOptions(opts)
	p := newSquare(sum.Title(), 1.05)
	p.Add(&chordLines{
		chords: set.Chords,
		style: draw.LineStyle{
			Color: withAlpha(c, 0.4),
			Width: vg.Points(1),
		},
	})
	if err := addCircle(p, o.circle); err != nil {
		return nil, err
	}
	return p, nil
}

// Midpoints 绘制单位圆与弦中点散点。
func Midpoints(sum xchord.Summary, set xchord.SampleSet, c color.NRGBA, opts ...Option) (*plot.Plot, error) {
	o := applyOptions(opts)
	p := newSquare(sum.Title(), 1.05)

	mids := set.Midpoints()
	xys := make(plotter.XYs, len(mids))
	for i, m := range mids {
		xys[i] = plotter.XY{X: m.X, Y: m.Y}
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = withAlpha(c, 0.8)
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	if err := addCircle(p, o.circle); err != nil {
		return nil, err
	}
	return p, nil
}

// LengthBins 弦长直方图的分箱数，范围 [0, 2]。
const LengthBins = 50

// Lengths 绘制弦长直方图，并在 √3 处画竖线。
func Lengths(sum xchord.Summary, set xchord.SampleSet, c color.NRGBA) (*plot.Plot, error) {
	h := hbook.NewH1D(LengthBins, 0, 2)
	for _, l := range set.Lengths() {
		h.Fill(l, 1)
	}

	hp := hplot.New()
	hp.Title.Text = sum.Title()
	hp.X.Label.Text = "chord length"
	hp.Y.Label.Text = "count"

	hh := hplot.NewH1D(h)
	hh.LineStyle.Color = c
	hh.FillColor = withAlpha(c, 0.4)
	hp.Add(hh, hplot.NewGrid())

	_, _, _, ymax := h.DataRange()
	marker, err := plotter.NewLine(plotter.XYs{
		{X: xchord.Threshold, Y: 0},
		{X: xchord.Threshold, Y: ymax},
	})
	if err != nil {
		return nil, err
	}
	marker.LineStyle.Color = color.NRGBA{A: 255}
	marker.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	hp.Add(marker)

	return hp.Plot, nil
}

// Palette 返回 n 个在两种颜色之间线性插值的颜色。
func Palette(n int, from, to color.NRGBA) []color.NRGBA {
	if n < 1 {
		return nil
	}
	out := make([]color.NRGBA, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = color.NRGBA{
			R: mix(from.R, to.R, t),
			G: mix(from.G, to.G, t),
			B: mix(from.B, to.B, t),
			A: mix(from.A, to.A, t),
		}
	}
	return out
}

func mix(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// 分形默认配色两端。
var (
	fractalFrom = color.NRGBA{R: 0x2e, G: 0x1e, B: 0x3b, A: 0xff}
	fractalTo   = color.NRGBA{R: 0xe8, G: 0xd5, B: 0xb0, A: 0xff}
)

// Fractal 把 n×n 的吸引域下标（行优先，第 0 行对应 YMin）渲染为图像。
// roots 为根的数量，用于分配颜色。
func Fractal(title string, basins []int, n, roots int, lim xnewton.Limits) (*plot.Plot, error) {
	if n < 1 || len(basins) != n*n {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrBasinSize, len(basins), n, n)
	}
	colors := Palette(max(roots, 1), fractalFrom, fractalTo)

	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			idx := basins[row*n+col]
			c := color.NRGBA{A: 255}
			if idx >= 0 && idx < len(colors) {
				c = colors[idx]
			}
			// 图像第 0 行在顶部，对应 YMax
			img.SetNRGBA(col, n-1-row, c)
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.Add(plotter.NewImage(img, lim.XMin, lim.YMin, lim.XMax, lim.YMax))
	return p, nil
}
