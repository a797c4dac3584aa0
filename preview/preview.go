// Package preview renders a quaternion as the three rotated basis axes.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/binzume/quatconv/geom"
	"github.com/chewxy/math32"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const supersample = 2

var (
	Background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	AxisColors = [3]color.RGBA{
		{0xe0, 0x30, 0x30, 0xff},
		{0x30, 0xb0, 0x30, 0xff},
		{0x30, 0x50, 0xe0, 0xff},
	}
	axisNames = [3]string{"X", "Y", "Z"}
)

// DefaultView looks at the origin from slightly above and to the right.
var DefaultView = geom.NewQuaternionFromAxisAngle(1, 0, 0, 25*math32.Pi/180).
	MulN(geom.NewQuaternionFromAxisAngle(0, 1, 0, -35*math32.Pi/180))

type axis struct {
	index int
	tip   geom.Vector3
}

// Project returns the screen-space tips of the x, y and z axes rotated by q
// and then by view, for an image of the given size. Z is the depth toward
// the viewer.
func Project(q, view geom.Tuple4Reader, size int) [3]geom.Vector3 {
	var total geom.Quaternion
	geom.Mul(view, q, &total)

	c := float32(size) / 2
	r := c * 0.7
	m := geom.NewTranslateMatrix4(c, c, 0).
		Mul(geom.NewScaleMatrix4(r, -r, 1)).
		Mul(geom.NewRotationMatrix4FromQuaternion(total))
	basis := [3]geom.Vector3{{X: 1}, {Y: 1}, {Z: 1}}
	var tips [3]geom.Vector3
	for i := range basis {
		tips[i] = *m.ApplyTo(&basis[i])
	}
	return tips
}

// Render draws the axes of q seen through DefaultView.
func Render(q geom.Tuple4Reader, size int) *image.RGBA {
	return RenderView(q, DefaultView, size)
}

func RenderView(q, view geom.Tuple4Reader, size int) *image.RGBA {
	big := image.NewRGBA(image.Rect(0, 0, size*supersample, size*supersample))
	draw.Draw(big, big.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	tips := Project(q, view, size*supersample)
	axes := make([]axis, 3)
	for i := range axes {
		axes[i] = axis{index: i, tip: tips[i]}
	}
	// far axes first
	sort.Slice(axes, func(i, j int) bool { return axes[i].tip.Z < axes[j].tip.Z })

	c := float32(size*supersample) / 2
	width := float32(size*supersample) / 64
	if width < 1 {
		width = 1
	}
	for _, a := range axes {
		drawLine(big, c, c, a.tip.X, a.tip.Y, width, AxisColors[a.index])
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(img, img.Bounds(), big, big.Bounds(), draw.Src, nil)

	for _, a := range axes {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(AxisColors[a.index]),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(int(a.tip.X/supersample)+2, int(a.tip.Y/supersample)-2),
		}
		d.DrawString(axisNames[a.index])
	}
	return img
}

func drawLine(dst draw.Image, x0, y0, x1, y1, width float32, col color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	dx, dy := x1-x0, y1-y0
	l := math32.Sqrt(dx*dx + dy*dy)
	if l < width {
		// pointing at the viewer
		z.MoveTo(x1-width, y1-width)
		z.LineTo(x1+width, y1-width)
		z.LineTo(x1+width, y1+width)
		z.LineTo(x1-width, y1+width)
	} else {
		nx, ny := -dy/l*width/2, dx/l*width/2
		z.MoveTo(x0+nx, y0+ny)
		z.LineTo(x1+nx, y1+ny)
		z.LineTo(x1-nx, y1-ny)
		z.LineTo(x0-nx, y0-ny)
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(col), image.Point{})
}

// Save encodes img by the extension of path: .png, .tga or .webp.
func Save(img image.Image, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".tga" && ext != ".webp" {
		return fmt.Errorf("preview: unsupported output type: %v", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext {
	case ".tga":
		err = tga.Encode(f, img)
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return f.Close()
}
