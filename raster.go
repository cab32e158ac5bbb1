package meshssim

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Raster is an RGB image with float channels in [0, 1], stored row major
// with three values per pixel. Alpha and depth are not kept.
type Raster struct {
	Width, Height int
	Pix           []float64
}

func NewRaster(img image.Image) *Raster {
	b := img.Bounds()
	r := &Raster{Width: b.Dx(), Height: b.Dy(), Pix: make([]float64, 3*b.Dx()*b.Dy())}
	if nrgba, ok := img.(*image.NRGBA); ok {
		// fast path for the context's own buffer
		for y := 0; y < r.Height; y++ {
			row := nrgba.Pix[y*nrgba.Stride:]
			for x := 0; x < r.Width; x++ {
				i := 3 * (y*r.Width + x)
				r.Pix[i+0] = float64(row[4*x+0]) / 255
				r.Pix[i+1] = float64(row[4*x+1]) / 255
				r.Pix[i+2] = float64(row[4*x+2]) / 255
			}
		}
		return r
	}
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			i := 3 * (y*r.Width + x)
			r.Pix[i+0] = float64(c.R) / 0xffff
			r.Pix[i+1] = float64(c.G) / 0xffff
			r.Pix[i+2] = float64(c.B) / 0xffff
		}
	}
	return r
}

// Channel returns a copy of channel c (0 red, 1 green, 2 blue).
func (r *Raster) Channel(c int) []float64 {
	out := make([]float64, r.Width*r.Height)
	for i := range out {
		out[i] = r.Pix[3*i+c]
	}
	return out
}

// Image converts the raster back to an opaque 8-bit image.
func (r *Raster) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for i := 0; i < r.Width*r.Height; i++ {
		c := Color{r.Pix[3*i], r.Pix[3*i+1], r.Pix[3*i+2], 1}.NRGBA()
		img.Pix[4*i+0] = c.R
		img.Pix[4*i+1] = c.G
		img.Pix[4*i+2] = c.B
		img.Pix[4*i+3] = c.A
	}
	return img
}

// SavePNG writes the raster to path.
func (r *Raster) SavePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, r.Image()); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
