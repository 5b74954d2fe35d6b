package texdecode

// DecodedImage is a row-major RGBA8 view, byte-compatible with
// image.RGBA's Pix/Stride layout so callers can wrap it without copying:
//
//	img := &image.RGBA{Pix: d.Pix, Stride: d.Stride, Rect: image.Rect(0, 0, d.Width, d.Height)}
type DecodedImage struct {
	Pix    []byte
	Stride int
	Width  int
	Height int
}

// At returns the RGBA quad at (x, y). It does no bounds check of its own:
// a point whose offset falls outside Pix panics, and an x outside
// [0, Width) on an inner row reads a pixel of a neighbouring row. Unlike
// image.RGBA.At, it never returns a zero color for an out-of-bounds point.
func (d *DecodedImage) At(x, y int) ColorRgba32 {
	o := y*d.Stride + x*4
	return ColorRgba32{R: d.Pix[o], G: d.Pix[o+1], B: d.Pix[o+2], A: d.Pix[o+3]}
}

func (d *DecodedImage) set(x, y int, c ColorRgba32) {
	o := y*d.Stride + x*4
	d.Pix[o], d.Pix[o+1], d.Pix[o+2], d.Pix[o+3] = c.R, c.G, c.B, c.A
}

func newDecodedImage(width, height int) *DecodedImage {
	stride := width * 4
	return &DecodedImage{
		Pix:    make([]byte, stride*height),
		Stride: stride,
		Width:  width,
		Height: height,
	}
}

// MipDescriptor names one mip level's encoded payload and dimensions,
// independent of which container it came from.
type MipDescriptor struct {
	Width  int
	Height int
	Data   []byte
}
