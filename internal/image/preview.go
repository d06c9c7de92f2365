// Package image renders the sample block as a grayscale picture.
package image

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultScale is the preview upscaling factor.
const DefaultScale = 4

// captionHeight is the band below the picture reserved for the caption.
const captionHeight = 18

// Grayscale lays samples out row by row as a width x height image.
func Grayscale(samples []byte, width, height int) (*image.Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("sample count %d does not match dimensions %dx%d", len(samples), width, height)
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+width], samples[y*width:(y+1)*width])
	}
	return img, nil
}

// RenderPreview upscales the block with nearest-neighbour sampling so single
// samples stay visible, and adds a caption band underneath.
func RenderPreview(samples []byte, width, height, scale int, caption string) (*image.RGBA, error) {
	src, err := Grayscale(samples, width, height)
	if err != nil {
		return nil, err
	}
	if scale < 1 {
		scale = 1
	}

	w, h := width*scale, height*scale
	band := 0
	if caption != "" {
		band = captionHeight
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h+band))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(dst, image.Rect(0, 0, w, h), src, src.Bounds(), draw.Src, nil)

	if caption != "" {
		face := basicfont.Face7x13
		textWidth := font.MeasureString(face, caption).Ceil()
		x := max(2, (w-textWidth)/2)
		drawer := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(color.White),
			Face: face,
			Dot:  fixed.P(x, h+face.Metrics().Ascent.Ceil()+2),
		}
		drawer.DrawString(caption)
	}
	return dst, nil
}

// PreviewOptions controls WritePreview.
type PreviewOptions struct {
	Width   int
	Height  int
	Scale   int
	Caption string
	// Overwrite replaces an existing file. When false, an existing path
	// fails with an error wrapping fs.ErrExist.
	Overwrite bool
}

// WritePreview renders the block and writes it to path as PNG.
func WritePreview(path string, samples []byte, opts PreviewOptions) (err error) {
	img, err := RenderPreview(samples, opts.Width, opts.Height, opts.Scale, opts.Caption)
	if err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !opts.Overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close preview: %w", cerr)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}
