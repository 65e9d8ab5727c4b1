// Package screenshot writes the display contents as scaled PNG image.
package screenshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Palette defines the colors of set and unset pixels.
type Palette struct {
	On  color.Color
	Off color.Color
}

// Render converts the pixel buffer into an image scaled by the given factor.
func Render(pixels []bool, width, height, scale int, palette Palette) (*image.RGBA, error) {
	if len(pixels) != width*height {
		return nil, fmt.Errorf("pixel buffer size %d does not match %dx%d", len(pixels), width, height)
	}
	if scale < 1 {
		scale = 1
	}

	src := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			c := palette.Off
			if pixels[y*width+x] {
				c = palette.On
			}
			src.Set(x, y, c)
		}
	}
	if scale == 1 {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// Encode writes the rendered pixel buffer as PNG.
func Encode(w io.Writer, pixels []bool, width, height, scale int, palette Palette) error {
	img, err := Render(pixels, width, height, scale, palette)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// Save writes the rendered pixel buffer as PNG file.
func Save(filename string, pixels []bool, width, height, scale int, palette Palette) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", filename, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("closing file %s: %w", filename, err)
		}
	}()

	return Encode(f, pixels, width, height, scale, palette)
}
