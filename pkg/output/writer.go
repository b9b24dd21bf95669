package output

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/df07/go-weekend-raytracer/pkg/config"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Encode writes img to w in the given format
func Encode(w io.Writer, img *renderer.Image, format string) error {
	switch format {
	case config.FormatPPM, "":
		return WritePPM(w, img)
	case config.FormatPNG:
		if err := png.Encode(w, ToImage(img)); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Save writes img to path, creating parent directories as needed
func Save(path string, img *renderer.Image, format, compression string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}()

	stream, err := NewCompressedWriter(file, compression)
	if err != nil {
		return err
	}

	if err := Encode(stream, img, format); err != nil {
		stream.Close()
		return err
	}
	if err := stream.Close(); err != nil {
		return fmt.Errorf("flush %s stream: %w", compression, err)
	}
	return nil
}
