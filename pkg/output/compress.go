package output

import (
	"fmt"
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"

	"github.com/df07/go-weekend-raytracer/pkg/config"
)

// nopWriteCloser passes writes through and ignores Close
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewCompressedWriter wraps w in the named codec. Closing the result flushes
// the codec but leaves w open.
func NewCompressedWriter(w io.Writer, codec string) (io.WriteCloser, error) {
	switch codec {
	case config.CompressionNone, "":
		return nopWriteCloser{w}, nil
	case config.CompressionZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return enc, nil
	case config.CompressionSnappy:
		return snappy.NewBufferedWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown compression %q", codec)
	}
}

// NewDecompressedReader undoes NewCompressedWriter
func NewDecompressedReader(r io.Reader, codec string) (io.ReadCloser, error) {
	switch codec {
	case config.CompressionNone, "":
		return io.NopCloser(r), nil
	case config.CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	case config.CompressionSnappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unknown compression %q", codec)
	}
}
