// Package pnm reads and writes the Netpbm bitmap, graymap and pixmap formats
// (P1 through P6).
package pnm

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"pnmgrid/pkg/grid"
)

var (
	// ErrBadFormat reports a stream that is not a well-formed PNM map.
	ErrBadFormat = errors.New("pnm: bad format")
	// ErrWrongKind reports a well-formed map of an unexpected kind.
	ErrWrongKind = errors.New("pnm: wrong kind")
)

// MaxSamples is the largest raster NewReader accepts, counted as
// Width*Height, times three for pixmaps.
const MaxSamples = 1 << 26

// Kind enumerates the map types.
type Kind int

const (
	Bitmap  Kind = iota + 1 // P1, P4
	Graymap                 // P2, P5
	Pixmap                  // P3, P6
)

func (k Kind) String() string {
	switch k {
	case Bitmap:
		return "bitmap"
	case Graymap:
		return "graymap"
	case Pixmap:
		return "pixmap"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Header describes a map. MaxVal is 1 for bitmaps.
type Header struct {
	Kind   Kind
	Width  int
	Height int
	MaxVal int
	Raw    bool
}

// Samples returns the number of values the raster holds.
func (h Header) Samples() int {
	return h.Width * h.Height * channels(h.Kind)
}

func channels(k Kind) int {
	if k == Pixmap {
		return 3
	}
	return 1
}

// Reader yields the samples of a map in row-major order.
type Reader struct {
	br   *bufio.Reader
	hdr  Header
	left int

	col  int  // column within the current P4 row
	pack byte // current P4 byte
}

// NewReader parses the header of a map. The raster is consumed lazily by Next.
func NewReader(r io.Reader) (*Reader, error) {
	rd := &Reader{br: bufio.NewReader(r)}
	if err := rd.readHeader(); err != nil {
		return nil, err
	}
	rd.left = rd.hdr.Samples()
	return rd, nil
}

// Header returns the parsed header.
func (r *Reader) Header() Header { return r.hdr }

func (r *Reader) readHeader() error {
	var magic [2]byte
	if _, err := io.ReadFull(r.br, magic[:]); err != nil {
		return fmt.Errorf("%w: missing magic number", ErrBadFormat)
	}
	if magic[0] != 'P' || magic[1] < '1' || magic[1] > '6' {
		return fmt.Errorf("%w: unknown magic %q", ErrBadFormat, magic[:])
	}
	n := int(magic[1] - '0')
	r.hdr.Raw = n > 3
	r.hdr.Kind = Kind((n-1)%3 + 1)

	var err error
	if r.hdr.Width, err = r.headerInt("width"); err != nil {
		return err
	}
	if r.hdr.Height, err = r.headerInt("height"); err != nil {
		return err
	}
	if r.hdr.Width <= 0 || r.hdr.Height <= 0 {
		return fmt.Errorf("%w: empty map %dx%d", ErrBadFormat, r.hdr.Width, r.hdr.Height)
	}
	if limit := MaxSamples / channels(r.hdr.Kind); int64(r.hdr.Width)*int64(r.hdr.Height) > int64(limit) {
		return fmt.Errorf("%w: %dx%d map exceeds %d samples", ErrBadFormat, r.hdr.Width, r.hdr.Height, MaxSamples)
	}
	r.hdr.MaxVal = 1
	if r.hdr.Kind != Bitmap {
		if r.hdr.MaxVal, err = r.headerInt("maxval"); err != nil {
			return err
		}
		if r.hdr.MaxVal < 1 || r.hdr.MaxVal > 65535 {
			return fmt.Errorf("%w: maxval %d out of range", ErrBadFormat, r.hdr.MaxVal)
		}
	}
	if r.hdr.Raw {
		// exactly one whitespace byte separates the header from the raster
		c, err := r.br.ReadByte()
		if err != nil || !isSpace(c) {
			return fmt.Errorf("%w: no separator before raster", ErrBadFormat)
		}
	}
	return nil
}

func (r *Reader) headerInt(field string) (int, error) {
	if err := r.skipSpace(); err != nil {
		return 0, fmt.Errorf("%w: missing %s", ErrBadFormat, field)
	}
	v, err := r.readDecimal()
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s: %v", ErrBadFormat, field, err)
	}
	return v, nil
}

// skipSpace advances past whitespace and '#' comments.
func (r *Reader) skipSpace() error {
	for {
		c, err := r.br.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case c == '#':
			if _, err := r.br.ReadString('\n'); err != nil {
				return err
			}
		case isSpace(c):
		default:
			return r.br.UnreadByte()
		}
	}
}

func (r *Reader) readDecimal() (int, error) {
	v, digits := 0, 0
	for {
		c, err := r.br.ReadByte()
		if err == io.EOF && digits > 0 {
			return v, nil
		}
		if err != nil {
			return 0, err
		}
		if c < '0' || c > '9' {
			if digits == 0 {
				return 0, fmt.Errorf("unexpected byte %q", c)
			}
			return v, r.br.UnreadByte()
		}
		if v > (1<<31)/10 {
			return 0, errors.New("number too large")
		}
		v = v*10 + int(c-'0')
		digits++
	}
}

// Next returns the next sample, or io.EOF once the raster is exhausted.
func (r *Reader) Next() (int, error) {
	if r.left == 0 {
		return 0, io.EOF
	}
	v, err := r.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return 0, fmt.Errorf("%w: sample %d: %w", ErrBadFormat, r.hdr.Samples()-r.left, err)
	}
	if v > r.hdr.MaxVal {
		return 0, fmt.Errorf("%w: sample %d exceeds maxval %d", ErrBadFormat, v, r.hdr.MaxVal)
	}
	r.left--
	return v, nil
}

func (r *Reader) next() (int, error) {
	switch {
	case r.hdr.Kind == Bitmap && !r.hdr.Raw:
		if err := r.skipSpace(); err != nil {
			return 0, err
		}
		c, err := r.br.ReadByte()
		if err != nil {
			return 0, err
		}
		if c != '0' && c != '1' {
			return 0, fmt.Errorf("unexpected byte %q", c)
		}
		return int(c - '0'), nil
	case r.hdr.Kind == Bitmap:
		return r.nextPacked()
	case !r.hdr.Raw:
		if err := r.skipSpace(); err != nil {
			return 0, err
		}
		return r.readDecimal()
	case r.hdr.MaxVal < 256:
		c, err := r.br.ReadByte()
		return int(c), err
	default:
		var buf [2]byte
		if _, err := io.ReadFull(r.br, buf[:]); err != nil {
			return 0, err
		}
		return int(buf[0])<<8 | int(buf[1]), nil
	}
}

// nextPacked reads P4 rasters: eight pixels per byte, most significant bit
// first, every row padded to a whole byte.
func (r *Reader) nextPacked() (int, error) {
	if r.col%8 == 0 {
		c, err := r.br.ReadByte()
		if err != nil {
			return 0, err
		}
		r.pack = c
	}
	bit := int(r.pack>>(7-uint(r.col%8))) & 1
	r.col++
	if r.col == r.hdr.Width {
		r.col = 0
	}
	return bit, nil
}

// ReadInto fills d with the next Width*Height samples in row-major order.
func (r *Reader) ReadInto(d *grid.Dense[int]) error {
	if d.Width() != r.hdr.Width || d.Height() != r.hdr.Height || r.hdr.Kind == Pixmap {
		return fmt.Errorf("%w: cannot read %dx%d %s into %dx%d grid",
			ErrWrongKind, r.hdr.Width, r.hdr.Height, r.hdr.Kind, d.Width(), d.Height())
	}
	var rerr error
	d.MapRowMajor(func(_, _ int, _ *grid.Dense[int], elem *int) {
		if rerr != nil {
			return
		}
		*elem, rerr = r.Next()
	})
	return rerr
}

// ReadBits reads a bitmap into a new bit grid.
func ReadBits(in io.Reader) (*grid.Bits, error) {
	r, err := NewReader(in)
	if err != nil {
		return nil, err
	}
	h := r.Header()
	if h.Kind != Bitmap {
		return nil, fmt.Errorf("%w: got %s, want %s", ErrWrongKind, h.Kind, Bitmap)
	}
	b := grid.NewBits(h.Width, h.Height)
	var rerr error
	b.MapRowMajor(func(col, row int, b *grid.Bits, _ int) {
		if rerr != nil {
			return
		}
		var v int
		if v, rerr = r.Next(); rerr == nil {
			b.Put(col, row, v)
		}
	})
	if rerr != nil {
		b.Free()
		return nil, rerr
	}
	return b, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
