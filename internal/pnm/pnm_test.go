package pnm

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pnmgrid/internal/core"
	"pnmgrid/pkg/grid"
)

func TestReadHeader(t *testing.T) {
	cases := []struct {
		in   string
		want Header
	}{
		{"P1\n3 2\n", Header{Kind: Bitmap, Width: 3, Height: 2, MaxVal: 1}},
		{"P2 # gray\n9 9\n# max\n9\n", Header{Kind: Graymap, Width: 9, Height: 9, MaxVal: 9}},
		{"P3\n1 1 255\n", Header{Kind: Pixmap, Width: 1, Height: 1, MaxVal: 255}},
		{"P4\n8 1\n\x00", Header{Kind: Bitmap, Width: 8, Height: 1, MaxVal: 1, Raw: true}},
		{"P5 2 1 65535\n", Header{Kind: Graymap, Width: 2, Height: 1, MaxVal: 65535, Raw: true}},
		{"P6\t4\t4\t15\n", Header{Kind: Pixmap, Width: 4, Height: 4, MaxVal: 15, Raw: true}},
	}
	for _, tc := range cases {
		r, err := NewReader(strings.NewReader(tc.in))
		if err != nil {
			t.Fatalf("NewReader(%q): %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, r.Header()); diff != "" {
			t.Fatalf("header of %q (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestReadHeaderErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"P",
		"P7\n1 1\n",
		"Q1\n1 1\n",
		"P1\n",
		"P1\n3\n",
		"P1\n0 3\n",
		"P1\nx 3\n",
		"P2\n3 3\n",
		"P2\n3 3 0\n",
		"P5\n3 3 70000\n",
		"P4\n8 1",
		"P1\n2000000000 2000000000\n1",
		"P1\n65536 65536\n1",
		"P3\n8192 8192\n255\n",
	} {
		if _, err := NewReader(strings.NewReader(in)); !errors.Is(err, ErrBadFormat) {
			t.Fatalf("NewReader(%q) error = %v, want ErrBadFormat", in, err)
		}
	}
}

func readAll(t *testing.T, in string) []int {
	t.Helper()
	r, err := NewReader(strings.NewReader(in))
	if err != nil {
		t.Fatalf("NewReader(%q): %v", in, err)
	}
	var out []int
	for {
		v, err := r.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Next on %q: %v", in, err)
		}
		out = append(out, v)
	}
}

func TestSamples(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []int
	}{
		{"plain bitmap", "P1\n3 2\n1 0 1\n0 1 1\n", []int{1, 0, 1, 0, 1, 1}},
		{"plain bitmap packed digits", "P1 3 2 101\n# comment\n011", []int{1, 0, 1, 0, 1, 1}},
		{"raw bitmap padded rows", "P4\n10 2\n\xc0\x40\x80\x00", []int{1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"plain graymap", "P2\n2 2\n9\n1 9\n 5   0", []int{1, 9, 5, 0}},
		{"raw graymap", "P5 3 1 255\n\x00\x7f\xff", []int{0, 127, 255}},
		{"raw graymap 16 bit", "P5 2 1 1000\n\x03\xe8\x00\x01", []int{1000, 1}},
		{"plain pixmap", "P3 1 2 7\n1 2 3 4 5 6", []int{1, 2, 3, 4, 5, 6}},
		{"raw pixmap", "P6 1 1 255\n\x01\x02\x03", []int{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, readAll(t, tc.in)); diff != "" {
				t.Fatalf("samples (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSampleErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		eof  bool
	}{
		{"truncated plain", "P1\n2 2\n1 0 1", true},
		{"truncated raw", "P5 2 2 255\n\x01\x02", true},
		{"bad digit", "P1\n2 1\n1 2", false},
		{"above maxval", "P2\n1 1\n9\n10", false},
		{"garbage", "P2\n1 1\n9\nabc", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewReader(strings.NewReader(tc.in))
			if err != nil {
				t.Fatalf("NewReader: %v", err)
			}
			for {
				_, err = r.Next()
				if err != nil {
					break
				}
			}
			if !errors.Is(err, ErrBadFormat) {
				t.Fatalf("error = %v, want ErrBadFormat", err)
			}
			if tc.eof != errors.Is(err, io.ErrUnexpectedEOF) {
				t.Fatalf("error = %v, unexpected EOF expected: %v", err, tc.eof)
			}
		})
	}
}

func TestReadBits(t *testing.T) {
	b, err := ReadBits(strings.NewReader("P1\n# test\n4 3\n1000\n0110\n0001\n"))
	if err != nil {
		t.Fatalf("ReadBits: %v", err)
	}
	defer b.Free()
	if diff := cmp.Diff("1000\n0110\n0001\n", b.String()); diff != "" {
		t.Fatalf("bits (-want +got):\n%s", diff)
	}
}

func TestReadBitsRejects(t *testing.T) {
	if _, err := ReadBits(strings.NewReader("P2\n2 2\n255\n0 0 0 0\n")); !errors.Is(err, ErrWrongKind) {
		t.Fatalf("graymap error = %v, want ErrWrongKind", err)
	}
	if _, err := ReadBits(strings.NewReader("P1\n2 2\n0 1 1\n")); !errors.Is(err, ErrBadFormat) {
		t.Fatalf("short bitmap error = %v, want ErrBadFormat", err)
	}
}

func TestWriteBitsRoundTrip(t *testing.T) {
	rng := core.NewRNG(5)
	for _, size := range []grid.Point{{Col: 1, Row: 1}, {Col: 8, Row: 2}, {Col: 9, Row: 3}, {Col: 23, Row: 7}} {
		b := grid.NewBits(size.Col, size.Row)
		core.FillBits(rng.Source(), b, 0.5)

		for name, write := range map[string]func(io.Writer, *grid.Bits) error{
			"plain": WriteBits,
			"raw":   WriteRawBits,
		} {
			var buf bytes.Buffer
			if err := write(&buf, b); err != nil {
				t.Fatalf("%s write: %v", name, err)
			}
			got, err := ReadBits(&buf)
			if err != nil {
				t.Fatalf("%s read back: %v", name, err)
			}
			if diff := cmp.Diff(b.String(), got.String()); diff != "" {
				t.Fatalf("%s %v round trip (-want +got):\n%s", name, size, diff)
			}
			got.Free()
		}
		b.Free()
	}
}

func TestWriteBitsFormat(t *testing.T) {
	b := grid.NewBits(3, 2)
	b.Put(1, 0, 1)
	b.Put(2, 1, 1)
	var buf bytes.Buffer
	if err := WriteBits(&buf, b); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("P1\n3 2\n010\n001\n", buf.String()); diff != "" {
		t.Fatalf("output (-want +got):\n%s", diff)
	}
}

func TestReadInto(t *testing.T) {
	r, err := NewReader(strings.NewReader("P2 3 2 9 1 2 3 4 5 6"))
	if err != nil {
		t.Fatal(err)
	}
	d := grid.NewDense[int](3, 2)
	if err := r.ReadInto(d); err != nil {
		t.Fatalf("ReadInto: %v", err)
	}
	if d.Get(0, 1) != 4 || d.Get(2, 0) != 3 {
		t.Fatalf("unexpected cells: (0,1)=%d (2,0)=%d", d.Get(0, 1), d.Get(2, 0))
	}

	r, _ = NewReader(strings.NewReader("P2 3 3 9 1 2 3 4 5 6 7 8 9"))
	if err := r.ReadInto(grid.NewDense[int](3, 2)); !errors.Is(err, ErrWrongKind) {
		t.Fatalf("mismatched size error = %v, want ErrWrongKind", err)
	}
}
