package storage

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/san-kum/golsim/internal/life"
)

// ErrBadNPY is returned for input that is not a 3-D int8 .npy array with
// two equal leading dimensions.
var ErrBadNPY = errors.New("storage: unsupported npy data")

var npyMagic = []byte("\x93NUMPY")

const npyAlign = 64

// maxNPYCells bounds the array a header may declare before any data is read.
const maxNPYCells = math.MaxInt32

// WriteNPY serialises ts as a NumPy v1.0 array of dtype int8 and shape
// (L, L, Frames) in C order, the layout np.save produces for the same array.
func WriteNPY(w io.Writer, ts *life.TimeSeries) error {
	header := fmt.Sprintf("{'descr': '|i1', 'fortran_order': False, 'shape': (%d, %d, %d), }",
		ts.L, ts.L, ts.Frames)
	// magic(6) + version(2) + length(2) + header + '\n' must be a multiple of npyAlign
	pad := npyAlign - (10+len(header)+1)%npyAlign
	if pad == npyAlign {
		pad = 0
	}
	header += strings.Repeat(" ", pad) + "\n"

	bw := bufio.NewWriter(w)
	bw.Write(npyMagic)
	bw.Write([]byte{1, 0})
	binary.Write(bw, binary.LittleEndian, uint16(len(header)))
	bw.WriteString(header)

	row := make([]byte, ts.Frames)
	for i := 0; i < ts.L; i++ {
		for j := 0; j < ts.L; j++ {
			for k := range row {
				row[k] = byte(ts.At(i, j, k))
			}
			bw.Write(row)
		}
	}
	return errors.Wrap(bw.Flush(), "[storage.WriteNPY] failed to write")
}

var (
	descrRe   = regexp.MustCompile(`'descr':\s*'([^']*)'`)
	fortranRe = regexp.MustCompile(`'fortran_order':\s*(True|False)`)
	shapeRe   = regexp.MustCompile(`'shape':\s*\(([^)]*)\)`)
)

// ReadNPY reads an array written by WriteNPY or by np.save on an int8 array
// of shape (L, L, F), in either memory order.
func ReadNPY(r io.Reader) (*life.TimeSeries, error) {
	br := bufio.NewReader(r)

	prefix := make([]byte, 8)
	if _, err := io.ReadFull(br, prefix); err != nil {
		return nil, errors.Wrap(err, "[storage.ReadNPY] failed to read magic")
	}
	if !bytes.Equal(prefix[:6], npyMagic) {
		return nil, errors.Wrap(ErrBadNPY, "missing magic string")
	}

	var hlen int
	switch prefix[6] {
	case 1:
		var n uint16
		if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
			return nil, errors.Wrap(err, "[storage.ReadNPY] failed to read header length")
		}
		hlen = int(n)
	case 2, 3:
		var n uint32
		if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
			return nil, errors.Wrap(err, "[storage.ReadNPY] failed to read header length")
		}
		hlen = int(n)
	default:
		return nil, errors.Wrapf(ErrBadNPY, "format version %d", prefix[6])
	}

	header := make([]byte, hlen)
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, errors.Wrap(err, "[storage.ReadNPY] failed to read header")
	}

	l, frames, fortran, err := parseHeader(string(header))
	if err != nil {
		return nil, err
	}

	data := make([]byte, l*l*frames)
	if _, err := io.ReadFull(br, data); err != nil {
		return nil, errors.Wrap(err, "[storage.ReadNPY] failed to read data")
	}

	ts := life.NewTimeSeries(l, frames-1)
	n := l * l
	for i := 0; i < l; i++ {
		for j := 0; j < l; j++ {
			for k := 0; k < frames; k++ {
				var off int
				if fortran {
					off = i + j*l + k*n
				} else {
					off = (i*l+j)*frames + k
				}
				c := life.Cell(data[off])
				if c != life.Dead && c != life.Alive {
					return nil, errors.Wrapf(ErrBadNPY, "value %d at (%d, %d, %d)", c, i, j, k)
				}
				ts.Data[k*n+i*l+j] = c
			}
		}
	}
	return ts, nil
}

func parseHeader(h string) (l, frames int, fortran bool, err error) {
	descr := descrRe.FindStringSubmatch(h)
	if descr == nil {
		return 0, 0, false, errors.Wrap(ErrBadNPY, "header has no descr")
	}
	switch descr[1] {
	case "|i1", "<i1", ">i1", "i1", "|u1", "<u1", "|b1":
	default:
		return 0, 0, false, errors.Wrapf(ErrBadNPY, "dtype %s", descr[1])
	}

	if m := fortranRe.FindStringSubmatch(h); m != nil {
		fortran = m[1] == "True"
	}

	shape := shapeRe.FindStringSubmatch(h)
	if shape == nil {
		return 0, 0, false, errors.Wrap(ErrBadNPY, "header has no shape")
	}
	dims := make([]int, 0, 3)
	for _, part := range strings.Split(shape[1], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, convErr := strconv.Atoi(part)
		if convErr != nil {
			return 0, 0, false, errors.Wrapf(ErrBadNPY, "shape entry %q", part)
		}
		dims = append(dims, d)
	}
	if len(dims) != 3 || dims[0] != dims[1] || dims[0] <= 0 || dims[2] <= 0 {
		return 0, 0, false, errors.Wrapf(ErrBadNPY, "shape %v", dims)
	}
	if l := dims[0]; l > maxNPYCells/l || l*l > maxNPYCells/dims[2] {
		return 0, 0, false, errors.Wrapf(ErrBadNPY, "shape %v exceeds %d cells", dims, maxNPYCells)
	}
	return dims[0], dims[2], fortran, nil
}
