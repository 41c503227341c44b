package frame

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// XYZReader streams frames from a multi-frame XYZ file: each frame is an
// atom count, a free-form title line, then that many "symbol x y z ..." rows.
// Extra columns beyond x,y,z are ignored. A title carrying an extended-XYZ
// Lattice="a1 a2 ... a9" token is parsed into a Lattice.
type XYZReader struct {
	r        *bufio.Reader
	closer   io.Closer
	stepBy   int
	frameIdx int // next global_frame to assign
	wantID   int // for trajectory-consistency checks

	firstSymbols []string
	done         bool
}

// NewXYZReader wraps r (and an optional Closer) as a FrameSource. stepBy
// must be >= 1; it yields every stepBy-th frame.
func NewXYZReader(r io.Reader, closer io.Closer, stepBy int) (*XYZReader, error) {
	if stepBy < 1 {
		return nil, fmt.Errorf("frame: invalid step_by %d: %w", stepBy, ErrParse)
	}
	return &XYZReader{r: bufio.NewReader(r), closer: closer, stepBy: stepBy}, nil
}

// Next implements Source.
func (x *XYZReader) Next() (Frame, bool, error) {
	for {
		if x.done {
			return Frame{}, false, nil
		}
		fr, ok, err := x.readOneFrame()
		if err != nil {
			return Frame{}, false, err
		}
		if !ok {
			x.done = true
			return Frame{}, false, nil
		}
		idx := x.frameIdx
		x.frameIdx++
		if idx%x.stepBy != 0 {
			continue
		}
		fr.Index = idx
		return fr, true, nil
	}
}

// Close implements Source.
func (x *XYZReader) Close() error {
	if x.closer != nil {
		return x.closer.Close()
	}
	return nil
}

// readOneFrame reads exactly one frame's worth of lines, or (Frame{}, false,
// nil) at a clean EOF, or drops (with a nil error) a truncated trailing frame.
func (x *XYZReader) readOneFrame() (Frame, bool, error) {
	countLine, err := x.readLine()
	if err == io.EOF {
		return Frame{}, false, nil
	}
	if err != nil {
		return Frame{}, false, err
	}
	countLine = strings.TrimSpace(countLine)
	if countLine == "" {
		return Frame{}, false, nil
	}
	natoms, err := strconv.Atoi(countLine)
	if err != nil || natoms <= 0 {
		return Frame{}, false, fmt.Errorf("frame: xyz atom count line %q: %w", countLine, ErrParse)
	}

	title, err := x.readLine()
	if err == io.EOF {
		return Frame{}, false, nil
	}
	if err != nil {
		return Frame{}, false, err
	}

	atoms := make([]Atom, 0, natoms)
	for i := 0; i < natoms; i++ {
		line, err := x.readLine()
		if err == io.EOF {
			// truncated trailing frame: drop silently, end cleanly.
			return Frame{}, false, nil
		}
		if err != nil {
			return Frame{}, false, err
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return Frame{}, false, fmt.Errorf("frame: xyz atom row %q: %w", line, ErrParse)
		}
		px, err1 := strconv.ParseFloat(fields[1], 64)
		py, err2 := strconv.ParseFloat(fields[2], 64)
		pz, err3 := strconv.ParseFloat(fields[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return Frame{}, false, fmt.Errorf("frame: xyz coordinates %q: %w", line, ErrParse)
		}
		atoms = append(atoms, Atom{ID: i + 1, Symbol: fields[0], X: px, Y: py, Z: pz})
	}

	if err := x.checkConsistency(atoms); err != nil {
		return Frame{}, false, err
	}

	fr := Frame{Atoms: atoms}
	if lat, ok := parseExtxyzLattice(title); ok {
		fr.Lattice = lat
	}
	return fr, true, nil
}

func (x *XYZReader) checkConsistency(atoms []Atom) error {
	symbols := make([]string, len(atoms))
	for i, a := range atoms {
		symbols[i] = a.Symbol
	}
	if x.firstSymbols == nil {
		x.firstSymbols = symbols
		x.wantID = len(atoms)
		return nil
	}
	if len(symbols) != x.wantID {
		return fmt.Errorf("frame: atom count changed from %d to %d: %w", x.wantID, len(symbols), ErrInconsistentTrajectory)
	}
	for i, s := range symbols {
		if s != x.firstSymbols[i] {
			return fmt.Errorf("frame: atom %d symbol changed from %q to %q: %w", i+1, x.firstSymbols[i], s, ErrInconsistentTrajectory)
		}
	}
	return nil
}

func (x *XYZReader) readLine() (string, error) {
	line, err := x.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	return line, nil
}

// parseExtxyzLattice recognises an extended-XYZ Lattice="a1 a2 ... a9" token
// anywhere in the title line and parses it into a Lattice; other tokens are ignored.
func parseExtxyzLattice(title string) (*Lattice, bool) {
	const key = "Lattice="
	idx := strings.Index(title, key)
	if idx < 0 {
		return nil, false
	}
	rest := title[idx+len(key):]
	if len(rest) == 0 || rest[0] != '"' {
		return nil, false
	}
	end := strings.Index(rest[1:], `"`)
	if end < 0 {
		return nil, false
	}
	inner := rest[1 : 1+end]
	fields := strings.Fields(inner)
	if len(fields) != 9 {
		return nil, false
	}
	var vals [9]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}
	return &Lattice{
		Vectors: [3][3]float64{
			{vals[0], vals[1], vals[2]},
			{vals[3], vals[4], vals[5]},
			{vals[6], vals[7], vals[8]},
		},
	}, true
}
