package frame

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LAMMPSReader streams frames from a LAMMPS dump file:
//
//	ITEM: TIMESTEP
//	<int>
//	ITEM: NUMBER OF ATOMS
//	<int>
//	ITEM: BOX BOUNDS <flags>
//	<lo hi [tilt]> x3
//	ITEM: ATOMS <col-header>
//	<row> x N
//
// Recognised atom columns: id, type, and any of {x|xu, y|yu, z|zu}. Both
// orthogonal (6-token BOX BOUNDS header) and triclinic (9-token) boxes are
// supported. Since LAMMPS dumps carry no element symbol, TypeSymbols maps
// the numeric "type" column to a symbol; unmapped types fall back to "X<type>".
type LAMMPSReader struct {
	r            *bufio.Reader
	closer       io.Closer
	stepBy       int
	frameIdx     int
	typeSymbols  map[int]string
	firstAtomIDs []int
	wantN        int
}

// NewLAMMPSReader wraps r as a FrameSource. typeSymbols may be nil, in which
// case every atom gets the fallback symbol "X<type>".
func NewLAMMPSReader(r io.Reader, closer io.Closer, stepBy int, typeSymbols map[int]string) (*LAMMPSReader, error) {
	if stepBy < 1 {
		return nil, fmt.Errorf("frame: invalid step_by %d: %w", stepBy, ErrParse)
	}
	return &LAMMPSReader{r: bufio.NewReader(r), closer: closer, stepBy: stepBy, typeSymbols: typeSymbols}, nil
}

// Next implements Source.
func (l *LAMMPSReader) Next() (Frame, bool, error) {
	for {
		fr, ok, err := l.readOneFrame()
		if err != nil || !ok {
			return fr, ok, err
		}
		idx := l.frameIdx
		l.frameIdx++
		if idx%l.stepBy != 0 {
			continue
		}
		fr.Index = idx
		return fr, true, nil
	}
}

// Close implements Source.
func (l *LAMMPSReader) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

func (l *LAMMPSReader) readLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (l *LAMMPSReader) readOneFrame() (Frame, bool, error) {
	header, err := l.readLine()
	if err == io.EOF {
		return Frame{}, false, nil
	}
	if err != nil {
		return Frame{}, false, err
	}
	if !strings.HasPrefix(header, "ITEM: TIMESTEP") {
		return Frame{}, false, fmt.Errorf("frame: expected ITEM: TIMESTEP, got %q: %w", header, ErrParse)
	}

	tsLine, err := l.readLine()
	if err == io.EOF {
		return Frame{}, false, nil
	}
	if err != nil {
		return Frame{}, false, err
	}
	timestep, err := strconv.Atoi(strings.TrimSpace(tsLine))
	if err != nil {
		return Frame{}, false, fmt.Errorf("frame: lammps timestep %q: %w", tsLine, ErrParse)
	}

	natomsHdr, err := l.readLine()
	if err != nil || !strings.HasPrefix(natomsHdr, "ITEM: NUMBER OF ATOMS") {
		if err == io.EOF {
			return Frame{}, false, nil
		}
		return Frame{}, false, fmt.Errorf("frame: expected ITEM: NUMBER OF ATOMS, got %q: %w", natomsHdr, ErrParse)
	}
	natomsLine, err := l.readLine()
	if err == io.EOF {
		return Frame{}, false, nil
	}
	if err != nil {
		return Frame{}, false, err
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(natomsLine))
	if err != nil || natoms <= 0 {
		return Frame{}, false, fmt.Errorf("frame: lammps atom count %q: %w", natomsLine, ErrParse)
	}

	boxHdr, err := l.readLine()
	if err != nil || !strings.HasPrefix(boxHdr, "ITEM: BOX BOUNDS") {
		if err == io.EOF {
			return Frame{}, false, nil
		}
		return Frame{}, false, fmt.Errorf("frame: expected ITEM: BOX BOUNDS, got %q: %w", boxHdr, ErrParse)
	}
	triclinic := len(strings.Fields(boxHdr)) > 6
	var boxLines [3]string
	for i := 0; i < 3; i++ {
		line, err := l.readLine()
		if err == io.EOF {
			return Frame{}, false, nil
		}
		if err != nil {
			return Frame{}, false, err
		}
		boxLines[i] = line
	}
	lattice, err := parseLammpsBox(boxLines, triclinic)
	if err != nil {
		return Frame{}, false, err
	}

	atomsHdr, err := l.readLine()
	if err != nil || !strings.HasPrefix(atomsHdr, "ITEM: ATOMS") {
		if err == io.EOF {
			return Frame{}, false, nil
		}
		return Frame{}, false, fmt.Errorf("frame: expected ITEM: ATOMS, got %q: %w", atomsHdr, ErrParse)
	}
	cols := strings.Fields(strings.TrimPrefix(atomsHdr, "ITEM: ATOMS"))

	atoms := make([]Atom, natoms)
	for i := 0; i < natoms; i++ {
		line, err := l.readLine()
		if err == io.EOF {
			return Frame{}, false, nil // truncated trailing frame
		}
		if err != nil {
			return Frame{}, false, err
		}
		a, err := parseLammpsAtomRow(line, cols)
		if err != nil {
			return Frame{}, false, err
		}
		atoms[i] = a
	}

	if err := l.assignSymbols(atoms); err != nil {
		return Frame{}, false, err
	}
	if err := l.checkConsistency(atoms); err != nil {
		return Frame{}, false, err
	}

	return Frame{Timestep: timestep, Atoms: atoms, Lattice: lattice}, true, nil
}

func (l *LAMMPSReader) assignSymbols(atoms []Atom) error {
	for i := range atoms {
		if sym, ok := l.typeSymbols[atoms[i].Type]; ok {
			atoms[i].Symbol = sym
		} else {
			atoms[i].Symbol = fmt.Sprintf("X%d", atoms[i].Type)
		}
	}
	return nil
}

func (l *LAMMPSReader) checkConsistency(atoms []Atom) error {
	ids := make([]int, len(atoms))
	for i, a := range atoms {
		ids[i] = a.ID
	}
	if l.firstAtomIDs == nil {
		l.firstAtomIDs = ids
		l.wantN = len(ids)
		return nil
	}
	if len(ids) != l.wantN {
		return fmt.Errorf("frame: atom count changed from %d to %d: %w", l.wantN, len(ids), ErrInconsistentTrajectory)
	}
	for i, id := range ids {
		if id != l.firstAtomIDs[i] {
			return fmt.Errorf("frame: atom %d id changed from %d to %d: %w", i+1, l.firstAtomIDs[i], id, ErrInconsistentTrajectory)
		}
	}
	return nil
}

func parseLammpsAtomRow(line string, cols []string) (Atom, error) {
	fields := strings.Fields(line)
	if len(fields) != len(cols) {
		return Atom{}, fmt.Errorf("frame: lammps atom row %q has %d fields, header has %d: %w", line, len(fields), len(cols), ErrParse)
	}
	var a Atom
	for i, c := range cols {
		v := fields[i]
		switch c {
		case "id":
			n, err := strconv.Atoi(v)
			if err != nil {
				return Atom{}, fmt.Errorf("frame: lammps id %q: %w", v, ErrParse)
			}
			a.ID = n
		case "type":
			n, err := strconv.Atoi(v)
			if err != nil {
				return Atom{}, fmt.Errorf("frame: lammps type %q: %w", v, ErrParse)
			}
			a.Type = n
		case "x", "xu":
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return Atom{}, fmt.Errorf("frame: lammps x %q: %w", v, ErrParse)
			}
			a.X = f
		case "y", "yu":
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return Atom{}, fmt.Errorf("frame: lammps y %q: %w", v, ErrParse)
			}
			a.Y = f
		case "z", "zu":
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return Atom{}, fmt.Errorf("frame: lammps z %q: %w", v, ErrParse)
			}
			a.Z = f
		}
	}
	return a, nil
}

// parseLammpsBox derives cell vectors and origin from the three BOX BOUNDS
// data lines, following standard LAMMPS orthogonal/triclinic conventions.
func parseLammpsBox(lines [3]string, triclinic bool) (*Lattice, error) {
	var lo, hi, tilt [3]float64
	for i, line := range lines {
		fields := strings.Fields(line)
		want := 2
		if triclinic {
			want = 3
		}
		if len(fields) < want {
			return nil, fmt.Errorf("frame: lammps box line %q: %w", line, ErrParse)
		}
		var err error
		if lo[i], err = strconv.ParseFloat(fields[0], 64); err != nil {
			return nil, fmt.Errorf("frame: lammps box lo %q: %w", fields[0], ErrParse)
		}
		if hi[i], err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, fmt.Errorf("frame: lammps box hi %q: %w", fields[1], ErrParse)
		}
		if triclinic {
			if tilt[i], err = strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, fmt.Errorf("frame: lammps box tilt %q: %w", fields[2], ErrParse)
			}
		}
	}

	var va, vb, vc, origin [3]float64
	if !triclinic {
		va[0] = hi[0] - lo[0]
		vb[1] = hi[1] - lo[1]
		vc[2] = hi[2] - lo[2]
		origin = lo
	} else {
		xy, xz, yz := tilt[0], tilt[1], tilt[2]

		xlo := lo[0] - fMin(0, xy, xz, xy+xz)
		xhi := hi[0] - fMax(0, xy, xz, xy+xz)
		va[0] = xhi - xlo

		ylo := lo[1] - fMin(0, yz)
		yhi := hi[1] - fMax(0, yz)
		vb[0] = xy
		vb[1] = yhi - ylo

		zlo := lo[2]
		zhi := hi[2]
		vc[0] = xz
		vc[1] = yz
		vc[2] = zhi - zlo

		origin = [3]float64{xlo, ylo, zlo}
	}

	return &Lattice{Vectors: [3][3]float64{va, vb, vc}, Origin: origin}, nil
}

func fMin(vs ...float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func fMax(vs ...float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
