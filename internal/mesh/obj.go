package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tri-rasterizer/internal/mathutil"
)

// LoadOBJ reads a Wavefront OBJ file. The mesh is named after the file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	m, err := ParseOBJ(f, name)
	if err != nil {
		return nil, fmt.Errorf("mesh: parse %s: %w", path, err)
	}
	return m, nil
}

// ParseOBJ reads positions (v), polygon faces (f) and groups (g, o).
// Texture coordinates, normals, materials and every other statement are
// ignored. Face vertices may be written v, v/t, v//n or v/t/n; negative
// indices count back from the last vertex read so far.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	p := &objParser{mesh: &Mesh{Name: name}}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		p.line++
		if err := p.statement(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if err := p.validate(); err != nil {
		return nil, err
	}
	p.dropEmptyGroups()
	return p.mesh, nil
}

type objParser struct {
	mesh  *Mesh
	line  int
	group int  // current index into mesh.Groups
	init  bool // set once a group exists
}

func (p *objParser) statement(text string) error {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		return p.vertex(fields[1:])
	case "f":
		return p.face(fields[1:])
	case "g", "o":
		p.startGroup(strings.Join(fields[1:], " "))
	}
	return nil
}

func (p *objParser) vertex(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: line %d: vertex needs 3 coordinates, got %d", ErrSyntax, p.line, len(args))
	}
	var v mathutil.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: coordinate %q", ErrSyntax, p.line, args[i])
		}
		v[i] = f
	}
	p.mesh.Positions = append(p.mesh.Positions, v)
	return nil
}

func (p *objParser) face(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: line %d: empty face", ErrSyntax, p.line)
	}
	face := make([]int, len(args))
	for i, tok := range args {
		if j := strings.IndexByte(tok, '/'); j >= 0 {
			tok = tok[:j]
		}
		idx, err := strconv.Atoi(tok)
		if err != nil {
			return fmt.Errorf("%w: line %d: face index %q", ErrSyntax, p.line, args[i])
		}
		switch {
		case idx > 0:
			face[i] = idx - 1
		case idx < 0:
			face[i] = len(p.mesh.Positions) + idx
			if face[i] < 0 {
				return fmt.Errorf("%w: line %d: relative index %d with %d vertices", ErrIndexRange, p.line, idx, len(p.mesh.Positions))
			}
		default:
			return fmt.Errorf("%w: line %d: index 0", ErrIndexRange, p.line)
		}
	}

	if !p.init {
		p.startGroup("")
	}
	g := &p.mesh.Groups[p.group]
	g.Faces = append(g.Faces, face)
	return nil
}

func (p *objParser) startGroup(name string) {
	p.mesh.Groups = append(p.mesh.Groups, Group{Name: name})
	p.group = len(p.mesh.Groups) - 1
	p.init = true
}

// validate checks forward references once every vertex is known.
func (p *objParser) validate() error {
	n := len(p.mesh.Positions)
	for _, g := range p.mesh.Groups {
		for _, f := range g.Faces {
			for _, i := range f {
				if i >= n {
					return fmt.Errorf("%w: index %d with %d vertices", ErrIndexRange, i+1, n)
				}
			}
		}
	}
	return nil
}

func (p *objParser) dropEmptyGroups() {
	kept := p.mesh.Groups[:0]
	for _, g := range p.mesh.Groups {
		if len(g.Faces) > 0 {
			kept = append(kept, g)
		}
	}
	p.mesh.Groups = kept
}
