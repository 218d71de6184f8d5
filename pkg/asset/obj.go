package asset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/asciiray/pkg/mathf"
	"github.com/Faultbox/asciiray/pkg/scene"
	"go.uber.org/zap"
)

// objFaceCorner is one v/vt/vn index triple read from a face directive,
// already converted from OBJ form to Index form (0-based, NoIndex = absent).
type objFaceCorner struct {
	v, vt, vn Index
}

// objData accumulates the flat attribute lists an OBJ file builds up before
// faces resolve them into triangles.
type objData struct {
	positions []mathf.Vec3
	uvs       []mathf.Vec2
	normals   []mathf.Vec3

	mesh *scene.Mesh

	// smooth and smoothStart track the run of triangles read since the most
	// recent `s on`/`s 1` directive, closed out (and flushed into normal
	// synthesis) whenever `s off`/`s 0` is seen or the file ends.
	smooth      bool
	smoothStart int

	// ngonSizes counts faces by vertex count, keyed by N; a mesh built
	// entirely of triangles has one entry, {3: len(Triangles)}.
	ngonSizes map[int]int
}

// ParseOBJ reads an OBJ file from r and appends its triangles to mesh,
// fan-triangulating any face with more than three vertices. Malformed lines
// are skipped; only the first one in the file is logged. ParseOBJ itself
// only fails on an I/O error from r.
func ParseOBJ(r io.Reader, mesh *scene.Mesh, log *zap.Logger) error {
	d := &objData{mesh: mesh, ngonSizes: map[int]int{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	logged := false
	for scanner.Scan() {
		lineNo++
		if err := d.parseLine(scanner.Text()); err != nil && log != nil && !logged {
			log.Warn("skipping malformed obj line",
				zap.Int("line", lineNo), zap.Error(err))
			logged = true
		}
	}
	d.closeSmoothRun()
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("asset: reading obj: %w", err)
	}
	if log != nil {
		for n, count := range d.ngonSizes {
			if n != 3 {
				log.Debug("triangulated n-gon faces", zap.Int("vertices", n), zap.Int("count", count))
			}
		}
	}
	return nil
}

func (d *objData) parseLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		v, err := parseVec3(fields[1:])
		if err != nil {
			return fmt.Errorf("v: %w", err)
		}
		d.positions = append(d.positions, v)
	case "vt":
		if len(fields) < 3 {
			return fmt.Errorf("vt: need 2 components")
		}
		u, err1 := strconv.ParseFloat(fields[1], 32)
		v, err2 := strconv.ParseFloat(fields[2], 32)
		if err1 != nil || err2 != nil {
			return fmt.Errorf("vt: malformed component")
		}
		d.uvs = append(d.uvs, mathf.Vec2{X: float32(u), Y: float32(v)})
	case "vn":
		n, err := parseVec3(fields[1:])
		if err != nil {
			return fmt.Errorf("vn: %w", err)
		}
		d.normals = append(d.normals, n)
	case "s":
		if len(fields) < 2 {
			return fmt.Errorf("s: missing flag")
		}
		on := fields[1] == "1" || fields[1] == "on"
		off := fields[1] == "0" || fields[1] == "off"
		if !on && !off {
			return fmt.Errorf("s: unrecognized flag %q", fields[1])
		}
		if on && !d.smooth {
			d.smooth = true
			d.smoothStart = len(d.mesh.Triangles)
		} else if off && d.smooth {
			d.closeSmoothRun()
		}
	case "f":
		if err := d.parseFace(fields[1:]); err != nil {
			return fmt.Errorf("f: %w", err)
		}
	default:
		// g, mtllib, usemtl and anything else are recognized but ignored.
	}
	return nil
}

func parseVec3(fields []string) (mathf.Vec3, error) {
	if len(fields) < 3 {
		return mathf.Vec3{}, fmt.Errorf("need 3 components")
	}
	x, err1 := strconv.ParseFloat(fields[0], 32)
	y, err2 := strconv.ParseFloat(fields[1], 32)
	z, err3 := strconv.ParseFloat(fields[2], 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return mathf.Vec3{}, fmt.Errorf("malformed component")
	}
	return mathf.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

// parseFace fan-triangulates a face with N>=3 corners: for i=1..N-2 emit
// triangle (corner 0, corner i, corner i+1).
func (d *objData) parseFace(tokens []string) error {
	if len(tokens) < 3 {
		return fmt.Errorf("need at least 3 vertices, got %d", len(tokens))
	}
	corners := make([]objFaceCorner, len(tokens))
	for i, tok := range tokens {
		c, err := parseFaceCorner(tok)
		if err != nil {
			return err
		}
		corners[i] = c
	}
	d.ngonSizes[len(corners)]++
	for i := 1; i < len(corners)-1; i++ {
		tri := scene.Triangle{V: [3]scene.Vertex{
			d.resolveVertex(corners[0]),
			d.resolveVertex(corners[i]),
			d.resolveVertex(corners[i+1]),
		}}
		d.mesh.Triangles = append(d.mesh.Triangles, tri)
	}
	return nil
}

// parseFaceCorner accepts the v, v/t, v//n and v/t/n forms.
func parseFaceCorner(tok string) (objFaceCorner, error) {
	parts := strings.Split(tok, "/")
	v, err := strconv.Atoi(parts[0])
	if err != nil {
		return objFaceCorner{}, fmt.Errorf("bad vertex index %q", tok)
	}
	c := objFaceCorner{v: parseOBJIndex(v), vt: NoIndex, vn: NoIndex}
	if len(parts) >= 2 && parts[1] != "" {
		t, err := strconv.Atoi(parts[1])
		if err != nil {
			return objFaceCorner{}, fmt.Errorf("bad uv index %q", tok)
		}
		c.vt = parseOBJIndex(t)
	}
	if len(parts) >= 3 && parts[2] != "" {
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return objFaceCorner{}, fmt.Errorf("bad normal index %q", tok)
		}
		c.vn = parseOBJIndex(n)
	}
	return c, nil
}

func (d *objData) resolveVertex(c objFaceCorner) scene.Vertex {
	var v scene.Vertex
	if c.v.Valid() && int(c.v) < len(d.positions) {
		v.Pos = d.positions[c.v]
	}
	if c.vt.Valid() && int(c.vt) < len(d.uvs) {
		v.UV = d.uvs[c.vt]
	}
	if c.vn.Valid() && int(c.vn) < len(d.normals) {
		v.Normal = d.normals[c.vn]
	}
	return v
}

// closeSmoothRun applies smooth-normal synthesis to every triangle read
// since the run's opening `s on`, then clears the run.
func (d *objData) closeSmoothRun() {
	if !d.smooth {
		return
	}
	SmoothNormals(d.mesh.Triangles[d.smoothStart:])
	d.smooth = false
}
