package asset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/asciiray/pkg/scene"
	"go.uber.org/zap"
)

// TexturePaths carries the map_* filenames of one material, unresolved
// against a directory or Decoder; LoadFolder resolves them and fills in the
// Material's texture pointers.
type TexturePaths struct {
	Diffuse, Specular, Normal string
}

// ParseMTL reads an MTL file from r and returns its materials in file
// order, alongside the texture filenames each one named (see TexturePaths).
func ParseMTL(r io.Reader, log *zap.Logger) ([]*scene.Material, []TexturePaths, error) {
	var materials []*scene.Material
	var paths []TexturePaths
	var current *scene.Material

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		if fields[0] == "newmtl" {
			if len(fields) < 2 {
				continue
			}
			m := scene.DefaultMaterial()
			m.Name = fields[1]
			materials = append(materials, &m)
			paths = append(paths, TexturePaths{})
			current = &m
			continue
		}
		if current == nil {
			if log != nil {
				log.Warn("mtl directive before newmtl, skipping",
					zap.Int("line", lineNo), zap.String("directive", fields[0]))
			}
			continue
		}

		switch fields[0] {
		case "Ka":
			if v, err := parseVec3(fields[1:]); err == nil {
				current.Ambient = v
			}
		case "Kd":
			if v, err := parseVec3(fields[1:]); err == nil {
				current.Diffuse = v
			}
		case "Ks":
			if v, err := parseVec3(fields[1:]); err == nil {
				current.Specular = v
			}
		case "Ns":
			if len(fields) >= 2 {
				if v, err := strconv.ParseFloat(fields[1], 32); err == nil {
					current.Shininess = float32(v)
				}
			}
		case "d":
			if len(fields) >= 2 {
				if v, err := strconv.ParseFloat(fields[1], 32); err == nil {
					current.Transparency = float32(v)
				}
			}
		case "illum":
			if len(fields) >= 2 {
				if v, err := strconv.Atoi(fields[1]); err == nil {
					current.Illum = v
				}
			}
		case "map_Kd":
			if len(fields) >= 2 {
				paths[len(paths)-1].Diffuse = fields[len(fields)-1]
			}
		case "map_Ks":
			if len(fields) >= 2 {
				paths[len(paths)-1].Specular = fields[len(fields)-1]
			}
		case "map_Bump", "map_bump":
			if len(fields) >= 2 {
				paths[len(paths)-1].Normal = fields[len(fields)-1]
			}
		default:
			// newmtl-scoped directives with no rendering effect here (Ni,
			// Tr, Tf, sharpness...) are recognized as valid MTL syntax and
			// otherwise ignored.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("asset: reading mtl: %w", err)
	}
	return materials, paths, nil
}
