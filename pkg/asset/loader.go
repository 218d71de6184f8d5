package asset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Faultbox/asciiray/pkg/scene"
	"go.uber.org/zap"
)

// LoadOptions controls loader behavior beyond what the OBJ/MTL files
// themselves declare.
type LoadOptions struct {
	// ForceSmooth synthesizes smooth normals for the whole mesh regardless
	// of the OBJ's `s` directives, mirroring the original's FORCE_SMOOTH
	// build flag.
	ForceSmooth bool
}

// LoadResult is everything LoadFolder recovers from a model folder: the
// assembled mesh plus the full material list an MTL file defined, even
// though only Materials[0] is bound to the mesh (spec's fixed design).
type LoadResult struct {
	Mesh      *scene.Mesh
	Materials []*scene.Material
}

// LoadFolder implements the folder-pairing algorithm: it scans dir for an
// OBJ (required), an MTL, and a PNG/JPEG/BMP/TGA fallback diffuse texture.
// When more than one candidate of a kind exists it uses the last match in
// sorted filename order; it logs a warning for several OBJ or MTL files,
// not for several images.
func LoadFolder(dir string, dec Decoder, opts LoadOptions, log *zap.Logger) (*LoadResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("asset: reading folder %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var objPath, mtlPath, fallbackTexPath string
	var objCount, mtlCount int
	for _, name := range names {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".obj":
			objPath = filepath.Join(dir, name)
			objCount++
		case ".mtl":
			mtlPath = filepath.Join(dir, name)
			mtlCount++
		case ".png", ".jpg", ".jpeg", ".bmp", ".tga":
			fallbackTexPath = filepath.Join(dir, name)
		}
	}

	if objCount == 0 {
		return nil, ErrNoOBJFile
	}
	if objCount > 1 && log != nil {
		log.Warn("multiple .obj files found, using last in sorted order",
			zap.String("dir", dir), zap.String("used", objPath))
	}
	if mtlCount > 1 && log != nil {
		log.Warn("multiple .mtl files found, using last in sorted order",
			zap.String("dir", dir), zap.String("used", mtlPath))
	}

	mesh := scene.NewMesh(filepath.Base(dir), nil)

	f, err := os.Open(objPath)
	if err != nil {
		return nil, fmt.Errorf("asset: opening obj: %w", err)
	}
	err = ParseOBJ(f, mesh, log)
	f.Close()
	if err != nil {
		return nil, err
	}
	if len(mesh.Triangles) == 0 {
		return nil, ErrEmptyMesh
	}
	if opts.ForceSmooth {
		SmoothNormals(mesh.Triangles)
	}

	var materials []*scene.Material
	var texPaths []TexturePaths
	if mtlPath != "" {
		mf, err := os.Open(mtlPath)
		if err != nil {
			return nil, fmt.Errorf("asset: opening mtl: %w", err)
		}
		materials, texPaths, err = ParseMTL(mf, log)
		mf.Close()
		if err != nil {
			return nil, err
		}
	}

	mat := scene.DefaultMaterial()
	if len(materials) > 0 {
		mat = *materials[0]
		tp := texPaths[0]
		if tp.Diffuse != "" {
			mat.DiffuseTex = resolveTexture(dec, dir, tp.Diffuse, log)
		}
		if tp.Specular != "" {
			mat.SpecularTex = resolveTexture(dec, dir, tp.Specular, log)
		}
		if tp.Normal != "" {
			mat.NormalTex = resolveTexture(dec, dir, tp.Normal, log)
		}
	}
	if mat.DiffuseTex == nil && fallbackTexPath != "" {
		mat.DiffuseTex = resolveTexture(dec, dir, filepath.Base(fallbackTexPath), log)
	}
	mesh.Material = &mat

	if log != nil {
		log.Info("model folder loaded",
			zap.String("dir", dir),
			zap.Stringer("mesh_id", mesh.ID),
			zap.Stringer("material_id", mat.ID),
			zap.Int("triangles", len(mesh.Triangles)))
	}

	return &LoadResult{Mesh: mesh, Materials: materials}, nil
}

func resolveTexture(dec Decoder, dir, name string, log *zap.Logger) *scene.Texture {
	if dec == nil {
		return nil
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, name)
	}
	tex, err := dec.Decode(path)
	if err != nil {
		if log != nil {
			log.Warn("texture decode failed", zap.String("path", path), zap.Error(err))
		}
		return nil
	}
	return tex
}
