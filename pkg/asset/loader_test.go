package asset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/asciiray/pkg/scene"
)

type fakeDecoder struct{ decoded []string }

func (f *fakeDecoder) Decode(path string) (*scene.Texture, error) {
	f.decoded = append(f.decoded, path)
	return scene.NewTexture(1, 1), nil
}

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
}

func TestLoadFolderPairsOBJAndMTL(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "model.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	writeFile(t, dir, "model.mtl", "newmtl m\nKd 0.5 0.5 0.5\nmap_Kd tex.png\n")
	writeFile(t, dir, "tex.png", "not a real png, decoder is faked")

	dec := &fakeDecoder{}
	result, err := LoadFolder(dir, dec, LoadOptions{}, nil)
	if err != nil {
		t.Fatalf("LoadFolder() error = %v", err)
	}
	if len(result.Mesh.Triangles) != 1 {
		t.Fatalf("got %d triangles, want 1", len(result.Mesh.Triangles))
	}
	if result.Mesh.Material.DiffuseTex == nil {
		t.Fatal("expected diffuse texture resolved from map_Kd")
	}
	if len(dec.decoded) != 1 || dec.decoded[0] != filepath.Join(dir, "tex.png") {
		t.Errorf("decoded = %v, want [%s]", dec.decoded, filepath.Join(dir, "tex.png"))
	}
}

func TestLoadFolderFallsBackToLoosePNGWhenNoMapKd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "model.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	writeFile(t, dir, "diffuse.png", "fake")

	dec := &fakeDecoder{}
	result, err := LoadFolder(dir, dec, LoadOptions{}, nil)
	if err != nil {
		t.Fatalf("LoadFolder() error = %v", err)
	}
	if result.Mesh.Material.DiffuseTex == nil {
		t.Fatal("expected fallback diffuse texture from loose .png")
	}
}

func TestLoadFolderNoOBJFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "model.mtl", "newmtl m\n")

	_, err := LoadFolder(dir, nil, LoadOptions{}, nil)
	if err != ErrNoOBJFile {
		t.Errorf("LoadFolder() error = %v, want ErrNoOBJFile", err)
	}
}

func TestLoadFolderForceSmoothOverridesFlatOBJ(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "model.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")

	result, err := LoadFolder(dir, nil, LoadOptions{ForceSmooth: true}, nil)
	if err != nil {
		t.Fatalf("LoadFolder() error = %v", err)
	}
	if l := result.Mesh.Triangles[0].V[0].Normal.Length(); l < 0.99 || l > 1.01 {
		t.Errorf("normal length = %v, want ~1 under ForceSmooth", l)
	}
}
