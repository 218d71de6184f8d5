package asset

import "errors"

// ErrNoOBJFile is returned by LoadFolder when a directory contains no
// .obj file.
var ErrNoOBJFile = errors.New("asset: no .obj file found in folder")

// ErrEmptyMesh is returned when an OBJ file parses cleanly but yields no
// triangles.
var ErrEmptyMesh = errors.New("asset: obj file contains no faces")

// ErrTextureDecode wraps a failure from a Decoder.
var ErrTextureDecode = errors.New("asset: texture decode failed")
