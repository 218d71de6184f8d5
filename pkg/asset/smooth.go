package asset

import (
	"math"

	"github.com/Faultbox/asciiray/pkg/scene"
)

const positionTolerance = 1e-6

// SmoothNormals synthesizes a vertex-averaged normal for every corner of
// tris, replacing whatever normals they carried. Corners whose positions
// are equal within positionTolerance per component share one normal.
func SmoothNormals(tris []scene.Triangle) {
	type bucket struct {
		pos   [3]float32
		sum   [3]float32
		count int
	}
	var buckets []bucket

	findOrAdd := func(x, y, z float32) int {
		for i := range buckets {
			p := buckets[i].pos
			if closeEnough(p[0], x) && closeEnough(p[1], y) && closeEnough(p[2], z) {
				return i
			}
		}
		buckets = append(buckets, bucket{pos: [3]float32{x, y, z}})
		return len(buckets) - 1
	}

	// index[i][c] is the bucket for triangle i's corner c.
	index := make([][3]int, len(tris))
	for i, t := range tris {
		for c := 0; c < 3; c++ {
			p := t.V[c].Pos
			index[i][c] = findOrAdd(p.X, p.Y, p.Z)
		}
	}

	for i, t := range tris {
		fn := t.FaceNormal().Normalize()
		for c := 0; c < 3; c++ {
			b := &buckets[index[i][c]]
			b.sum[0] += fn.X
			b.sum[1] += fn.Y
			b.sum[2] += fn.Z
			b.count++
		}
	}

	for i := range buckets {
		b := &buckets[i]
		if b.count == 0 {
			continue
		}
		inv := 1 / float32(b.count)
		b.sum[0] *= inv
		b.sum[1] *= inv
		b.sum[2] *= inv
		l := float32(math.Sqrt(float64(b.sum[0]*b.sum[0] + b.sum[1]*b.sum[1] + b.sum[2]*b.sum[2])))
		if l > 1e-12 {
			b.sum[0] /= l
			b.sum[1] /= l
			b.sum[2] /= l
		}
	}

	for i := range tris {
		for c := 0; c < 3; c++ {
			b := buckets[index[i][c]]
			tris[i].V[c].Normal.X = b.sum[0]
			tris[i].V[c].Normal.Y = b.sum[1]
			tris[i].V[c].Normal.Z = b.sum[2]
		}
	}
}

func closeEnough(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < positionTolerance
}
