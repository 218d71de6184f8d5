package render

import "github.com/Faultbox/asciiray/pkg/mathf"

// ClipVertex is a triangle corner carried through the transform-and-clip
// stage: clip-space position plus the world-space attributes clipping must
// interpolate alongside it.
type ClipVertex struct {
	Clip   mathf.Vec4
	World  mathf.Vec3
	Normal mathf.Vec3
	UV     mathf.Vec2
}

// ClipTriangle is a triangle expressed in clip space, prior to the
// perspective divide.
type ClipTriangle struct {
	V [3]ClipVertex
}

func insideNearPlane(v ClipVertex) bool {
	return v.Clip.Z+v.Clip.W >= 0
}

func lerpClipVertex(a, b ClipVertex, t float32) ClipVertex {
	return ClipVertex{
		Clip:   mathf.LerpVec4(a.Clip, b.Clip, t),
		World:  mathf.LerpVec3(a.World, b.World, t),
		Normal: mathf.LerpVec3(a.Normal, b.Normal, t),
		UV:     mathf.LerpVec2(a.UV, b.UV, t),
	}
}

// intersectNearPlane finds where edge a->b crosses z+w=0, at
// t = Ad/(Ad-Bd) with Ad = a.z+a.w, Bd = b.z+b.w.
func intersectNearPlane(a, b ClipVertex) ClipVertex {
	ad := a.Clip.Z + a.Clip.W
	bd := b.Clip.Z + b.Clip.W
	t := ad / (ad - bd)
	return lerpClipVertex(a, b, t)
}

// Clip clips tri against the near plane with Sutherland-Hodgman, returning
// the 0, 1, or 2 triangles obtained by fan-triangulating the resulting
// 0/3/4-vertex polygon. A triangle entirely inside the near half-space is
// returned unchanged, corner order included.
func Clip(tri ClipTriangle) []ClipTriangle {
	if insideNearPlane(tri.V[0]) && insideNearPlane(tri.V[1]) && insideNearPlane(tri.V[2]) {
		return []ClipTriangle{tri}
	}
	poly := clipPolygonAgainstNear(tri.V[:])
	return fanTriangulateClip(poly)
}

func clipPolygonAgainstNear(poly []ClipVertex) []ClipVertex {
	if len(poly) == 0 {
		return nil
	}
	var out []ClipVertex
	n := len(poly)
	for i := 0; i < n; i++ {
		cur := poly[i]
		next := poly[(i+1)%n]
		curIn := insideNearPlane(cur)
		nextIn := insideNearPlane(next)
		switch {
		case curIn && nextIn:
			out = append(out, next)
		case curIn && !nextIn:
			out = append(out, intersectNearPlane(cur, next))
		case !curIn && nextIn:
			out = append(out, intersectNearPlane(cur, next), next)
		}
	}
	return out
}

func fanTriangulateClip(poly []ClipVertex) []ClipTriangle {
	if len(poly) < 3 {
		return nil
	}
	tris := make([]ClipTriangle, 0, len(poly)-2)
	for i := 1; i < len(poly)-1; i++ {
		tris = append(tris, ClipTriangle{V: [3]ClipVertex{poly[0], poly[i], poly[i+1]}})
	}
	return tris
}
