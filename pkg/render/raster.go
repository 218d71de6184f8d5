package render

import (
	"math"

	"github.com/Faultbox/asciiray/pkg/mathf"
	"github.com/Faultbox/asciiray/pkg/scene"
)

// edge is the signed 2D area spanned by point c relative to edge a->b.
func edge(a, b, c mathf.Vec2) float32 {
	return (c.X-a.X)*(b.Y-a.Y) - (b.X-a.X)*(c.Y-a.Y)
}

// Rasterize scan-converts a single projected triangle into frame, testing
// and updating depth per covered pixel and shading with Blinn-Phong
// against lights. camPos is the world-space camera position used for the
// specular half-vector.
func Rasterize(tri ProjectedTriangle, mat *scene.Material, lights []scene.Light, camPos, background mathf.Vec3, frame *Frame) {
	w, h := frame.Width, frame.Height

	toScreen := func(ndc mathf.Vec3) mathf.Vec2 {
		return mathf.Vec2{X: (ndc.X + 1) / 2 * float32(w), Y: (1 - ndc.Y) / 2 * float32(h)}
	}
	p0, p1, p2 := toScreen(tri.V[0].NDC), toScreen(tri.V[1].NDC), toScreen(tri.V[2].NDC)

	area := edge(p0, p1, p2)
	if area == 0 {
		return
	}

	minX := clampInt(int(math.Floor(float64(minOf3(p0.X, p1.X, p2.X)))), 0, w-1)
	maxX := clampInt(int(math.Ceil(float64(maxOf3(p0.X, p1.X, p2.X)))), 0, w-1)
	minY := clampInt(int(math.Floor(float64(minOf3(p0.Y, p1.Y, p2.Y)))), 0, h-1)
	maxY := clampInt(int(math.Ceil(float64(maxOf3(p0.Y, p1.Y, p2.Y)))), 0, h-1)

	invW := [3]float32{1 / tri.V[0].W, 1 / tri.V[1].W, 1 / tri.V[2].W}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := mathf.Vec2{X: float32(x) + 0.5, Y: float32(y) + 0.5}
			w0 := edge(p1, p2, p) / area
			w1 := edge(p2, p0, p) / area
			w2 := edge(p0, p1, p) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			d := w0*invW[0] + w1*invW[1] + w2*invW[2]
			if d == 0 {
				continue
			}

			zNDC := (w0*invW[0]*tri.V[0].NDC.Z + w1*invW[1]*tri.V[1].NDC.Z + w2*invW[2]*tri.V[2].NDC.Z) / d

			idx := y*w + x
			if zNDC >= frame.depth[idx] {
				continue
			}
			frame.depth[idx] = zNDC

			worldPos := perspLerpVec3(tri.V[0].World, tri.V[1].World, tri.V[2].World, w0, w1, w2, invW, d)
			normal := perspLerpVec3(tri.V[0].Normal, tri.V[1].Normal, tri.V[2].Normal, w0, w1, w2, invW, d).Normalize()
			uv := perspLerpVec2(tri.V[0].UV, tri.V[1].UV, tri.V[2].UV, w0, w1, w2, invW, d)

			ambientDiffuse, specular := shade(worldPos, normal, mat, lights, camPos)
			tex := mat.DiffuseTex.Sample(uv.X, uv.Y)

			color := ambientDiffuse.Mul(tex).Add(specular)
			color = mathf.LerpVec3(background, color, mat.Transparency)
			color = color.Clamp01()

			frame.Glyph[y][x] = pxChar
			frame.Color[y][x] = [3]uint8{
				uint8(math.Round(float64(color.X) * 255)),
				uint8(math.Round(float64(color.Y) * 255)),
				uint8(math.Round(float64(color.Z) * 255)),
			}
		}
	}
}

func perspLerpVec3(a, b, c mathf.Vec3, w0, w1, w2 float32, invW [3]float32, d float32) mathf.Vec3 {
	sum := a.Scale(w0 * invW[0]).Add(b.Scale(w1 * invW[1])).Add(c.Scale(w2 * invW[2]))
	return sum.Scale(1 / d)
}

func perspLerpVec2(a, b, c mathf.Vec2, w0, w1, w2 float32, invW [3]float32, d float32) mathf.Vec2 {
	sum := a.Scale(w0 * invW[0]).Add(b.Scale(w1 * invW[1])).Add(c.Scale(w2 * invW[2]))
	return sum.Scale(1 / d)
}

// shade implements Blinn-Phong per spec: ambient and diffuse are combined
// (and multiplied by the diffuse texture sample at the call site);
// specular is returned separately since it is not modulated by the
// texture. Diffuse deliberately skips the distance attenuation that
// specular applies -- a faithfully reproduced quirk, not a bug.
func shade(worldPos, normal mathf.Vec3, mat *scene.Material, lights []scene.Light, camPos mathf.Vec3) (ambientDiffuse, specular mathf.Vec3) {
	ambient := mat.Ambient
	var diffuse, spec mathf.Vec3

	for _, l := range lights {
		toLight := l.Position.Sub(worldPos)
		dist := toLight.Length()
		if dist > l.Radius {
			continue
		}
		toLightN := toLight.Normalize()
		nDotL := normal.Dot(toLightN)
		if nDotL <= 0 {
			continue
		}

		view := camPos.Sub(worldPos).Normalize()
		half := view.Add(toLightN).Normalize()
		nDotH := normal.Dot(half)
		if nDotH < 0 {
			nDotH = 0
		}
		specFactor := float32(math.Pow(float64(nDotH), float64(mat.Shininess)))

		radius := l.Radius
		if radius <= 0 {
			radius = 1
		}
		ratio := dist / radius
		atten := 1 / (1 + ratio*ratio)

		diffuse = diffuse.Add(mat.Diffuse.Mul(l.Color).Scale(l.Brightness * nDotL))
		spec = spec.Add(mat.Specular.Mul(l.Color).Scale(l.Brightness * specFactor * atten))
	}

	return ambient.Clamp01().Add(diffuse.Clamp01()), spec.Clamp01()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minOf3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
