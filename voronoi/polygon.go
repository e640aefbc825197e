package voronoi

import (
	"math"

	"github.com/katalvlaran/multimesh/mesh"
)

// halfSpace is the constraint n·x ≤ c.
type halfSpace struct {
	n mesh.Vec3
	c float64
}

// boxHalfSpaces returns the six container constraints in wall-ID order:
// x-min, x-max, y-min, y-max, z-min, z-max (wall IDs -1..-6).
func boxHalfSpaces(b Box) [6]halfSpace {
	return [6]halfSpace{
		{mesh.Vec3{X: -1}, -b.Min.X},
		{mesh.Vec3{X: 1}, b.Max.X},
		{mesh.Vec3{Y: -1}, -b.Min.Y},
		{mesh.Vec3{Y: 1}, b.Max.Y},
		{mesh.Vec3{Z: -1}, -b.Min.Z},
		{mesh.Vec3{Z: 1}, b.Max.Z},
	}
}

// bisectorHalfSpace returns the constraint "closer to p than to q":
// x·(q-p) ≤ (q·q - p·p)/2.
func bisectorHalfSpace(p, q mesh.Vec3) halfSpace {
	return halfSpace{n: q.Sub(p), c: (q.Dot(q) - p.Dot(p)) / 2}
}

// clip cuts poly by h with tolerance eps (Sutherland–Hodgman). The result
// shares no storage with poly.
func clip(poly []mesh.Vec3, h halfSpace, eps float64) []mesh.Vec3 {
	if len(poly) == 0 {
		return nil
	}
	out := make([]mesh.Vec3, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	prevIn := h.n.Dot(prev) <= h.c+eps
	for _, cur := range poly {
		curIn := h.n.Dot(cur) <= h.c+eps
		if curIn != prevIn {
			// Edge crosses the plane: add the intersection point.
			d := h.n.Dot(cur.Sub(prev))
			if d != 0 {
				t := (h.c - h.n.Dot(prev)) / d
				out = append(out, prev.Add(cur.Sub(prev).Scale(t)))
			}
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// area returns the area of a planar convex polygon.
func area(poly []mesh.Vec3) float64 {
	if len(poly) < 3 {
		return 0
	}
	var acc mesh.Vec3
	for i := 1; i+1 < len(poly); i++ {
		a := poly[i].Sub(poly[0])
		b := poly[i+1].Sub(poly[0])
		acc = acc.Add(mesh.Vec3{
			X: a.Y*b.Z - a.Z*b.Y,
			Y: a.Z*b.X - a.X*b.Z,
			Z: a.X*b.Y - a.Y*b.X,
		})
	}
	return acc.Norm() / 2
}

// planePolygon returns a square of half-size r on the plane through c with
// unit normal u, centered at c.
func planePolygon(c, u mesh.Vec3, r float64) []mesh.Vec3 {
	// Pick the axis least aligned with u to build an orthonormal basis.
	axis := mesh.Vec3{X: 1}
	ax, ay, az := math.Abs(u.X), math.Abs(u.Y), math.Abs(u.Z)
	if ay <= ax && ay <= az {
		axis = mesh.Vec3{Y: 1}
	} else if az <= ax && az <= ay {
		axis = mesh.Vec3{Z: 1}
	}
	e1 := mesh.Vec3{
		X: u.Y*axis.Z - u.Z*axis.Y,
		Y: u.Z*axis.X - u.X*axis.Z,
		Z: u.X*axis.Y - u.Y*axis.X,
	}
	e1 = e1.Scale(1 / e1.Norm())
	e2 := mesh.Vec3{
		X: u.Y*e1.Z - u.Z*e1.Y,
		Y: u.Z*e1.X - u.X*e1.Z,
		Z: u.X*e1.Y - u.Y*e1.X,
	}
	return []mesh.Vec3{
		c.Add(e1.Scale(r)).Add(e2.Scale(r)),
		c.Sub(e1.Scale(r)).Add(e2.Scale(r)),
		c.Sub(e1.Scale(r)).Sub(e2.Scale(r)),
		c.Add(e1.Scale(r)).Sub(e2.Scale(r)),
	}
}

// wallPolygon returns the rectangle of box wall w (0..5, wall-ID order).
func wallPolygon(b Box, w int) []mesh.Vec3 {
	lo, hi := b.Min, b.Max
	v := func(x, y, z float64) mesh.Vec3 { return mesh.Vec3{X: x, Y: y, Z: z} }
	switch w {
	case 0: // x = Min.X
		return []mesh.Vec3{v(lo.X, lo.Y, lo.Z), v(lo.X, hi.Y, lo.Z), v(lo.X, hi.Y, hi.Z), v(lo.X, lo.Y, hi.Z)}
	case 1: // x = Max.X
		return []mesh.Vec3{v(hi.X, lo.Y, lo.Z), v(hi.X, hi.Y, lo.Z), v(hi.X, hi.Y, hi.Z), v(hi.X, lo.Y, hi.Z)}
	case 2: // y = Min.Y
		return []mesh.Vec3{v(lo.X, lo.Y, lo.Z), v(hi.X, lo.Y, lo.Z), v(hi.X, lo.Y, hi.Z), v(lo.X, lo.Y, hi.Z)}
	case 3: // y = Max.Y
		return []mesh.Vec3{v(lo.X, hi.Y, lo.Z), v(hi.X, hi.Y, lo.Z), v(hi.X, hi.Y, hi.Z), v(lo.X, hi.Y, hi.Z)}
	case 4: // z = Min.Z
		return []mesh.Vec3{v(lo.X, lo.Y, lo.Z), v(hi.X, lo.Y, lo.Z), v(hi.X, hi.Y, lo.Z), v(lo.X, hi.Y, lo.Z)}
	default: // z = Max.Z
		return []mesh.Vec3{v(lo.X, lo.Y, hi.Z), v(hi.X, lo.Y, hi.Z), v(hi.X, hi.Y, hi.Z), v(lo.X, hi.Y, hi.Z)}
	}
}
