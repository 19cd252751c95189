package material

import "math"

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Bounds is an axis-aligned bounding box given by center and full size.
type Bounds struct {
	Center Vec3
	Size   Vec3
}

// Min returns the minimum corner.
func (b Bounds) Min() Vec3 { return b.Center.Sub(b.Size.Scale(0.5)) }

// Max returns the maximum corner.
func (b Bounds) Max() Vec3 { return b.Center.Add(b.Size.Scale(0.5)) }

// Inflate returns b grown by amount on every side.
func (b Bounds) Inflate(amount float64) Bounds {
	return Bounds{
		Center: b.Center,
		Size:   b.Size.Add(Vec3{amount, amount, amount}.Scale(2)),
	}
}
