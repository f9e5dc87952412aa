package scad

// Coordinate is a 3D position whose axes may be literal or symbolic.
type Coordinate interface {
	X() Value
	Y() Value
	Z() Value
	// Add returns a new coordinate with each axis summed.
	Add(other Coordinate) Coordinate
}

// zeroAxis is the value of an unset axis.
var zeroAxis Value = Float(0)

// Zero is the origin.
type Zero struct{}

// X implements Coordinate.
func (Zero) X() Value { return zeroAxis }

// Y implements Coordinate.
func (Zero) Y() Value { return zeroAxis }

// Z implements Coordinate.
func (Zero) Z() Value { return zeroAxis }

// Add implements Coordinate.
func (z Zero) Add(other Coordinate) Coordinate { return addCoordinates(z, other) }

// AxisX is a position along the X axis only.
type AxisX struct{ v Value }

// OnX creates a coordinate on the X axis.
func OnX(v any) AxisX { return AxisX{v: MustConvert(v)} }

// X implements Coordinate.
func (c AxisX) X() Value { return orNull(c.v) }

// Y implements Coordinate.
func (AxisX) Y() Value { return zeroAxis }

// Z implements Coordinate.
func (AxisX) Z() Value { return zeroAxis }

// Add implements Coordinate.
func (c AxisX) Add(other Coordinate) Coordinate { return addCoordinates(c, other) }

// AxisY is a position along the Y axis only.
type AxisY struct{ v Value }

// OnY creates a coordinate on the Y axis.
func OnY(v any) AxisY { return AxisY{v: MustConvert(v)} }

// X implements Coordinate.
func (AxisY) X() Value { return zeroAxis }

// Y implements Coordinate.
func (c AxisY) Y() Value { return orNull(c.v) }

// Z implements Coordinate.
func (AxisY) Z() Value { return zeroAxis }

// Add implements Coordinate.
func (c AxisY) Add(other Coordinate) Coordinate { return addCoordinates(c, other) }

// AxisZ is a position along the Z axis only.
type AxisZ struct{ v Value }

// OnZ creates a coordinate on the Z axis.
func OnZ(v any) AxisZ { return AxisZ{v: MustConvert(v)} }

// X implements Coordinate.
func (AxisZ) X() Value { return zeroAxis }

// Y implements Coordinate.
func (AxisZ) Y() Value { return zeroAxis }

// Z implements Coordinate.
func (c AxisZ) Z() Value { return orNull(c.v) }

// Add implements Coordinate.
func (c AxisZ) Add(other Coordinate) Coordinate { return addCoordinates(c, other) }

// XYZ is a full 3D position.
type XYZ struct{ x, y, z Value }

// At creates a full coordinate.
func At(x, y, z any) XYZ {
	return XYZ{x: MustConvert(x), y: MustConvert(y), z: MustConvert(z)}
}

// X implements Coordinate.
func (c XYZ) X() Value { return orNull(c.x) }

// Y implements Coordinate.
func (c XYZ) Y() Value { return orNull(c.y) }

// Z implements Coordinate.
func (c XYZ) Z() Value { return orNull(c.z) }

// Add implements Coordinate.
func (c XYZ) Add(other Coordinate) Coordinate { return addCoordinates(c, other) }

// addCoordinates sums a and b axis by axis.
func addCoordinates(a, b Coordinate) XYZ {
	if b == nil {
		b = Zero{}
	}
	return XYZ{
		x: Add(a.X(), b.X()),
		y: Add(a.Y(), b.Y()),
		z: Add(a.Z(), b.Z()),
	}
}

// isOrigin reports whether c is literally at the origin.
func isOrigin(c Coordinate) bool {
	return literalEquals(c.X(), 0) && literalEquals(c.Y(), 0) && literalEquals(c.Z(), 0)
}
