package scad

// Color is a color argument list for the color() transformation.
type Color interface {
	// Scad returns the arguments, e.g. `c = [1, 0, 0], alpha = 1`.
	Scad() string
}

// RGB represents a color with 0-255 channels and a 0-1 alpha.
type RGB struct {
	red, green, blue Value
	alpha            Value
}

// NewRGB creates an opaque color from 0-255 channels.
func NewRGB(red, green, blue any) RGB {
	return RGB{
		red:   MustConvert(red),
		green: MustConvert(green),
		blue:  MustConvert(blue),
		alpha: Float(1),
	}
}

// NewRGBA creates a color from 0-255 channels and a 0-1 alpha.
func NewRGBA(red, green, blue, alpha any) RGB {
	return NewRGB(red, green, blue).WithAlpha(alpha)
}

// WithAlpha returns a copy of the color with a different alpha.
func (c RGB) WithAlpha(alpha any) RGB {
	c.alpha = MustConvert(alpha)
	return c
}

// Scad implements Color. Channels are normalized to 0-1.
func (c RGB) Scad() string {
	red := Div(orNull(c.red), Int(255))
	green := Div(orNull(c.green), Int(255))
	blue := Div(orNull(c.blue), Int(255))

	return "c = [" + red.Scad() + ", " + green.Scad() + ", " + blue.Scad() + "], alpha = " + alphaOf(c.alpha)
}

// Hex represents a color given as a hex string or a color name.
type Hex struct {
	hex   Value
	alpha Value
}

// NewHex creates an opaque color from a string such as "#ff0000" or "red".
func NewHex(hex any) Hex {
	return Hex{hex: MustConvert(hex), alpha: Float(1)}
}

// WithAlpha returns a copy of the color with a different alpha.
func (c Hex) WithAlpha(alpha any) Hex {
	c.alpha = MustConvert(alpha)
	return c
}

// Scad implements Color.
func (c Hex) Scad() string {
	return "c = " + scadOf(c.hex) + ", alpha = " + alphaOf(c.alpha)
}

// alphaOf renders alpha, defaulting to opaque.
func alphaOf(v Value) string {
	if v == nil {
		return "1"
	}
	return v.Scad()
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
