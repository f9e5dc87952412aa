package scad

import "strings"

// Facets controls how the engine discretizes curved surfaces.
// Nil fields are not emitted.
type Facets struct {
	Angle     *float64 // $fa, minimum fragment angle in degrees
	Size      *float64 // $fs, minimum fragment size in mm
	Fragments *float64 // $fn, fixed number of fragments
}

// FacetsAngleAndSize creates a $fa/$fs configuration.
func FacetsAngleAndSize(angle, size float64) *Facets {
	return &Facets{Angle: &angle, Size: &size}
}

// FacetsNumber creates a $fn configuration.
func FacetsNumber(fragments float64) *Facets {
	return &Facets{Fragments: &fragments}
}

// parameters renders the facets as module call arguments, e.g. "$fa = 12,$fs = 2".
func (f *Facets) parameters() string {
	if f == nil {
		return ""
	}

	var parts []string
	if f.Angle != nil {
		parts = append(parts, "$fa = "+formatNumber(*f.Angle))
	}
	if f.Size != nil {
		parts = append(parts, "$fs = "+formatNumber(*f.Size))
	}
	if f.Fragments != nil {
		parts = append(parts, "$fn = "+formatNumber(*f.Fragments))
	}

	return strings.Join(parts, ",")
}

// statements renders the facets as document-level assignments. Zero values are skipped.
func (f *Facets) statements() string {
	if f == nil {
		return ""
	}

	var b strings.Builder
	write := func(name string, v *float64) {
		if v == nil || *v == 0 {
			return
		}
		b.WriteString(name + " = " + formatNumber(*v) + ";\n")
	}
	write("$fa", f.Angle)
	write("$fs", f.Size)
	write("$fn", f.Fragments)

	return b.String()
}

// withFacets appends facet parameters to an argument list.
func withFacets(args string, f *Facets) string {
	if p := f.parameters(); p != "" {
		return args + ", " + p
	}
	return args
}
