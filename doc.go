/*
Package scad builds OpenSCAD scene descriptions from Go values and writes them
as script text.

Shapes, transformations and boolean combinations are immutable values. Their
arguments may be literals or references to customizer variables and free-form
expressions; arithmetic on values folds literals and keeps references symbolic,
so the engine still sees "($width + 5)" in the output.

Builder example:

	cube := scad.NewCube(10, 10, 10)
	red := scad.Colored(scad.MovedRight(cube, 5), scad.NewRGB(255, 0, 0))

	m := scad.NewModel().WithRenderable(red)
	text, err := m.Content(nil)
	if err != nil {
		// handle error
	}

Symbolic values example:

	width := scad.NewSliderVariable("width", 20, scad.Slider{Max: 100})
	box := scad.NewCube(width.Ref(), 10, scad.Expression("$width / 2"))
	m := scad.NewModel().WithVariable(width).WithRenderable(box)

Writer example:

	out, err := scad.Format(&m, nil)
	if err != nil {
		// handle error
	}

Export example:

	r := scad.NewExportRenderer("stl", nil)
	if err := m.WithRenderer(r).Render(ctx, "model.stl", nil); err != nil {
		// handle error
	}

Validator example:

	issues := scad.Validate(&m, nil)
	if len(issues) != 0 {
		// handle validation issues
	}
*/
package scad
