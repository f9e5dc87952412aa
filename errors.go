package scad

import "errors"

var (
	// ErrUnsupportedType indicates a host value that cannot be converted to a Value.
	ErrUnsupportedType = errors.New("unsupported value type")

	// ErrInvalidFace indicates a polyhedron face with fewer than 3 points.
	ErrInvalidFace = errors.New("invalid face")

	// ErrEmptyDropdown indicates a dropdown customizer variable without options.
	ErrEmptyDropdown = errors.New("dropdown without options")

	// ErrFontName indicates a font referenced without a logical name.
	ErrFontName = errors.New("font logical name not specified")

	// ErrFontPath indicates a font imported without a file path.
	ErrFontPath = errors.New("font path not specified")

	// ErrWrapperRecursion indicates a wrapper chain that does not terminate.
	ErrWrapperRecursion = errors.New("wrapper recursion limit exceeded")

	// ErrEngineNotFound indicates the geometry engine binary could not be located.
	ErrEngineNotFound = errors.New("openscad binary not found")

	// ErrRenderCommand indicates a failed geometry engine invocation.
	ErrRenderCommand = errors.New("render command failed")
)
