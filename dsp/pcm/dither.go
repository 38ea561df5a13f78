package pcm

import "fmt"

// DitherType selects the probability distribution used for dither noise.
type DitherType int

const (
	// DitherNone applies no dither (plain rounding).
	DitherNone DitherType = iota
	// DitherRectangular uses a uniform (rectangular) PDF.
	DitherRectangular
	// DitherTriangular uses a triangular PDF (TPDF), the most common choice.
	DitherTriangular

	ditherTypeCount
)

var ditherTypeNames = [ditherTypeCount]string{
	"None", "Rectangular", "Triangular",
}

// String returns the name of the dither type.
func (dt DitherType) String() string {
	if dt.Valid() {
		return ditherTypeNames[dt]
	}
	return fmt.Sprintf("DitherType(%d)", dt)
}

// Valid reports whether dt is a known dither type.
func (dt DitherType) Valid() bool {
	return dt >= 0 && dt < ditherTypeCount
}

// ParseDitherType returns the dither type with the given case-sensitive
// lower-case name ("none", "rectangular", "triangular").
func ParseDitherType(name string) (DitherType, error) {
	switch name {
	case "none":
		return DitherNone, nil
	case "rectangular":
		return DitherRectangular, nil
	case "triangular":
		return DitherTriangular, nil
	default:
		return 0, fmt.Errorf("pcm: unknown dither type %q", name)
	}
}
