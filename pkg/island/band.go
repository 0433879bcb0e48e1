package island

// Band is one of the four material classes a triangle can land in, ordered
// by ascending elevation.
type Band int

const (
	Water Band = iota
	Sand
	Grass
	Rock

	// BandCount is the number of bands; usable as an array length.
	BandCount = 4
)

// Elevation thresholds as fractions of MaxHeight. A triangle whose average
// height is below waterLevel*MaxHeight is water, and so on; at or above
// grassLevel it is rock.
const (
	waterLevel = 0.05
	sandLevel  = 0.15
	grassLevel = 0.6
)

func (b Band) String() string {
	switch b {
	case Water:
		return "water"
	case Sand:
		return "sand"
	case Grass:
		return "grass"
	case Rock:
		return "rock"
	default:
		return "unknown"
	}
}

// classify maps a triangle's average height to a band. Comparisons are
// strict so a value sitting exactly on a threshold falls into the lower
// band. Thresholds scale with maxHeight, making the result a pure function
// of avgHeight/maxHeight.
func classify(avgHeight, maxHeight float32) Band {
	switch {
	case avgHeight < waterLevel*maxHeight:
		return Water
	case avgHeight < sandLevel*maxHeight:
		return Sand
	case avgHeight < grassLevel*maxHeight:
		return Grass
	default:
		return Rock
	}
}
