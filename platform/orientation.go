package platform

// Orientation is the screen orientation tracked by the translator
type Orientation uint8

const (
	OrientationUnknown Orientation = iota
	OrientationPortrait
	OrientationFlippedPortrait
	OrientationLandscape
	OrientationFlippedLandscape
)

// ParseOrientation maps platform codes 1-4; anything else is rejected
func ParseOrientation(code int) (Orientation, bool) {
	switch code {
	case 1:
		return OrientationPortrait, true
	case 2:
		return OrientationFlippedPortrait, true
	case 3:
		return OrientationLandscape, true
	case 4:
		return OrientationFlippedLandscape, true
	}
	return OrientationUnknown, false
}

func (o Orientation) String() string {
	switch o {
	case OrientationPortrait:
		return "Portrait"
	case OrientationFlippedPortrait:
		return "FlippedPortrait"
	case OrientationLandscape:
		return "Landscape"
	case OrientationFlippedLandscape:
		return "FlippedLandscape"
	default:
		return "Unknown"
	}
}
