// package colorblind implements the color-vision-deficiency simulation model:
// the set of supported modes, the fixed channel-mixing table for each mode, and
// the per-capture-point settings that drive the post-processing pass. The
// simulation only previews how color blind users perceive a rendered frame; it
// does not correct colors or make an application more accessible.
package colorblind

// Mode identifies a color-vision-deficiency simulation variant.
type Mode int

const (
	// ModeNormal is unmodified full color vision.
	ModeNormal Mode = iota

	// ModeProtanopia is the inability to differentiate between green and red.
	ModeProtanopia

	// ModeProtanomaly is the condition where red looks more green.
	ModeProtanomaly

	// ModeDeuteranopia is the inability to differentiate between green and red.
	ModeDeuteranopia

	// ModeDeuteranomaly is the condition where green looks more red.
	ModeDeuteranomaly

	// ModeTritanopia is the inability to differentiate between blue and green,
	// purple and red, and yellow and pink.
	ModeTritanopia

	// ModeTritanomaly is difficulty differentiating between blue and green,
	// and between yellow and red.
	ModeTritanomaly

	// ModeAchromatopsia is the absence of color discrimination.
	ModeAchromatopsia

	// ModeAchromatomaly is a deficiency across all three cone types. It is an
	// extrapolation of the other variants rather than a documented condition,
	// kept for completeness.
	ModeAchromatomaly
)

// modeCount is the number of Mode variants. Cycle wraps modulo this value.
const modeCount = 9

// modeNames maps each Mode to its display name, used for logging and window titles.
var modeNames = [modeCount]string{
	"Normal",
	"Protanopia",
	"Protanomaly",
	"Deuteranopia",
	"Deuteranomaly",
	"Tritanopia",
	"Tritanomaly",
	"Achromatopsia",
	"Achromatomaly",
}

// String returns the display name of the Mode. Out-of-range values report as "Normal".
//
// Returns:
//   - string: the mode's display name
func (m Mode) String() string {
	if m < 0 || m >= modeCount {
		return modeNames[ModeNormal]
	}
	return modeNames[m]
}

// Cycle returns the successor of this Mode in the fixed cycling order:
// Normal, Protanopia, Protanomaly, Deuteranopia, Deuteranomaly, Tritanopia,
// Tritanomaly, Achromatopsia, Achromatomaly, and back to Normal. The order
// forms a single cycle of period 9. Out-of-range values cycle to Normal.
//
// Returns:
//   - Mode: the next mode in the cycling order
func (m Mode) Cycle() Mode {
	if m < 0 || m >= modeCount {
		return ModeNormal
	}
	return (m + 1) % modeCount
}
