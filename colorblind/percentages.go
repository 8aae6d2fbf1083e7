package colorblind

// ChannelMixPercentages indicates how to mix the RGB channels of a source
// pixel to obtain the output pixel: each output channel is the dot product of
// its row with the input RGB. Normal vision is the identity matrix — the red
// row is (1, 0, 0), the green row (0, 1, 0), and the blue row (0, 0, 1).
// Values are derived purely from a Mode and are replaced wholesale, never
// mutated in place.
type ChannelMixPercentages struct {
	// Red holds the percentages of red, green, and blue mixed into the red output channel.
	Red [3]float32

	// Green holds the percentages of red, green, and blue mixed into the green output channel.
	Green [3]float32

	// Blue holds the percentages of red, green, and blue mixed into the blue output channel.
	Blue [3]float32
}

// Apply mixes the input RGB channels through the matrix, returning the output channels.
// No clamping is performed; callers that need [0, 1] output must clamp themselves.
//
// Parameters:
//   - r, g, b: input channel values
//
// Returns:
//   - float32, float32, float32: the mixed red, green, and blue output channels
func (p ChannelMixPercentages) Apply(r, g, b float32) (float32, float32, float32) {
	return p.Red[0]*r + p.Red[1]*g + p.Red[2]*b,
		p.Green[0]*r + p.Green[1]*g + p.Green[2]*b,
		p.Blue[0]*r + p.Blue[1]*g + p.Blue[2]*b
}

// percentagesTable holds the fixed channel-mixing coefficients for each Mode.
// The values are empirical constants from the colorjack colormatrix reference
// (via https://www.alanzucconi.com/2015/12/16/color-blindness/) and define the
// simulated perceptual mapping, so they are reproduced digit-for-digit.
//
// The Tritanopia and Tritanomaly red rows sum to more than 1.0 (0.95 + 0.5 and
// 0.96667 + 0.3333). That is carried over from the reference table as-is; it is
// unclear whether the excess is intentional or a transcription error upstream,
// and normalizing it would silently change the simulated output.
var percentagesTable = [modeCount]ChannelMixPercentages{
	ModeNormal: {
		Red:   [3]float32{1, 0, 0},
		Green: [3]float32{0, 1, 0},
		Blue:  [3]float32{0, 0, 1},
	},
	ModeProtanopia: {
		Red:   [3]float32{0.56667, 0.43333, 0},
		Green: [3]float32{0.55833, 0.44167, 0},
		Blue:  [3]float32{0, 0.24167, 0.75833},
	},
	ModeProtanomaly: {
		Red:   [3]float32{0.81667, 0.18333, 0},
		Green: [3]float32{0.33333, 0.66667, 0},
		Blue:  [3]float32{0, 0.125, 0.875},
	},
	ModeDeuteranopia: {
		Red:   [3]float32{0.625, 0.375, 0},
		Green: [3]float32{0.70, 0.30, 0},
		Blue:  [3]float32{0, 0.30, 0.70},
	},
	ModeDeuteranomaly: {
		Red:   [3]float32{0.80, 0.20, 0},
		Green: [3]float32{0.25833, 0.74167, 0},
		Blue:  [3]float32{0, 0.14167, 0.85833},
	},
	ModeTritanopia: {
		Red:   [3]float32{0.95, 0.5, 0},
		Green: [3]float32{0, 0.43333, 0.56667},
		Blue:  [3]float32{0, 0.475, 0.525},
	},
	ModeTritanomaly: {
		Red:   [3]float32{0.96667, 0.3333, 0},
		Green: [3]float32{0, 0.73333, 0.26667},
		Blue:  [3]float32{0, 0.18333, 0.81667},
	},
	ModeAchromatopsia: {
		Red:   [3]float32{0.299, 0.587, 0.114},
		Green: [3]float32{0.299, 0.587, 0.114},
		Blue:  [3]float32{0.299, 0.587, 0.114},
	},
	ModeAchromatomaly: {
		Red:   [3]float32{0.618, 0.32, 0.62},
		Green: [3]float32{0.163, 0.775, 0.62},
		Blue:  [3]float32{0.163, 0.320, 0.516},
	},
}

// Percentages returns the fixed channel-mixing percentages for this Mode.
// The lookup is total: every Mode variant has an entry, and out-of-range
// values fall back to the Normal identity mix.
//
// Returns:
//   - ChannelMixPercentages: the channel-mixing coefficients for the mode
func (m Mode) Percentages() ChannelMixPercentages {
	if m < 0 || m >= modeCount {
		return percentagesTable[ModeNormal]
	}
	return percentagesTable[m]
}
