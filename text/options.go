package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	parserName string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

type faceConfig struct {
	kerning bool
}

func defaultFaceConfig() faceConfig {
	return faceConfig{
		kerning: true,
	}
}

// WithKerning enables or disables pair kerning in Face.Advance and Face.Bounds.
func WithKerning(enabled bool) FaceOption {
	return func(c *faceConfig) {
		c.kerning = enabled
	}
}

// MeasurerOption configures a Measurer.
type MeasurerOption func(*measurerConfig)

type measurerConfig struct {
	shaper         Shaper
	faceCacheLimit int
	faceOptions    []FaceOption
}

func defaultMeasurerConfig() measurerConfig {
	return measurerConfig{
		shaper:         BuiltinShaper{},
		faceCacheLimit: 64,
	}
}

// WithShaper sets the Shaper that computes string advances.
// The default is BuiltinShaper. Passing nil keeps the default.
func WithShaper(s Shaper) MeasurerOption {
	return func(c *measurerConfig) {
		if s != nil {
			c.shaper = s
		}
	}
}

// WithFaceCacheLimit sets the soft limit of cached faces.
// A value of 0 means unlimited.
func WithFaceCacheLimit(n int) MeasurerOption {
	return func(c *measurerConfig) {
		c.faceCacheLimit = n
	}
}

// WithFaceOptions sets options applied to every face the Measurer creates.
func WithFaceOptions(opts ...FaceOption) MeasurerOption {
	return func(c *measurerConfig) {
		c.faceOptions = append(c.faceOptions, opts...)
	}
}
