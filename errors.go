package kinetic

import "errors"

// Configuration errors. Runtime operations never return errors; only
// constructors and config loading do.
var (
	ErrInvalidKeyframes = errors.New("invalid keyframe table")
	ErrInvalidSpring    = errors.New("invalid spring config")
	ErrInvalidOffset    = errors.New("invalid scroll offset")
	ErrInvalidTiming    = errors.New("invalid timing")
	ErrNoWords          = errors.New("typewriter needs at least one non-empty word")
	ErrUnknownPreset    = errors.New("unknown preset")
)
