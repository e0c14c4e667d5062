package main

// Args is the CLI surface. Scalar overrides are pointers: nil means the flag
// was absent, so a user-supplied zero never collides with a default.
type Args struct {
	Input        string   `arg:"-i,--input" placeholder:"PATH" help:"Path to the input EBS file; the default project is used when omitted."`
	Output       string   `arg:"-o,--output" placeholder:"PATH" help:"Path to the output EBS file; the project is printed when omitted."`
	AddIntervals []string `arg:"-a,--add-intervals,separate" placeholder:"FIRST:FINAL:STEP:TEMPLATE" help:"Append overlapping intervals generated from the spec; repeatable."`
	FPS          *float64 `arg:"--fps" help:"Frames per second."`
	KeysPath     *string  `arg:"--keys-path" placeholder:"TEMPLATE" help:"Path template of the key images."`
	VideoPath    *string  `arg:"--video-path" placeholder:"TEMPLATE" help:"Path template of the video images."`
	MaskPath     *string  `arg:"--mask-path" placeholder:"TEMPLATE" help:"Path template of the mask images."`
	KeysWeight   *float64 `arg:"--keys-weight" help:"Weight of the key images."`
	VideoWeight  *float64 `arg:"--video-weight" help:"Weight of the video images."`
	MaskWeight   *float64 `arg:"--mask-weight" help:"Weight of the mask images."`
	UseMask      bool     `arg:"--use-mask" help:"Enable the mask images."`
	NoUseMask    bool     `arg:"--no-use-mask" help:"Disable the mask images."`
	Mapping      *float64 `arg:"--mapping" help:"Encourages strokes to stay at the same location."`
	DeFlicker    *float64 `arg:"--de-flicker" help:"Suppresses texture flickering between frames."`
	Diversity    *float64 `arg:"--diversity" help:"Controls the visual richness of the style."`
	Detail       *int     `arg:"--detail" help:"Synthesis detail level, 1 to 4."`
	UseGPU       bool     `arg:"--use-gpu" help:"Synthesize on the GPU."`
	NoUseGPU     bool     `arg:"--no-use-gpu" help:"Synthesize on the CPU."`
	Check        bool     `arg:"--check" help:"Verify that the key images referenced by the intervals exist and share dimensions."`
	YAML         bool     `arg:"--yaml" help:"Print the project as YAML instead of the report table."`
	Verbose      bool     `arg:"-v,--verbose" help:"Enable debug logging."`
}

// Settings come from EBSEDIT_* environment variables.
type Settings struct {
	LogLevel string `default:"info" split_words:"true"`
}
