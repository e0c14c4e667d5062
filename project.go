package main

// Supposedly, the version of the EbSynth build the file format was captured from.
const magicProgramVersion = "EBS05"

// Supposedly, the version of the project file structure itself.
const magicProjectVersion = "V02"

// Uninterpreted integer that terminates every project file.
const magicFinalInteger = 704

// Interval is one overlapping chunk of frames synthesized as a unit,
// anchored by a key frame.
type Interval struct {
	StartFrame   int32  `yaml:"start_frame"`
	KeyFrame     int32  `yaml:"key_frame"`
	FinalFrame   int32  `yaml:"final_frame"`
	StartIsKeyed bool   `yaml:"start_is_keyed"`
	FinalIsKeyed bool   `yaml:"final_is_keyed"`
	OutputPath   string `yaml:"output_path"`
}

// Project is the full EbSynth project configuration. Numeric wire fields are
// float32 because the file format stores IEEE-754 singles; keeping the same
// width makes re-encoding bit-exact.
type Project struct {
	ProgramVersion  string     `yaml:"program_version"`
	ProjectVersion  string     `yaml:"project_version"`
	FramesPerSecond float32    `yaml:"frames_per_second"`
	KeysPath        string     `yaml:"keys_path"`
	VideoPath       string     `yaml:"video_path"`
	MaskPath        string     `yaml:"mask_path"`
	UseMask         bool       `yaml:"use_mask"`
	KeysWeight      float32    `yaml:"keys_weight"`
	VideoWeight     float32    `yaml:"video_weight"`
	MaskWeight      float32    `yaml:"mask_weight"`
	Mapping         float32    `yaml:"mapping"`
	DeFlicker       float32    `yaml:"de_flicker"`
	Diversity       float32    `yaml:"diversity"`
	SynthesisDetail int32      `yaml:"synthesis_detail"`
	UseGPU          bool       `yaml:"use_gpu"`
	Intervals       []Interval `yaml:"intervals"`
	MagicNumber     int32      `yaml:"-"`
}

// defaultProject returns a fresh default project. Every call returns a new
// value so edits to one project never leak into another run.
func defaultProject() *Project {
	return &Project{
		ProgramVersion:  magicProgramVersion,
		ProjectVersion:  magicProjectVersion,
		FramesPerSecond: 30.0,
		KeysPath:        `keys\[#####].png`,
		VideoPath:       `video\[#####].png`,
		MaskPath:        `mask\[#####].png`,
		UseMask:         false,
		KeysWeight:      1.0,
		VideoWeight:     4.0,
		MaskWeight:      1.0,
		Mapping:         10.0,
		DeFlicker:       1.0,
		Diversity:       3500.0,
		SynthesisDetail: 2,
		UseGPU:          true,
		MagicNumber:     magicFinalInteger,
	}
}

func synthesisDetailName(level int32) string {
	switch level {
	case 1:
		return "High"
	case 2:
		return "Medium"
	case 3:
		return "Low"
	case 4:
		return "Garbage"
	default:
		return "Unknown"
	}
}
