package main

import (
	"os"

	"github.com/alexflint/go-arg"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func parseArgs() (*Args, error) {
	var args Args
	arg.MustParse(&args)
	if args.UseMask && args.NoUseMask {
		return nil, errors.New("--use-mask and --no-use-mask are mutually exclusive")
	}
	if args.UseGPU && args.NoUseGPU {
		return nil, errors.New("--use-gpu and --no-use-gpu are mutually exclusive")
	}
	if args.Detail != nil && (*args.Detail < 1 || *args.Detail > 4) {
		return nil, &ParseError{Field: "detail", Reason: "level must be 1, 2, 3 or 4"}
	}
	return &args, nil
}

func loadProject(path string) (*Project, error) {
	if path == "" {
		log.Debug("no input file, starting from the default project")
		return defaultProject(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read project")
	}
	p, err := decodeProject(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	log.Debugf("loaded %s: %d intervals", path, len(p.Intervals))
	return p, nil
}

// applyOverrides merges the flags that were actually present onto the
// project, leaving every other field untouched.
func applyOverrides(p *Project, args *Args) {
	if args.FPS != nil {
		p.FramesPerSecond = float32(*args.FPS)
	}
	if args.KeysPath != nil {
		p.KeysPath = *args.KeysPath
	}
	if args.VideoPath != nil {
		p.VideoPath = *args.VideoPath
	}
	if args.MaskPath != nil {
		p.MaskPath = *args.MaskPath
	}
	if args.KeysWeight != nil {
		p.KeysWeight = float32(*args.KeysWeight)
	}
	if args.VideoWeight != nil {
		p.VideoWeight = float32(*args.VideoWeight)
	}
	if args.MaskWeight != nil {
		p.MaskWeight = float32(*args.MaskWeight)
	}
	if args.UseMask {
		p.UseMask = true
	}
	if args.NoUseMask {
		p.UseMask = false
	}
	if args.Mapping != nil {
		p.Mapping = float32(*args.Mapping)
	}
	if args.DeFlicker != nil {
		p.DeFlicker = float32(*args.DeFlicker)
	}
	if args.Diversity != nil {
		p.Diversity = float32(*args.Diversity)
	}
	if args.Detail != nil {
		p.SynthesisDetail = int32(*args.Detail)
	}
	if args.UseGPU {
		p.UseGPU = true
	}
	if args.NoUseGPU {
		p.UseGPU = false
	}
}

func appendIntervals(p *Project, rawSpecs []string) error {
	for _, raw := range rawSpecs {
		spec, err := parseIntervalSpec(raw)
		if err != nil {
			return err
		}
		intervals, err := generateIntervals(spec)
		if err != nil {
			return err
		}
		log.Debugf("spec %q: %d intervals", raw, len(intervals))
		p.Intervals = append(p.Intervals, intervals...)
	}
	return nil
}

func saveProject(path string, p *Project) error {
	data, err := encodeProject(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "write project")
	}
	log.Debugf("wrote %d bytes to %s", len(data), path)
	return nil
}

func run(args *Args) error {
	p, err := loadProject(args.Input)
	if err != nil {
		return err
	}
	applyOverrides(p, args)
	if err := appendIntervals(p, args.AddIntervals); err != nil {
		return err
	}
	if args.Check {
		if err := checkKeyImages(p); err != nil {
			return err
		}
	}
	if args.Output != "" {
		return saveProject(args.Output, p)
	}
	if args.YAML {
		return printProjectYAML(os.Stdout, p)
	}
	printProject(os.Stdout, p)
	return nil
}

func main() {
	var settings Settings
	if err := envconfig.Process("ebsedit", &settings); err != nil {
		log.Fatal(err)
	}
	level, err := log.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatalf("bad EBSEDIT_LOG_LEVEL: %v", err)
	}
	log.SetLevel(level)

	args, err := parseArgs()
	if err != nil {
		log.Fatal(err)
	}
	if args.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if err := run(args); err != nil {
		log.Fatal(err)
	}
}
