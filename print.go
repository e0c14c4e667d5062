package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type reportField struct {
	name  string
	value string
}

type reportCategory struct {
	name   string
	fields []reportField
}

// formatFloat keeps a trailing .0 on integral values so the report shows the
// same numbers the synthesis tool documents (30.0, 3500.0, ...).
func formatFloat(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func keyedSymbol(v bool) string {
	if v {
		return "Y"
	}
	return "N"
}

// printProject writes the human-readable report table.
func printProject(w io.Writer, p *Project) {
	detail := fmt.Sprintf("%d (%s)", p.SynthesisDetail, synthesisDetailName(p.SynthesisDetail))
	categories := []reportCategory{
		{"Project", []reportField{
			{"EbSynth version", p.ProgramVersion},
			{"Frames per second", formatFloat(p.FramesPerSecond)},
		}},
		{"Images", []reportField{
			{"Key images", p.KeysPath},
			{"Video images", p.VideoPath},
			{"Mask images", p.MaskPath},
		}},
		{"Weights", []reportField{
			{"Key images weight", formatFloat(p.KeysWeight)},
			{"Video images weight", formatFloat(p.VideoWeight)},
			{"Mask images weight", formatFloat(p.MaskWeight)},
			{"Mask images enabled", strconv.FormatBool(p.UseMask)},
		}},
		{"Advanced", []reportField{
			{"Mapping", formatFloat(p.Mapping)},
			{"De-flicker", formatFloat(p.DeFlicker)},
			{"Diversity", formatFloat(p.Diversity)},
		}},
		{"Performance", []reportField{
			{"Synthesis detail", detail},
			{"Use GPU", strconv.FormatBool(p.UseGPU)},
		}},
	}

	for _, c := range categories {
		fmt.Fprintln(w, c.name)
		fmt.Fprintln(w, strings.Repeat("-", len(c.name)))

		padding := 0
		for _, f := range c.fields {
			if len(f.name) > padding {
				padding = len(f.name)
			}
		}
		for _, f := range c.fields {
			fmt.Fprintf(w, "%-*s %s\n", padding+1, f.name+":", f.value)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Intervals")
	fmt.Fprintln(w, "---------")
	fmt.Fprintln(w, "Start ? Keyfm Final ? Output")
	for _, iv := range p.Intervals {
		fmt.Fprintf(w, "%5d %s %5d %5d %s %s\n",
			iv.StartFrame, keyedSymbol(iv.StartIsKeyed), iv.KeyFrame,
			iv.FinalFrame, keyedSymbol(iv.FinalIsKeyed), iv.OutputPath)
	}
}

func printProjectYAML(w io.Writer, p *Project) error {
	out, err := yaml.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "marshal project")
	}
	_, err = w.Write(out)
	return errors.Wrap(err, "write report")
}
