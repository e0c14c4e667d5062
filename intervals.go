package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Ordinal token like {i%02}: the interval's 1-based index, zero-padded to
// the given width.
var ordinalTokenRegexp = regexp.MustCompile(`\{i%(\d+)\}`)

// intervalSpec is the parsed form of a FIRST:FINAL:STEP:TEMPLATE argument.
type intervalSpec struct {
	First    int
	Final    int
	Step     int
	Template string
}

func parseSpecInt(value, field string) (int, error) {
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, &ParseError{Field: field, Reason: fmt.Sprintf("not a frame number: %q", value)}
	}
	return int(n), nil
}

// parseIntervalSpec splits an --add-intervals argument into its four fields.
// The template may itself contain colons (drive letters), so only the first
// three separators split. Template tokens are validated by generateIntervals,
// after the range itself has been checked.
func parseIntervalSpec(raw string) (intervalSpec, error) {
	parts := strings.SplitN(raw, ":", 4)
	if len(parts) != 4 {
		return intervalSpec{}, &ParseError{Field: "add-intervals", Reason: fmt.Sprintf("want FIRST:FINAL:STEP:TEMPLATE, got %q", raw)}
	}

	first, err := parseSpecInt(parts[0], "first")
	if err != nil {
		return intervalSpec{}, err
	}
	final, err := parseSpecInt(parts[1], "final")
	if err != nil {
		return intervalSpec{}, err
	}
	step, err := parseSpecInt(parts[2], "step")
	if err != nil {
		return intervalSpec{}, err
	}

	return intervalSpec{First: first, Final: final, Step: step, Template: parts[3]}, nil
}

func validateTemplate(template string) error {
	if len(ordinalTokenRegexp.FindAllString(template, -1)) != 1 {
		return &ParseError{Field: "template", Reason: fmt.Sprintf("want exactly one ordinal token like {i%%02} in %q", template)}
	}
	if !strings.Contains(template, "#") {
		return &ParseError{Field: "template", Reason: fmt.Sprintf("missing frame-number placeholder (a run of #) in %q", template)}
	}
	return nil
}

func substituteOrdinal(template string, ordinal int) string {
	return ordinalTokenRegexp.ReplaceAllStringFunc(template, func(token string) string {
		width, _ := strconv.Atoi(ordinalTokenRegexp.FindStringSubmatch(token)[1])
		return fmt.Sprintf("%0*d", width, ordinal)
	})
}

// generateIntervals expands a spec into overlapping intervals. The range is
// partitioned into windows of Step frames and adjacent window pairs become
// one interval, so every interval shares its key segment with the next one.
//
// When Step does not divide (Final-First) the trailing remainder is dropped:
// the sequence then never reaches the global final frame and the last
// interval's final stays keyed.
func generateIntervals(spec intervalSpec) ([]Interval, error) {
	quoted := fmt.Sprintf("%d:%d:%d:%s", spec.First, spec.Final, spec.Step, spec.Template)
	if spec.Step <= 0 {
		return nil, &RangeError{Spec: quoted, Reason: "step must be positive"}
	}
	if spec.Final <= spec.First {
		return nil, &RangeError{Spec: quoted, Reason: "final frame must be greater than first frame"}
	}

	count := (spec.Final-spec.First)/spec.Step - 1
	if count < 1 {
		return nil, &RangeError{Spec: quoted, Reason: fmt.Sprintf("range of %d frames fits no overlapping pair of %d-frame windows", spec.Final-spec.First, spec.Step)}
	}
	if err := validateTemplate(spec.Template); err != nil {
		return nil, err
	}

	intervals := make([]Interval, 0, count)
	for i := 0; i < count; i++ {
		start := spec.First + i*spec.Step
		final := start + 2*spec.Step
		intervals = append(intervals, Interval{
			StartFrame: int32(start),
			KeyFrame:   int32(start + spec.Step),
			FinalFrame: int32(final),
			// Sequence boundaries are unconstrained ends, not keys.
			StartIsKeyed: i > 0,
			FinalIsKeyed: !(i == count-1 && final == spec.Final),
			OutputPath:   substituteOrdinal(spec.Template, i+1),
		})
	}
	return intervals, nil
}
