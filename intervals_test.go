package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseIntervalSpec(t *testing.T) {
	spec, err := parseIntervalSpec(`0:100:10:out\{i%02}\[####].png`)
	if err != nil {
		t.Fatalf("parseIntervalSpec: %v", err)
	}
	want := intervalSpec{First: 0, Final: 100, Step: 10, Template: `out\{i%02}\[####].png`}
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Errorf("spec mismatch (-want +got):\n%s", diff)
	}
}

func TestParseIntervalSpecTemplateWithDriveLetter(t *testing.T) {
	spec, err := parseIntervalSpec(`0:100:10:C:\out\{i%02}\[####].png`)
	if err != nil {
		t.Fatalf("parseIntervalSpec: %v", err)
	}
	if spec.Template != `C:\out\{i%02}\[####].png` {
		t.Errorf("template lost its drive letter: %q", spec.Template)
	}
}

func TestParseIntervalSpecErrors(t *testing.T) {
	tests := []struct {
		raw       string
		wantField string
	}{
		{"0:100:10", "add-intervals"},
		{"", "add-intervals"},
		{`a:100:10:out{i%02}#`, "first"},
		{`0:b:10:out{i%02}#`, "final"},
		{`0:100:c:out{i%02}#`, "step"},
		{`0:100:1.5:out{i%02}#`, "step"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := parseIntervalSpec(tt.raw)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("want ParseError, got %v", err)
			}
			if parseErr.Field != tt.wantField {
				t.Errorf("want failure on %q, got %q (%v)", tt.wantField, parseErr.Field, err)
			}
		})
	}
}

// The documented sample: 0:100:10 yields exactly nine intervals
// (0,10,20) ... (80,90,100) writing to out\01 ... out\09.
func TestGenerateIntervalsScenario(t *testing.T) {
	spec := intervalSpec{First: 0, Final: 100, Step: 10, Template: `out\{i%02}\[####].png`}
	got, err := generateIntervals(spec)
	if err != nil {
		t.Fatalf("generateIntervals: %v", err)
	}

	var want []Interval
	for i := 1; i <= 9; i++ {
		start := (i - 1) * 10
		want = append(want, Interval{
			StartFrame:   int32(start),
			KeyFrame:     int32(start + 10),
			FinalFrame:   int32(start + 20),
			StartIsKeyed: i > 1,
			FinalIsKeyed: i < 9,
			OutputPath:   fmt.Sprintf(`out\%02d\[####].png`, i),
		})
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("intervals mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateIntervalsCount(t *testing.T) {
	tests := []struct {
		first, final, step int
		wantCount          int
	}{
		{0, 100, 10, 9},
		{0, 30, 10, 2},
		{0, 20, 10, 1},
		{0, 105, 10, 9},
		{5, 50, 5, 8},
		{10, 100, 30, 2},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d:%d:%d", tt.first, tt.final, tt.step), func(t *testing.T) {
			spec := intervalSpec{First: tt.first, Final: tt.final, Step: tt.step, Template: `o{i%02}#`}
			got, err := generateIntervals(spec)
			if err != nil {
				t.Fatalf("generateIntervals: %v", err)
			}
			want := (tt.final-tt.first)/tt.step - 1
			if want != tt.wantCount {
				t.Fatalf("test table is wrong: formula gives %d, table says %d", want, tt.wantCount)
			}
			if len(got) != tt.wantCount {
				t.Errorf("want %d intervals, got %d", tt.wantCount, len(got))
			}
		})
	}
}

func TestGenerateIntervalsTemplateErrors(t *testing.T) {
	templates := []string{
		`out\[####].png`,   // no ordinal token
		`out{i%02}`,        // no frame placeholder
		`out{i%02}{i%02}#`, // two ordinal tokens
	}

	for _, template := range templates {
		t.Run(template, func(t *testing.T) {
			spec := intervalSpec{First: 0, Final: 100, Step: 10, Template: template}
			_, err := generateIntervals(spec)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("want ParseError, got %v", err)
			}
			if parseErr.Field != "template" {
				t.Errorf("want failure on template, got %q (%v)", parseErr.Field, err)
			}
		})
	}
}

// A range that fits only one window must fail on the range, not on whatever
// else is wrong with the spec: a bare template like "x" is still a RangeError.
func TestShortRangeBeatsTemplateValidation(t *testing.T) {
	err := appendIntervals(defaultProject(), []string{`0:15:10:x`})
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("want RangeError, got %v", err)
	}
}

func TestGenerateIntervalsRangeErrors(t *testing.T) {
	tests := []struct {
		name               string
		first, final, step int
	}{
		{"single window", 0, 15, 10},
		{"exact single window", 0, 10, 10},
		{"final equals first", 10, 10, 1},
		{"final before first", 10, 5, 1},
		{"zero step", 0, 100, 0},
		{"negative step", 0, 100, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := intervalSpec{First: tt.first, Final: tt.final, Step: tt.step, Template: `o{i%02}#`}
			_, err := generateIntervals(spec)
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("want RangeError, got %v", err)
			}
		})
	}
}

func TestGenerateIntervalsOverlap(t *testing.T) {
	spec := intervalSpec{First: 3, Final: 108, Step: 7, Template: `o{i%02}#`}
	got, err := generateIntervals(spec)
	if err != nil {
		t.Fatalf("generateIntervals: %v", err)
	}
	for k := 0; k+1 < len(got); k++ {
		if got[k].KeyFrame != got[k+1].StartFrame {
			t.Errorf("interval %d key %d != interval %d start %d",
				k, got[k].KeyFrame, k+1, got[k+1].StartFrame)
		}
	}
	for k, iv := range got {
		if iv.FinalFrame-iv.StartFrame != int32(2*spec.Step) {
			t.Errorf("interval %d spans %d frames, want %d", k, iv.FinalFrame-iv.StartFrame, 2*spec.Step)
		}
	}
}

// When step does not divide (final-first), the remainder frames are dropped
// and the last interval's final frame stays keyed because the sequence never
// reaches the global final.
func TestGenerateIntervalsRemainderDropped(t *testing.T) {
	spec := intervalSpec{First: 0, Final: 105, Step: 10, Template: `o{i%02}#`}
	got, err := generateIntervals(spec)
	if err != nil {
		t.Fatalf("generateIntervals: %v", err)
	}
	if len(got) != 9 {
		t.Fatalf("want 9 intervals, got %d", len(got))
	}
	last := got[len(got)-1]
	if last.FinalFrame != 100 {
		t.Errorf("want last interval to end at 100, got %d", last.FinalFrame)
	}
	if !last.FinalIsKeyed {
		t.Errorf("last interval short of the global final must keep its final keyed")
	}
}

func TestGenerateIntervalsBoundaryKeying(t *testing.T) {
	spec := intervalSpec{First: 0, Final: 100, Step: 10, Template: `o{i%02}#`}
	got, err := generateIntervals(spec)
	if err != nil {
		t.Fatalf("generateIntervals: %v", err)
	}
	for k, iv := range got {
		wantStart := iv.StartFrame != int32(spec.First)
		if iv.StartIsKeyed != wantStart {
			t.Errorf("interval %d: StartIsKeyed = %v, want %v", k, iv.StartIsKeyed, wantStart)
		}
		wantFinal := !(k == len(got)-1 && iv.FinalFrame == int32(spec.Final))
		if iv.FinalIsKeyed != wantFinal {
			t.Errorf("interval %d: FinalIsKeyed = %v, want %v", k, iv.FinalIsKeyed, wantFinal)
		}
	}
}

func TestSubstituteOrdinal(t *testing.T) {
	tests := []struct {
		template string
		ordinal  int
		want     string
	}{
		{`out\{i%02}\[####].png`, 1, `out\01\[####].png`},
		{`out\{i%02}\[####].png`, 12, `out\12\[####].png`},
		{`out\{i%03}\[####].png`, 7, `out\007\[####].png`},
		{`{i%1}#`, 4, `4#`},
		{`seq{i%04}_[##].png`, 123, `seq0123_[##].png`},
	}

	for _, tt := range tests {
		if got := substituteOrdinal(tt.template, tt.ordinal); got != tt.want {
			t.Errorf("substituteOrdinal(%q, %d) = %q, want %q", tt.template, tt.ordinal, got, tt.want)
		}
	}
}
