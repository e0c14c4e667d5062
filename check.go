package main

import (
	"fmt"
	"image"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Frame-number placeholder: a bracketed run of # characters, or a bare run
// when the template carries no brackets.
var framePlaceholderRegexp = regexp.MustCompile(`\[#+\]|#+`)

// expandFrameNumber substitutes the frame number for each placeholder run,
// zero-padded to the run's width. Brackets belong to the placeholder and are
// dropped, the way the synthesis tool expands them.
func expandFrameNumber(template string, frame int32) string {
	return framePlaceholderRegexp.ReplaceAllStringFunc(template, func(run string) string {
		return fmt.Sprintf("%0*d", strings.Count(run, "#"), frame)
	})
}

// keyImagePath expands the keys template for one frame and normalizes the
// Windows-style separators project files carry.
func keyImagePath(template string, frame int32) string {
	expanded := expandFrameNumber(template, frame)
	return filepath.FromSlash(strings.ReplaceAll(expanded, `\`, "/"))
}

// checkKeyImages verifies that every key image referenced by the project's
// intervals exists, decodes, and shares dimensions with the others. It reads
// images only; nothing is written.
func checkKeyImages(p *Project) error {
	if len(p.Intervals) == 0 {
		return nil
	}
	if !strings.Contains(p.KeysPath, "#") {
		return &ValidationError{Field: "keys path", Reason: "missing frame-number placeholder (a run of #)"}
	}

	var bounds image.Rectangle
	haveBounds := false
	seen := make(map[string]bool, len(p.Intervals))
	for _, iv := range p.Intervals {
		path := keyImagePath(p.KeysPath, iv.KeyFrame)
		if seen[path] {
			continue
		}
		seen[path] = true

		img, err := imaging.Open(path)
		if err != nil {
			return errors.Wrapf(err, "key image for frame %d", iv.KeyFrame)
		}
		b := img.Bounds()
		if !haveBounds {
			bounds = b
			haveBounds = true
			continue
		}
		if b.Dx() != bounds.Dx() || b.Dy() != bounds.Dy() {
			return &ValidationError{
				Field:  "key images",
				Reason: fmt.Sprintf("%s is %dx%d, others are %dx%d", path, b.Dx(), b.Dy(), bounds.Dx(), bounds.Dy()),
			}
		}
	}
	return nil
}
