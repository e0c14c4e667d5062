package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Smallest possible interval record: key frame, two flags, two frame
// numbers and an empty path with its length prefix.
const minIntervalSize = 4 + 1 + 1 + 4 + 4 + 4

// ebsReader decodes the little-endian project file layout. The first failure
// sticks; later reads become no-ops so callers can check err once at the end.
type ebsReader struct {
	buf []byte
	off int
	err error
}

func (r *ebsReader) fail(field, reason string) {
	if r.err == nil {
		r.err = &FormatError{Field: field, Reason: reason}
	}
}

func (r *ebsReader) remaining() int {
	return len(r.buf) - r.off
}

func (r *ebsReader) take(n int, field string) []byte {
	if r.err != nil {
		return nil
	}
	if n > r.remaining() {
		r.fail(field, "file truncated")
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

// readBool accepts only 0 and 1. Anything else could not have been written
// by this format, and re-encoding it would silently change the byte.
func (r *ebsReader) readBool(field string) bool {
	b := r.take(1, field)
	if b == nil {
		return false
	}
	if b[0] > 1 {
		r.fail(field, fmt.Sprintf("boolean byte 0x%02x", b[0]))
		return false
	}
	return b[0] == 1
}

func (r *ebsReader) readInt(field string) int32 {
	b := r.take(4, field)
	if b == nil {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

func (r *ebsReader) readFloat(field string) float32 {
	b := r.take(4, field)
	if b == nil {
		return 0
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// readConstantString consumes a NUL-terminated tag and requires it to match
// the reference exactly.
func (r *ebsReader) readConstantString(reference, field string) string {
	b := r.take(len(reference)+1, field)
	if b == nil {
		return ""
	}
	if string(b[:len(reference)]) != reference || b[len(reference)] != 0 {
		r.fail(field, fmt.Sprintf("unrecognized tag, want %q", reference))
		return ""
	}
	return reference
}

func (r *ebsReader) readVariableString(field string) string {
	length := r.readInt(field)
	if r.err != nil {
		return ""
	}
	if length < 0 {
		r.fail(field, "negative string length")
		return ""
	}
	if int(length) > r.remaining() {
		r.fail(field, "declared string length exceeds remaining bytes")
		return ""
	}
	return string(r.take(int(length), field))
}

func (r *ebsReader) readInterval() Interval {
	var iv Interval
	iv.KeyFrame = r.readInt("interval key frame")
	iv.StartIsKeyed = r.readBool("interval start flag")
	iv.FinalIsKeyed = r.readBool("interval final flag")
	iv.StartFrame = r.readInt("interval start frame")
	iv.FinalFrame = r.readInt("interval final frame")
	iv.OutputPath = r.readVariableString("interval output path")
	return iv
}

// decodeProject parses a complete project file. It never retains data, and
// any structural problem surfaces as a FormatError naming the field where
// decoding stopped.
func decodeProject(data []byte) (*Project, error) {
	r := &ebsReader{buf: data}
	p := &Project{}

	p.ProgramVersion = r.readConstantString(magicProgramVersion, "program version")
	p.VideoPath = r.readVariableString("video path")
	p.MaskPath = r.readVariableString("mask path")
	p.KeysPath = r.readVariableString("keys path")
	p.UseMask = r.readBool("use mask")
	p.KeysWeight = r.readFloat("keys weight")
	p.VideoWeight = r.readFloat("video weight")
	p.MaskWeight = r.readFloat("mask weight")
	p.Mapping = r.readFloat("mapping")
	p.DeFlicker = r.readFloat("de-flicker")
	p.Diversity = r.readFloat("diversity")

	count := r.readInt("interval count")
	if r.err == nil {
		if count < 0 || int64(count)*minIntervalSize > int64(r.remaining()) {
			r.fail("interval count", fmt.Sprintf("implausible count %d", count))
		} else if count > 0 {
			p.Intervals = make([]Interval, 0, count)
			for i := int32(0); i < count && r.err == nil; i++ {
				p.Intervals = append(p.Intervals, r.readInterval())
			}
		}
	}

	p.ProjectVersion = r.readConstantString(magicProjectVersion, "project version")
	p.SynthesisDetail = r.readInt("synthesis detail")
	p.UseGPU = r.readBool("use gpu")
	p.FramesPerSecond = r.readFloat("frames per second")
	p.MagicNumber = r.readInt("magic number")

	if r.err == nil && r.remaining() != 0 {
		r.fail("end of file", fmt.Sprintf("%d trailing bytes", r.remaining()))
	}
	if r.err != nil {
		return nil, r.err
	}
	return p, nil
}

// ebsWriter mirrors ebsReader: sticky first error, LE encoding.
type ebsWriter struct {
	buf bytes.Buffer
	err error
}

func (w *ebsWriter) writeBool(v bool) {
	if w.err != nil {
		return
	}
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

func (w *ebsWriter) writeInt(v int32) {
	if w.err != nil {
		return
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	w.buf.Write(b[:])
}

func (w *ebsWriter) writeFloat(v float32) {
	if w.err != nil {
		return
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	w.buf.Write(b[:])
}

func (w *ebsWriter) writeConstantString(s string) {
	if w.err != nil {
		return
	}
	w.buf.WriteString(s)
	w.buf.WriteByte(0)
}

func (w *ebsWriter) writeVariableString(s, field string) {
	if w.err != nil {
		return
	}
	if err := validatePathString(s, field); err != nil {
		w.err = err
		return
	}
	w.writeInt(int32(len(s)))
	w.buf.WriteString(s)
}

func (w *ebsWriter) writeInterval(iv Interval) {
	w.writeInt(iv.KeyFrame)
	w.writeBool(iv.StartIsKeyed)
	w.writeBool(iv.FinalIsKeyed)
	w.writeInt(iv.StartFrame)
	w.writeInt(iv.FinalFrame)
	w.writeVariableString(iv.OutputPath, "interval output path")
}

func validatePathString(s, field string) error {
	if len(s) > math.MaxInt32 {
		return &ValidationError{Field: field, Reason: "exceeds maximum representable length"}
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return &ValidationError{Field: field, Reason: "contains non-ASCII bytes"}
		}
	}
	return nil
}

// encodeProject serializes a project to the exact byte layout the synthesis
// tool reads. Encoding a decoded file reproduces its bytes.
func encodeProject(p *Project) ([]byte, error) {
	if p.SynthesisDetail < 1 || p.SynthesisDetail > 4 {
		return nil, &ValidationError{Field: "synthesis detail", Reason: fmt.Sprintf("level %d outside 1-4", p.SynthesisDetail)}
	}
	if p.ProgramVersion != magicProgramVersion {
		return nil, &ValidationError{Field: "program version", Reason: fmt.Sprintf("unsupported tag %q", p.ProgramVersion)}
	}
	if p.ProjectVersion != magicProjectVersion {
		return nil, &ValidationError{Field: "project version", Reason: fmt.Sprintf("unsupported tag %q", p.ProjectVersion)}
	}

	w := &ebsWriter{}
	w.writeConstantString(p.ProgramVersion)
	w.writeVariableString(p.VideoPath, "video path")
	w.writeVariableString(p.MaskPath, "mask path")
	w.writeVariableString(p.KeysPath, "keys path")
	w.writeBool(p.UseMask)
	w.writeFloat(p.KeysWeight)
	w.writeFloat(p.VideoWeight)
	w.writeFloat(p.MaskWeight)
	w.writeFloat(p.Mapping)
	w.writeFloat(p.DeFlicker)
	w.writeFloat(p.Diversity)

	w.writeInt(int32(len(p.Intervals)))
	for _, iv := range p.Intervals {
		w.writeInterval(iv)
	}

	w.writeConstantString(p.ProjectVersion)
	w.writeInt(p.SynthesisDetail)
	w.writeBool(p.UseGPU)
	w.writeFloat(p.FramesPerSecond)
	w.writeInt(p.MagicNumber)

	if w.err != nil {
		return nil, w.err
	}
	return w.buf.Bytes(), nil
}
