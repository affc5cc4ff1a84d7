// Package script loads touch replay scripts. A script is a YAML document
// listing touch samples in the order they are fed to the GUI:
//
//	name: drag title
//	steps:
//	  - touch: [[15, 12]]
//	  - touch: [[40, 12]]
//	  - release: true
//
// A step with no touch points is a release.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/agiangrant/tinygui/retained"
)

var (
	// ErrTooManyPoints is returned for a step with more touch points than
	// the router tracks.
	ErrTooManyPoints = errors.New("too many touch points")

	// ErrBadPoint is returned for a point that is not an [x, y] pair.
	ErrBadPoint = errors.New("touch point must be [x, y]")
)

// Script is a parsed replay script.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one touch sample. Repeat feeds the same sample several times.
type Step struct {
	Touch   [][]int `yaml:"touch,omitempty"`
	Release bool    `yaml:"release,omitempty"`
	Repeat  int     `yaml:"repeat,omitempty"`
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script and validates every step.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, step := range s.Steps {
		if _, err := step.Sample(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// Sample converts the step to a touch sample.
func (st Step) Sample() (retained.TouchSample, error) {
	var s retained.TouchSample
	if st.Release {
		return s, nil
	}
	if len(st.Touch) > retained.MaxTouchPoints {
		return s, fmt.Errorf("%w: %d > %d", ErrTooManyPoints, len(st.Touch), retained.MaxTouchPoints)
	}
	for i, p := range st.Touch {
		if len(p) != 2 {
			return s, fmt.Errorf("%w: got %v", ErrBadPoint, p)
		}
		s.X[i], s.Y[i] = p[0], p[1]
	}
	s.Count = len(st.Touch)
	return s, nil
}

// Samples expands the script into the sample sequence, honoring Repeat.
func (s *Script) Samples() []retained.TouchSample {
	out := make([]retained.TouchSample, 0, len(s.Steps))
	for _, st := range s.Steps {
		sample, err := st.Sample()
		if err != nil {
			continue
		}
		n := max(st.Repeat, 1)
		for range n {
			out = append(out, sample)
		}
	}
	return out
}

// Replay feeds every sample to g in order.
func (s *Script) Replay(g *retained.GUI) int {
	samples := s.Samples()
	for _, sample := range samples {
		g.Touch(sample)
	}
	return len(samples)
}
