// SPDX-License-Identifier: MIT

// Package robot loads a serial arm description (a Denavit-Hartenberg table)
// from YAML.
//
//	name: planar-2r
//	units: degrees   # or radians (default)
//	joints:
//	  - {theta: 30, d: 0, a: 1, alpha: 0}
//	  - {theta: 45, d: 0, a: 1, alpha: 0}
//
// Only angles (theta, alpha) are affected by units; d and a are lengths.
package robot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kinematics/kinematics"
)

// Angle units accepted in the units field.
const (
	UnitsRadians = "radians"
	UnitsDegrees = "degrees"
)

// ErrInvalidRobot indicates a description that parses but cannot be used.
var ErrInvalidRobot = errors.New("robot: invalid description")

// Joint is one DH row as written in the file.
type Joint struct {
	Theta float64 `yaml:"theta"`
	D     float64 `yaml:"d"`
	A     float64 `yaml:"a"`
	Alpha float64 `yaml:"alpha"`
}

// Robot is a named DH chain, base joint first.
type Robot struct {
	Name   string  `yaml:"name"`
	Units  string  `yaml:"units"`
	Joints []Joint `yaml:"joints"`
}

// Load decodes and validates a description. Unknown keys are rejected.
func Load(r io.Reader) (*Robot, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var rb Robot
	if err := dec.Decode(&rb); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidRobot)
		}
		return nil, fmt.Errorf("decode robot: %w", err)
	}
	if err := rb.Validate(); err != nil {
		return nil, err
	}

	return &rb, nil
}

// LoadFile reads path and calls Load.
func LoadFile(path string) (*Robot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read robot file: %w", err)
	}
	rb, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rb, nil
}

// Validate checks units and that the chain has at least one finite joint.
// An empty units field means radians.
func (rb *Robot) Validate() error {
	switch rb.Units {
	case "", UnitsRadians, UnitsDegrees:
	default:
		return fmt.Errorf("%w: unknown units %q", ErrInvalidRobot, rb.Units)
	}
	if len(rb.Joints) == 0 {
		return fmt.Errorf("%w: no joints", ErrInvalidRobot)
	}
	for i, j := range rb.Joints {
		for _, v := range []float64{j.Theta, j.D, j.A, j.Alpha} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: joint %d has a non-finite value", ErrInvalidRobot, i)
			}
		}
	}

	return nil
}

// Params converts the joints to kinematics parameters in radians.
func (rb *Robot) Params() []kinematics.DHParam {
	scale := 1.0
	if rb.Units == UnitsDegrees {
		scale = math.Pi / 180
	}
	params := make([]kinematics.DHParam, len(rb.Joints))
	for i, j := range rb.Joints {
		params[i] = kinematics.DHParam{
			Theta: j.Theta * scale,
			D:     j.D,
			A:     j.A,
			Alpha: j.Alpha * scale,
		}
	}

	return params
}
