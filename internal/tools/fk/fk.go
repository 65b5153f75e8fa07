// SPDX-License-Identifier: MIT

// Package fk implements the forward-kinematics command: load a DH table,
// chain the joint transforms and print the resulting pose.
package fk

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/kinematics/internal/robot"
	"github.com/katalvlaran/kinematics/kinematics"
)

// Config holds configuration for a forward-kinematics run.
// Environment variables provide defaults; flags override them.
type Config struct {
	RobotFile string `env:"FK_ROBOT_FILE"`
	Frames    bool   `env:"FK_FRAMES"`
}

// ParseConfig loads env defaults, then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.StringVar(&cfg.RobotFile, "robot", cfg.RobotFile, "path to the YAML robot description (env FK_ROBOT_FILE)")
	fs.BoolVar(&cfg.Frames, "frames", cfg.Frames, "print every intermediate joint frame (env FK_FRAMES)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run loads the robot and writes its end-effector pose to out.
func Run(cfg Config, out io.Writer) error {
	if cfg.RobotFile == "" {
		return errors.New("robot file is required")
	}
	if out == nil {
		return errors.New("output is required")
	}

	rb, err := robot.LoadFile(cfg.RobotFile)
	if err != nil {
		return err
	}
	params := rb.Params()

	if _, err := fmt.Fprintf(out, "robot: %s (%d joints)\r\n", rb.Name, len(params)); err != nil {
		return err
	}
	if cfg.Frames {
		for i, f := range kinematics.DHFrames(params) {
			if _, err := fmt.Fprintf(out, "frame %d:\r\n%s", i+1, f); err != nil {
				return err
			}
		}
	}

	t := kinematics.DHTransform(params)
	p, err := kinematics.Position(t)
	if err != nil {
		return fmt.Errorf("end-effector position: %w", err)
	}
	_, err = fmt.Fprintf(out, "end-effector:\r\n%sposition: %6.3f %6.3f %6.3f\r\n", t, p[0], p[1], p[2])

	return err
}
