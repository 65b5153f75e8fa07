// Command fk prints the forward-kinematics pose of a serial arm described
// by a YAML Denavit-Hartenberg table.
//
//	fk -robot arm.yaml [-frames]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/kinematics/internal/tools/fk"
)

func main() {
	log.SetFlags(0)
	cfg, err := fk.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}
	if err := fk.Run(cfg, os.Stdout); err != nil {
		log.Fatalf("forward kinematics: %v", err)
	}
}
