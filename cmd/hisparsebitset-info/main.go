// Command hisparsebitset-info reports the memory-relevant facts about a
// Config: its MAX_CAPACITY, each level's width, and the byte size of its
// Level1 and Data blocks.
//
// Adapted from oriumgames-bevi's cmd/gen (a flag-based CLI over an
// Options struct); this tool has no codegen to do, so Options just
// selects a preset or explicit widths to report on.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arbory/hisparsebitset"
)

// Options holds command-line settings for the info tool.
type Options struct {
	Preset      string
	Level0Width int
	Level1Width int
	DataWidth   int
}

func parseFlags() Options {
	var opt Options
	flag.StringVar(&opt.Preset, "preset", "", "preset config name: 64, 128, 256, 512 or dense (overrides -level0/-level1/-data)")
	flag.IntVar(&opt.Level0Width, "level0", 256, "level0 (root) block width in bits")
	flag.IntVar(&opt.Level1Width, "level1", 256, "level1 block width in bits")
	flag.IntVar(&opt.DataWidth, "data", 256, "data block width in bits")
	flag.Parse()
	return opt
}

func resolveConfig(opt Options) (hisparsebitset.Config, error) {
	switch opt.Preset {
	case "":
		return hisparsebitset.NewConfig(opt.Level0Width, opt.Level1Width, opt.DataWidth)
	case "64":
		return hisparsebitset.Config64, nil
	case "128":
		return hisparsebitset.Config128, nil
	case "256":
		return hisparsebitset.Config256, nil
	case "512":
		return hisparsebitset.Config512, nil
	case "dense":
		return hisparsebitset.ConfigDense, nil
	default:
		return hisparsebitset.Config{}, fmt.Errorf("unknown preset %q (want 64, 128, 256, 512 or dense)", opt.Preset)
	}
}

func run(opt Options) error {
	cfg, err := resolveConfig(opt)
	if err != nil {
		return err
	}

	level1BlockBytes := cfg.Level1Width/8 + cfg.Level1Width*4 // mask + uint32 indices
	dataBlockBytes := cfg.DataWidth / 8

	fmt.Printf("level0 width:   %d bits\n", cfg.Level0Width)
	fmt.Printf("level1 width:   %d bits (%d bytes/block)\n", cfg.Level1Width, level1BlockBytes)
	fmt.Printf("data width:     %d bits (%d bytes/block)\n", cfg.DataWidth, dataBlockBytes)
	fmt.Printf("max capacity:   %d\n", cfg.MaxCapacity())
	return nil
}

func main() {
	opt := parseFlags()
	if err := run(opt); err != nil {
		fmt.Fprintf(os.Stderr, "hisparsebitset-info: %v\n", err)
		os.Exit(2)
	}
}
