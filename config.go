package hisparsebitset

import "github.com/pkg/errors"

// Config fixes the bit widths of the three hierarchy levels for a BitSet
// instantiation. Each width must be one of 64, 128, 256 or 512 - the
// scalar-to-SIMD-width family described by the original design (64-bit
// words, or 2/4/8-word blocks standing in for wide SIMD registers).
//
// Go has no array-length type parameters, so unlike a const-generic
// implementation the widths here are a runtime value rather than a set of
// distinct types. This is the "runtime-configured layout" alternative the
// design explicitly allows for languages that disfavor heavy generics; see
// DESIGN.md.
type Config struct {
	Level0Width int
	Level1Width int
	DataWidth   int
}

// Preset configurations, named after their original_source counterparts.
var (
	// Config64 gives MAX_CAPACITY = 64*64*64 = 262_144.
	Config64 = Config{Level0Width: 64, Level1Width: 64, DataWidth: 64}
	// Config128 gives MAX_CAPACITY = 128*128*128 = 2_097_152.
	Config128 = Config{Level0Width: 128, Level1Width: 128, DataWidth: 128}
	// Config256 gives MAX_CAPACITY = 256*256*256 = 16_777_216.
	Config256 = Config{Level0Width: 256, Level1Width: 256, DataWidth: 256}
	// Config512 gives MAX_CAPACITY = 512*512*512 = 134_217_728.
	Config512 = Config{Level0Width: 512, Level1Width: 512, DataWidth: 512}
	// ConfigDense trades memory for density: dense workloads rarely need
	// deep hierarchy fan-out, so a narrow Level0/Level1 pairs with a
	// relatively wide data block.
	ConfigDense = Config{Level0Width: 64, Level1Width: 64, DataWidth: 256}
)

func isValidWidth(w int) bool {
	switch w {
	case 64, 128, 256, 512:
		return true
	default:
		return false
	}
}

// NewConfig validates and constructs a Config from explicit widths.
func NewConfig(level0Width, level1Width, dataWidth int) (Config, error) {
	cfg := Config{Level0Width: level0Width, Level1Width: level1Width, DataWidth: dataWidth}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether every level width is one of the supported
// power-of-two-times-64 widths.
func (c Config) Validate() error {
	if !isValidWidth(c.Level0Width) {
		return errors.Errorf("hisparsebitset: invalid level0 width %d (want 64, 128, 256 or 512)", c.Level0Width)
	}
	if !isValidWidth(c.Level1Width) {
		return errors.Errorf("hisparsebitset: invalid level1 width %d (want 64, 128, 256 or 512)", c.Level1Width)
	}
	if !isValidWidth(c.DataWidth) {
		return errors.Errorf("hisparsebitset: invalid data width %d (want 64, 128, 256 or 512)", c.DataWidth)
	}
	return nil
}

// MaxCapacity returns MAX_CAPACITY = Level0Width * Level1Width * DataWidth,
// minus the slots permanently reserved as each pool's "empty" sentinel
// (slot 0 in the Level1 pool and slot 0 in the Data pool can never hold real
// membership, matching original_source/src/raw.rs's max_capacity, which
// subtracts one Level1 block's worth of data-index space and one data
// block's worth of bits for the same reason).
func (c Config) MaxCapacity() int {
	total := c.Level0Width * c.Level1Width * c.DataWidth
	return total - c.Level1Width*c.DataWidth - c.DataWidth
}
