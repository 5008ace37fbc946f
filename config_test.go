package hisparsebitset

import "testing"

func TestNewConfigRejectsInvalidWidths(t *testing.T) {
	cases := []struct {
		name         string
		l0, l1, data int
	}{
		{"level0", 100, 64, 64},
		{"level1", 64, 100, 64},
		{"data", 64, 64, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewConfig(c.l0, c.l1, c.data); err == nil {
				t.Fatalf("expected error for invalid %s width", c.name)
			}
		})
	}
}

func TestConfigMaxCapacity(t *testing.T) {
	cfg := Config64
	got := cfg.MaxCapacity()
	want := 64*64*64 - 64*64 - 64
	if got != want {
		t.Errorf("MaxCapacity() = %d, want %d", got, want)
	}
}

func TestPresetConfigsAreValid(t *testing.T) {
	for _, cfg := range []Config{Config64, Config128, Config256, Config512, ConfigDense} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %+v failed validation: %v", cfg, err)
		}
	}
}
