package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/glowmouse/jubilant-waffle/internal/hough"
)

// OutputMode selects which intermediate image the pipeline emits.
type OutputMode int

const (
	// OutputHoughSpace emits the normalized Hough vote space (the default).
	OutputHoughSpace OutputMode = iota

	// OutputEdgeMap emits the thresholded binary edge map instead.
	OutputEdgeMap
)

// ParseOutputMode maps the textual spelling of a mode to its value.
func ParseOutputMode(s string) (OutputMode, error) {
	switch s {
	case "hough":
		return OutputHoughSpace, nil
	case "edge":
		return OutputEdgeMap, nil
	default:
		return 0, fmt.Errorf("pipeline: unknown output mode %q (want hough or edge)", s)
	}
}

func (m OutputMode) String() string {
	switch m {
	case OutputEdgeMap:
		return "edge"
	default:
		return "hough"
	}
}

// UnmarshalYAML decodes an output mode from its textual spelling.
func (m *OutputMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	mode, err := ParseOutputMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// MarshalYAML encodes an output mode as its textual spelling.
func (m OutputMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// Config holds the tunable pipeline parameters. All of them have working
// defaults; a YAML file or CLI flags may override any subset.
type Config struct {
	// Scale multiplies 8-bit input samples during float conversion.
	Scale float64 `yaml:"scale"`

	// Threshold is the edge-strength cutoff applied to the combined
	// gradient map; samples strictly above it become edge pixels.
	Threshold float32 `yaml:"threshold"`

	// AngleBins and RadiusBins size the Hough accumulator, which is also
	// the dimensions of the final output image in hough mode.
	AngleBins  int `yaml:"angle_bins"`
	RadiusBins int `yaml:"radius_bins"`

	// VoteWeight is added to an accumulator cell per contributing
	// (edge pixel, angle bin) pair.
	VoteWeight float32 `yaml:"vote_weight"`

	// Output picks which stage's image is emitted.
	Output OutputMode `yaml:"output"`
}

// DefaultConfig returns the stock parameters: intensities scaled to [0,1],
// edge threshold 0.4, a 720x720 accumulator with vote weight 0.003, and the
// Hough space as output.
func DefaultConfig() Config {
	return Config{
		Scale:      1.0 / 255.0,
		Threshold:  0.4,
		AngleBins:  hough.DefaultAngleBins,
		RadiusBins: hough.DefaultRadiusBins,
		VoteWeight: hough.DefaultVoteWeight,
		Output:     OutputHoughSpace,
	}
}

// LoadConfig reads YAML overrides from path on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("pipeline: reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("pipeline: parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.AngleBins <= 0 || c.RadiusBins <= 0 {
		return fmt.Errorf("pipeline: accumulator bins must be positive, got %dx%d",
			c.AngleBins, c.RadiusBins)
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("pipeline: threshold %v outside [0,1]", c.Threshold)
	}
	if c.VoteWeight <= 0 {
		return fmt.Errorf("pipeline: vote weight must be positive, got %v", c.VoteWeight)
	}
	return nil
}
