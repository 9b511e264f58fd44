package methodology

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/roi-cli/internal/kpi"
)

// Load reads a methodology config from a YAML file and validates it
// against the given KPI registry. Validation failures are fatal here so
// that calculation never sees an invalid config.
func Load(path string, registry *kpi.Registry) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "methodology: read config %s", path)
	}
	return Parse(data, registry)
}

// Parse decodes and validates a methodology config from YAML bytes.
func Parse(data []byte, registry *kpi.Registry) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, eris.Wrap(err, "methodology: parse config")
	}
	if err := cfg.Validate(registry); err != nil {
		return nil, err
	}
	return &cfg, nil
}
