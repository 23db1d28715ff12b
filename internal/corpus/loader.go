package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"intentbench/internal/logging"
)

// Suite is an external YAML-defined test case collection that can be
// merged into the built-in corpus for a run.
type Suite struct {
	Version int        `yaml:"version"`
	Name    string     `yaml:"name"`
	Cases   []TestCase `yaml:"cases"`
}

// suiteVersion is the only suite format currently understood.
const suiteVersion = 1

// LoadSuite reads a YAML suite file from disk and validates every case
// against the closed vocabularies before returning.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse suite YAML: %w", err)
	}
	if s.Version != suiteVersion {
		return nil, fmt.Errorf("unsupported suite version %d (want %d)", s.Version, suiteVersion)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite %s contains no cases", path)
	}

	for i, tc := range s.Cases {
		if err := tc.Validate(); err != nil {
			return nil, fmt.Errorf("suite %s: case %d: %w", path, i, err)
		}
	}

	logging.Corpus("Loaded suite %q: %d cases", s.Name, len(s.Cases))
	return &s, nil
}

// Corpus converts the suite into a corpus preserving file order.
func (s *Suite) Corpus() *Corpus {
	return FromCases(s.Cases)
}
