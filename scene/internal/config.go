package scene

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FigureConfig is one figure of the scene file.
type FigureConfig struct {
	ID     string      `yaml:"id,omitempty"`
	Kind   string      `yaml:"kind"`
	Points [][]float64 `yaml:"points"`
	Height float64     `yaml:"height,omitempty"`
}

// Config is the scene file.
//
// Example:
//
//	figures:
//	  - kind: square
//	    points: [[0, 0], [1, 0]]
//	  - id: roof
//	    kind: triangle
//	    points: [[0, 0], [2, 0]]
//	    height: 2
type Config struct {
	Figures []FigureConfig `yaml:"figures"`
}

// LoadConfig reads the scene file and validates it against the scene schema.
func LoadConfig(path string) (*Config, error) {
	data, readErr := ioutil.ReadFile(path)
	if readErr != nil {
		return nil, errors.Wrapf(readErr, "can't read scene file %v", path)
	}
	cfg, parseErr := ParseConfig(data)
	if parseErr != nil {
		return nil, errors.Wrapf(parseErr, "invalid scene file %v", path)
	}
	return cfg, nil
}

// ParseConfig validates raw YAML against the scene schema and decodes it.
func ParseConfig(data []byte) (*Config, error) {
	var document map[string]interface{}
	if unmarshalErr := yaml.Unmarshal(data, &document); unmarshalErr != nil {
		return nil, errors.Wrap(unmarshalErr, "can't parse yaml")
	}
	if document == nil {
		document = map[string]interface{}{}
	}
	if validationErr := defaultValidator.Validate(document); validationErr != nil {
		return nil, validationErr
	}
	cfg := &Config{}
	if decodeErr := yaml.Unmarshal(data, cfg); decodeErr != nil {
		return nil, errors.Wrap(decodeErr, "can't decode scene")
	}
	return cfg, nil
}
