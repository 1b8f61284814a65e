package wire

import (
	"gopkg.in/yaml.v3"
)

// YAML returns the YAML format backed by gopkg.in/yaml.v3. Only the first
// document of a stream is read.
func YAML() Format { return yamlFormat{} }

type yamlFormat struct{}

func (yamlFormat) Name() string        { return "yaml" }
func (yamlFormat) ContentType() string { return "application/yaml" }

func (yamlFormat) Unmarshal(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalizeIn(v), nil
}

func (yamlFormat) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(normalizeOut(v))
}
