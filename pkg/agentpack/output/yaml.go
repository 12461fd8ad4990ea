package output

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// yamlOutput represents the full YAML output structure.
type yamlOutput struct {
	Components []yamlComponent `yaml:"components"`
	Stats      yamlStats       `yaml:"stats"`
	Meta       yamlMeta        `yaml:"meta"`
}

// yamlComponent represents a classified record in YAML output.
type yamlComponent struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	SourcePath string `yaml:"source_path"`
	Size       int64  `yaml:"size"`
	SizeHuman  string `yaml:"size_human"`
	Selected   bool   `yaml:"selected"`
}

// yamlStats represents scan statistics in YAML output.
type yamlStats struct {
	Components int    `yaml:"components"`
	Dropped    int    `yaml:"dropped"`
	Skipped    int    `yaml:"skipped"`
	Duration   string `yaml:"duration"`
}

// yamlMeta represents metadata in YAML output.
type yamlMeta struct {
	Source    string `yaml:"source"`
	TotalSize int64  `yaml:"total_size"`
}

// YAMLFormatter formats output as YAML.
// It produces the same structure as JSONFormatter but in YAML format.
type YAMLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, r *Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(f.buildOutput(r)); err != nil {
		return err
	}
	return encoder.Close()
}

// buildOutput converts Result to the YAML output structure.
func (f *YAMLFormatter) buildOutput(r *Result) yamlOutput {
	components := make([]yamlComponent, len(r.Records))
	for i, rec := range r.Records {
		components[i] = yamlComponent{
			Name:       rec.Name,
			Type:       rec.Type.String(),
			SourcePath: rec.SourcePath,
			Size:       rec.SizeBytes,
			SizeHuman:  rec.HumanSize(),
			Selected:   rec.Selected,
		}
	}

	return yamlOutput{
		Components: components,
		Stats: yamlStats{
			Components: len(r.Records),
			Dropped:    r.Dropped,
			Skipped:    r.Skipped,
			Duration:   r.Elapsed.String(),
		},
		Meta: yamlMeta{
			Source:    r.Source,
			TotalSize: r.TotalSize(),
		},
	}
}

func init() {
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)
