package output

import (
	"bytes"
	"encoding/json"
)

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Components []jsonComponent `json:"components"`
	Stats      jsonStats       `json:"stats"`
	Meta       jsonMeta        `json:"meta"`
}

// jsonComponent represents a classified record in JSON output.
type jsonComponent struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	SourcePath string `json:"source_path"`
	Size       int64  `json:"size"`
	SizeHuman  string `json:"size_human"`
	Selected   bool   `json:"selected"`
}

// jsonStats represents scan statistics in JSON output.
type jsonStats struct {
	Components int    `json:"components"`
	Dropped    int    `json:"dropped"`
	Skipped    int    `json:"skipped"`
	Duration   string `json:"duration"`
}

// jsonMeta represents metadata in JSON output.
type jsonMeta struct {
	Source    string `json:"source"`
	TotalSize int64  `json:"total_size"`
}

// JSONFormatter formats output as a single indented JSON object.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(f.buildOutput(r))
}

// buildOutput converts Result to the JSON output structure.
func (f *JSONFormatter) buildOutput(r *Result) jsonOutput {
	components := make([]jsonComponent, len(r.Records))
	for i, rec := range r.Records {
		components[i] = jsonComponent{
			Name:       rec.Name,
			Type:       rec.Type.String(),
			SourcePath: rec.SourcePath,
			Size:       rec.SizeBytes,
			SizeHuman:  rec.HumanSize(),
			Selected:   rec.Selected,
		}
	}

	return jsonOutput{
		Components: components,
		Stats: jsonStats{
			Components: len(r.Records),
			Dropped:    r.Dropped,
			Skipped:    r.Skipped,
			Duration:   r.Elapsed.String(),
		},
		Meta: jsonMeta{
			Source:    r.Source,
			TotalSize: r.TotalSize(),
		},
	}
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
