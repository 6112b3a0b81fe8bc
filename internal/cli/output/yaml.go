package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// PrintYAML writes data as a YAML document with two-space indentation.
// The encoder is closed before returning so the document is terminated.
func PrintYAML(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
