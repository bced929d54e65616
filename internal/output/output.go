package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mj1618/kakao-a11y/internal/model"
	"github.com/mj1618/kakao-a11y/internal/overlay"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Writer is where results are printed.
var Writer io.Writer = os.Stdout

// ClassifyResult is the output of the `classify` command.
type ClassifyResult struct {
	Object  model.RemoteObject `yaml:"object"  json:"object"`
	Overlay overlay.Kind       `yaml:"overlay" json:"overlay"`
	Flags   overlay.Flags      `yaml:"flags"   json:"flags"`
	Policy  overlay.Policy     `yaml:"policy"  json:"policy"`
}

// NewClassifyResult describes the overlay chosen for obj.
func NewClassifyResult(obj model.RemoteObject, kind overlay.Kind) ClassifyResult {
	return ClassifyResult{Object: obj, Overlay: kind, Flags: kind.Flags(), Policy: kind.Policy()}
}

// ProtocolResult is the output of the `protocol` command.
type ProtocolResult struct {
	Window   string         `yaml:"window"          json:"window"`
	Class    string         `yaml:"class,omitempty" json:"class,omitempty"`
	Protocol model.Protocol `yaml:"protocol"        json:"protocol"`
}

// Print serializes v to Writer in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(Writer)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(Writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(Writer)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
