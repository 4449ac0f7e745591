/*
File    : go-letter/dump/dump.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package dump serializes the AST to its canonical textual forms.
// Every node marshals as a tagged record: the "type" discriminator first,
// then the node's attributes in schema order. Absent children are emitted
// as explicit nulls and empty sequences as [], so the output is stable
// enough to compare against golden fixtures byte for byte.
package dump

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/akashmaji946/go-letter/parser"
)

// Format selects the output encoding of the dumper.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ToYAML serializes the node to YAML.
func ToYAML(node parser.Node) ([]byte, error) {
	return yaml.Marshal(node)
}

// ToJSON serializes the node to indented JSON with a trailing newline.
func ToJSON(node parser.Node) ([]byte, error) {
	data, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Marshal serializes the node in the given format.
func Marshal(node parser.Node, format Format) ([]byte, error) {
	if format == FormatJSON {
		return ToJSON(node)
	}
	return ToYAML(node)
}
