// Package output serializes import results.
package output

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/moxuandi/sheetimport/pkg/sheetimport"
	"github.com/moxuandi/sheetimport/pkg/sheetimport/models"
)

// Format names an output encoding.
type Format string

const (
	// FormatJSON encodes with encoding/json.
	FormatJSON Format = "json"
	// FormatYAML encodes with gopkg.in/yaml.v3.
	FormatYAML Format = "yaml"
)

// Encode serializes a result in the given format.
func Encode(result *sheetimport.Result, format Format, pretty bool) ([]byte, error) {
	if format == FormatYAML {
		return ToYAML(result)
	}
	return ToJSON(result, pretty)
}

// ToJSON serializes a result. A collapsed result encodes as the sheet itself;
// otherwise sheets are an object keyed by name or index, in workbook order.
func ToJSON(result *sheetimport.Result, pretty bool) ([]byte, error) {
	if result.Collapsed() {
		return SheetToJSON(result.Single, pretty)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range result.Order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id.String())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		sheet, err := json.Marshal(result.Sheets[id])
		if err != nil {
			return nil, err
		}
		buf.Write(sheet)
	}
	buf.WriteByte('}')

	if !pretty {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// SheetToJSON serializes a single sheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(sheet, "", "  ")
	}
	return json.Marshal(sheet)
}

// ToYAML serializes a result, keeping sheets in workbook order.
func ToYAML(result *sheetimport.Result) ([]byte, error) {
	if result.Collapsed() {
		return yaml.Marshal(result.Single)
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, id := range result.Order {
		var value yaml.Node
		if err := value.Encode(result.Sheets[id]); err != nil {
			return nil, err
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id.String()}
		doc.Content = append(doc.Content, key, &value)
	}
	return yaml.Marshal(doc)
}
