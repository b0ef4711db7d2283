package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// SchemeFile is the top-level JSON structure of a grading scheme file.
type SchemeFile struct {
	ClassName  string           `json:"class_name"`
	Categories []CategoryImport `json:"categories"`
}

// CategoryImport defines one category in the scheme file. BestOf defaults
// to TotalItems when omitted.
type CategoryImport struct {
	Name       string   `json:"name"`
	Weight     *float64 `json:"weight"`
	TotalItems *int     `json:"total_items"`
	BestOf     *int     `json:"best_of,omitempty"`
}

// LoadScheme reads and parses a grading scheme JSON file.
func LoadScheme(path string) (*SchemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScheme(data)
}

// ParseScheme parses grading scheme JSON. Unknown fields are rejected so
// that typos such as "best" instead of "best_of" do not pass silently.
func ParseScheme(data []byte) (*SchemeFile, error) {
	var scheme SchemeFile
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&scheme); err != nil {
		return nil, fmt.Errorf("parsing scheme file: %w", err)
	}
	return &scheme, nil
}
