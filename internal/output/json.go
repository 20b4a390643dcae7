// Package output serializes generated records to and from JSON files.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"pkg.jsn.cam/persongen/internal/generator"
)

// EncodeJSON marshals records as a compact JSON array. A nil slice encodes as [].
func EncodeJSON(records []generator.Record) ([]byte, error) {
	if records == nil {
		records = []generator.Record{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}

	return data, nil
}

// DecodeJSON unmarshals a JSON array of records. Objects with keys other than
// name, age and salary are rejected.
func DecodeJSON(data []byte) ([]generator.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var records []generator.Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if records == nil {
		return nil, ErrNotArray
	}

	return records, nil
}

// WriteFile encodes records and writes them to path in one write, creating or
// truncating the file. It returns the number of bytes written.
func WriteFile(path string, records []generator.Record) (int, error) {
	data, err := EncodeJSON(records)
	if err != nil {
		return 0, err
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}

	n, err := file.Write(data)
	if err != nil {
		file.Close()
		return n, fmt.Errorf("write %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return n, fmt.Errorf("close %s: %w", path, err)
	}

	return n, nil
}

// ReadFile reads back a file produced by WriteFile.
func ReadFile(path string) ([]generator.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return DecodeJSON(data)
}
