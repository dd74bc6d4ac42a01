package io

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/lexis/pkg/errors"
	"github.com/matzehuels/lexis/pkg/lexis"
)

// RecordFormat is the encoding of a record file.
type RecordFormat string

// Record formats.
const (
	RecordsJSON RecordFormat = "json"
	RecordsYAML RecordFormat = "yaml"
	RecordsCSV  RecordFormat = "csv"
)

// RecordFormatFromPath infers the record format from path's extension.
func RecordFormatFromPath(path string) (RecordFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return RecordsJSON, nil
	case ".yaml", ".yml":
		return RecordsYAML, nil
	case ".csv":
		return RecordsCSV, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer record format of %s (want .json, .yaml, .yml or .csv)", path)
}

// ReadRecords decodes a list of homogeneous records from r.
//
//   - json: an array of objects. Numbers are kept as json.Number so that
//     large integers survive until they are coerced.
//   - yaml: a sequence of mappings.
//   - csv: a header row naming the fields, then one record per row. All
//     values are strings.
//
// Values are left raw; [lexis.ToInt] coerces them during ingestion.
// ReadRecords does not close r.
func ReadRecords(r io.Reader, f RecordFormat) ([]lexis.Record, error) {
	switch f {
	case RecordsJSON:
		return readJSON(r)
	case RecordsYAML:
		return readYAML(r)
	case RecordsCSV:
		return readCSV(r)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown record format %q", f)
}

// ImportRecords reads the record file at path, choosing the decoder from
// its extension.
func ImportRecords(path string) ([]lexis.Record, error) {
	f, err := RecordFormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "record file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	recs, err := ReadRecords(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

func readJSON(r io.Reader) ([]lexis.Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var recs []lexis.Record
	if err := dec.Decode(&recs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json records")
	}
	return recs, nil
}

func readYAML(r io.Reader) ([]lexis.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var recs []lexis.Record
	if len(bytes.TrimSpace(data)) == 0 {
		return recs, nil
	}
	if err := yaml.Unmarshal(data, &recs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml records")
	}
	return recs, nil
}

func readCSV(r io.Reader) ([]lexis.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read csv header")
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	var recs []lexis.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read csv row %d", len(recs)+1)
		}
		rec := make(lexis.Record, len(header))
		for i, col := range header {
			rec[col] = row[i]
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
