package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/khalid-nowaf/settrie/pkg/settrie"
	"github.com/khalid-nowaf/settrie/pkg/trie"
	"github.com/pkg/errors"
	"github.com/scylladb/go-set/strset"
	"go.uber.org/zap"
)

// Input selects the files to load and how to read a set and its value out of each record.
type Input struct {
	Files      []string `arg:"" type:"existingfile" help:"Input files holding sets in CSV, TSV or JSON format"`
	SetKey     string   `help:"Field of the set in each record" default:"set"`
	ValueKey   string   `help:"Field of the value in each record" default:"value"`
	ElementDel string   `help:"Delimiter between the elements of a set" default:" "`
	Strategy   string   `help:"Traversal used by queries" enum:"iterative,recursive" default:"iterative"`
}

// Record is one row of an input file, keyed by column name.
type Record map[string]string

// LoadStats counts what happened to the records of the input files.
type LoadStats struct {
	Records int `json:"records"`
	Skipped int `json:"skipped"`
}

// load reads every input file into a multi-map from set to values.
func (in *Input) load(ctx *Context) (*settrie.MultiMap[string, string], *LoadStats, error) {
	strategy, err := trie.ParseStrategy(in.Strategy)
	if err != nil {
		return nil, nil, err
	}
	sets := settrie.NewMultiMap[string, string](settrie.WithStrategy(strategy))
	stats := &LoadStats{}

	for _, file := range in.Files {
		logger := ctx.Logger.With(zap.String("file", file))
		line := 0
		onEachRecord := func(record Record) error {
			line++
			stats.Records++
			set, err := in.parseSet(record)
			if err != nil {
				return errors.Wrapf(err, "%s: record %d", file, line)
			}
			if len(set) == 0 {
				logger.Warn("skipping record with an empty set", zap.Int("record", line))
				stats.Skipped++
				return nil
			}
			if _, err := sets.Assign(set, record[in.ValueKey]); err != nil {
				return errors.Wrapf(err, "%s: record %d", file, line)
			}
			logger.Debug("loaded", zap.Int("record", line), zap.Strings("set", set))
			return nil
		}

		switch strings.ToLower(filepath.Ext(file)) {
		case ".json":
			err = parseJson(file, onEachRecord)
		case ".tsv":
			err = parseCsv(file, '\t', onEachRecord)
		default:
			err = parseCsv(file, ',', onEachRecord)
		}
		if err != nil {
			return nil, nil, err
		}
		logger.Info("file loaded", zap.Int("sets", sets.Len()))
	}
	return sets, stats, nil
}

// parseSet splits the set field of record into its distinct, non-empty elements.
func (in *Input) parseSet(record Record) ([]string, error) {
	field, found := record[in.SetKey]
	if !found {
		return nil, errors.Errorf("no %q field", in.SetKey)
	}
	return in.splitSet(field), nil
}

func (in *Input) splitSet(field string) []string {
	elements := strset.New(strings.Split(field, in.ElementDel)...)
	elements.Remove("")
	return elements.List()
}

func parseJson(path string, onEachRecord func(Record) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber()

	// Read opening bracket of the array
	if _, err = decoder.Token(); err != nil {
		return errors.Wrapf(err, "%s: expected an array of records", path)
	}

	for decoder.More() {
		fields := map[string]any{}
		if err := decoder.Decode(&fields); err != nil {
			return errors.Wrap(err, path)
		}
		if err := onEachRecord(jsonRecord(fields)); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	if _, err = decoder.Token(); err != nil {
		return errors.Wrap(err, path)
	}
	return nil
}

// jsonRecord flattens the fields of a JSON object into strings. Numbers keep their
// literal text and null becomes the empty string.
func jsonRecord(fields map[string]any) Record {
	record := make(Record, len(fields))
	for key, value := range fields {
		if value == nil {
			record[key] = ""
			continue
		}
		record[key] = fmt.Sprint(value)
	}
	return record
}

func parseCsv(path string, separator rune, onEachRecord func(Record) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = separator

	// the first line is the header
	headers, err := reader.Read()
	if err != nil {
		return errors.Wrapf(err, "%s: reading header", path)
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, path)
		}

		record := make(Record, len(headers))
		for i, value := range row {
			record[headers[i]] = value
		}
		if err := onEachRecord(record); err != nil {
			return err
		}
	}
}
