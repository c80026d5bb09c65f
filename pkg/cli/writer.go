package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/khalid-nowaf/settrie/pkg/settrie"
	"github.com/khalid-nowaf/settrie/pkg/trie"
)

type Entry = settrie.Entry[string, string]

// Writer prints query results and statistics in one output format.
type Writer interface {
	WriteEntries(entries []Entry, mode settrie.Mode) error
	WriteBool(name string, value bool) error
	WriteStats(stats Stats) error
}

// Stats is the report of the stats command.
type Stats struct {
	*LoadStats
	Sets   int `json:"sets"`
	Values int `json:"values"`
	trie.Stats
}

func newWriter(format string, out io.Writer) Writer {
	if format == "json" {
		return &JsonWriter{out: out}
	}
	return &TextWriter{out: out}
}

// TextWriter prints one result per line, sets rendered as {a b c}.
type TextWriter struct {
	out io.Writer
}

func (w *TextWriter) WriteEntries(entries []Entry, mode settrie.Mode) error {
	for _, e := range entries {
		var err error
		switch mode {
		case settrie.Keys:
			_, err = fmt.Fprintln(w.out, settrie.FormatSet(e.Key))
		case settrie.Values:
			_, err = fmt.Fprintln(w.out, e.Value)
		default:
			_, err = fmt.Fprintln(w.out, e.String())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *TextWriter) WriteBool(_ string, value bool) error {
	_, err := fmt.Fprintln(w.out, value)
	return err
}

func (w *TextWriter) WriteStats(s Stats) error {
	_, err := fmt.Fprintf(w.out,
		"records: %d\nskipped: %d\nsets: %d\nvalues: %d\nnodes: %d\nleaves: %d\nmax depth: %d\n",
		s.Records, s.Skipped, s.Sets, s.Values, s.Nodes, s.Leaves, s.MaxDepth)
	return err
}

// JsonWriter prints results as one JSON array of {"set": [...], "value": ...} objects.
type JsonWriter struct {
	out io.Writer
}

type jsonEntry struct {
	Set   []string `json:"set,omitempty"`
	Value *string  `json:"value,omitempty"`
}

func (w *JsonWriter) WriteEntries(entries []Entry, mode settrie.Mode) error {
	encoder := json.NewEncoder(w.out)

	if _, err := w.out.Write([]byte("[")); err != nil {
		return err
	}
	for i, e := range entries {
		if i > 0 {
			if _, err := w.out.Write([]byte(",")); err != nil {
				return err
			}
		}
		item := jsonEntry{}
		if mode != settrie.Values {
			item.Set = e.Key
		}
		if mode != settrie.Keys {
			item.Value = &e.Value
		}
		if err := encoder.Encode(item); err != nil {
			return err
		}
	}
	_, err := w.out.Write([]byte("]\n"))
	return err
}

func (w *JsonWriter) WriteBool(name string, value bool) error {
	return json.NewEncoder(w.out).Encode(map[string]bool{name: value})
}

func (w *JsonWriter) WriteStats(s Stats) error {
	return json.NewEncoder(w.out).Encode(s)
}
