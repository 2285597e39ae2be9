// Package store reads and writes train records kept as a JSON array on disk.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/InternatManhole/trains/internal/train"
)

// DefaultDataDir is where data files are looked up unless configured otherwise.
const DefaultDataDir = "data"

const indent = "    "

var (
	ErrNotText      = errors.New("value is not text, a number, a boolean or null")
	ErrLoadFailed   = errors.New("loading train records failed")
	ErrSaveFailed   = errors.New("saving train records failed")
	ErrTrailingData = errors.New("unexpected data after the JSON array")
)

// FileStore resolves data file names against a single directory.
// It never creates the directory or the files in it.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the location of the named data file.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *FileStore) Load(name string) ([]train.Record, error) {
	return Load(s.Path(name))
}

func (s *FileStore) Save(name string, records []train.Record) error {
	return Save(s.Path(name), records)
}

// Load reads the whole collection stored at path.
func Load(path string) ([]train.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, fmt.Errorf("opening %s: %w", path, err))
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, fmt.Errorf("parsing %s: %w", path, err))
	}
	return records, nil
}

// Save overwrites path with records. The file is only touched once encoding
// succeeded, but a failing write may still leave it truncated.
func Save(path string, records []train.Record) error {
	var buf bytes.Buffer
	if err := Encode(&buf, records); err != nil {
		return errors.Join(ErrSaveFailed, fmt.Errorf("encoding %s: %w", path, err))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Join(ErrSaveFailed, fmt.Errorf("writing %s: %w", path, err))
	}
	return nil
}

// Decode parses a single JSON array of records from r.
// A JSON null is read as an empty collection. Numbers, booleans and nulls in
// record fields are read as their text.
func Decode(r io.Reader) ([]train.Record, error) {
	dec := json.NewDecoder(r)

	var stored []storedRecord
	if err := dec.Decode(&stored); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}

	records := make([]train.Record, len(stored))
	for i, sr := range stored {
		records[i] = sr.record()
	}
	return records, nil
}

// Encode writes records as an indented JSON array. Non-ASCII text is written
// as is and an empty collection is written as [].
func Encode(w io.Writer, records []train.Record) error {
	if records == nil {
		records = []train.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	return enc.Encode(records)
}

type storedRecord struct {
	DeparturePoint text `json:"departure_point"`
	NumberTrain    text `json:"number_train"`
	TimeDeparture  text `json:"time_departure"`
	Destination    text `json:"destination"`
}

func (sr storedRecord) record() train.Record {
	return train.NewRecord(string(sr.DeparturePoint), string(sr.NumberTrain), string(sr.TimeDeparture), string(sr.Destination))
}

// text accepts any JSON scalar. Numbers keep their literal spelling.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch v := v.(type) {
	case string:
		*t = text(v)
	case json.Number:
		*t = text(v.String())
	case bool:
		*t = text(strconv.FormatBool(v))
	case nil:
		*t = ""
	default:
		return fmt.Errorf("%w: %s", ErrNotText, data)
	}
	return nil
}
