package selectparams

import (
	"errors"
	"strings"
)

var (
	ErrEmptyFileName = errors.New("file name must not be empty")
	ErrNotParsed     = errors.New("parameters not parsed")
	ErrParsingFailed = errors.New("parsing parameters failed")
)

// SelectParams holds the parameters of the select command.
type SelectParams struct {
	fileName  string
	pointUser string

	// set after parsing
	destination string

	parsed bool
}

func NewSelectParams(fileName, pointUser string) *SelectParams {
	return &SelectParams{
		fileName:  fileName,
		pointUser: pointUser,
		parsed:    false,
	}
}

func (s *SelectParams) FileName() string {
	return s.fileName
}

// Destination is the lowercased destination to filter by.
func (s *SelectParams) Destination() string {
	if !s.parsed {
		panic(ErrNotParsed)
	}
	return s.destination
}

func (s *SelectParams) ParseAndValidate() error {
	if s.parsed {
		return nil
	}
	if s.fileName == "" {
		return errors.Join(ErrParsingFailed, ErrEmptyFileName)
	}

	s.destination = strings.ToLower(s.pointUser)
	s.parsed = true

	return nil
}

func (s *SelectParams) IsParsedAndValid() bool {
	return s.parsed
}
