package addparams

import (
	"errors"

	"github.com/InternatManhole/trains/internal/train"
)

var (
	ErrEmptyFileName = errors.New("file name must not be empty")
	ErrNotParsed     = errors.New("parameters not parsed")
	ErrParsingFailed = errors.New("parsing parameters failed")
)

// AddParams holds the parameters of the add command. Values are kept as typed
// and lowercased by ParseAndValidate.
type AddParams struct {
	fileName string

	departurePoint string
	numberTrain    string
	timeDeparture  string
	destination    string

	// set after parsing
	record train.Record

	parsed bool
}

func NewAddParams(fileName, departurePoint, numberTrain, timeDeparture, destination string) *AddParams {
	return &AddParams{
		fileName:       fileName,
		departurePoint: departurePoint,
		numberTrain:    numberTrain,
		timeDeparture:  timeDeparture,
		destination:    destination,
		parsed:         false,
	}
}

func (a *AddParams) FileName() string {
	return a.fileName
}

// Record is the normalized record to insert. It panics before ParseAndValidate succeeded.
func (a *AddParams) Record() train.Record {
	if !a.parsed {
		panic(ErrNotParsed)
	}
	return a.record
}

func (a *AddParams) ParseAndValidate() error {
	if a.parsed {
		return nil
	}
	if a.fileName == "" {
		return errors.Join(ErrParsingFailed, ErrEmptyFileName)
	}

	a.record = train.NewRecord(a.departurePoint, a.numberTrain, a.timeDeparture, a.destination).Normalized()
	a.parsed = true

	return nil
}

func (a *AddParams) IsParsedAndValid() bool {
	return a.parsed
}
