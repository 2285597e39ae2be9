package train

import "strings"

// Record is a single train entry. Two records are the same train when all four
// fields are equal; there is no other identity.
type Record struct {
	DeparturePoint string `json:"departure_point"`
	NumberTrain    string `json:"number_train"`
	TimeDeparture  string `json:"time_departure"`
	Destination    string `json:"destination"`
}

func NewRecord(departurePoint, numberTrain, timeDeparture, destination string) Record {
	return Record{
		DeparturePoint: departurePoint,
		NumberTrain:    numberTrain,
		TimeDeparture:  timeDeparture,
		Destination:    destination,
	}
}

// Normalized returns a copy of the record with every field lowercased.
func (r Record) Normalized() Record {
	return Record{
		DeparturePoint: strings.ToLower(r.DeparturePoint),
		NumberTrain:    strings.ToLower(r.NumberTrain),
		TimeDeparture:  strings.ToLower(r.TimeDeparture),
		Destination:    strings.ToLower(r.Destination),
	}
}
