// Package locale holds the user-facing strings of the trains CLI.
//
// Message keys are the English texts; Russian is the default language.
package locale

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	HeaderIndex          = "No."
	HeaderDeparturePoint = "Departure point"
	HeaderNumberTrain    = "Train number"
	HeaderTimeDeparture  = "Departure time"
	HeaderDestination    = "Destination"

	EmptyList    = "The train list is empty."
	AlreadyAdded = "This train has already been added."
)

const DefaultLanguage = "ru"

var ErrUnsupportedLanguage = errors.New("unsupported language")

var tags = map[string]language.Tag{
	"ru": language.Russian,
	"en": language.English,
}

var russian = map[string]string{
	HeaderIndex:          "№",
	HeaderDeparturePoint: "Пункт отправления",
	HeaderNumberTrain:    "Номер поезда",
	HeaderTimeDeparture:  "Время отправления",
	HeaderDestination:    "Пункт назначения",
	EmptyList:            "Список поездов пуст.",
	AlreadyAdded:         "Данный поезд уже добавлен.",
}

func init() {
	for key, text := range russian {
		if err := message.SetString(language.Russian, key, text); err != nil {
			panic(err)
		}
		if err := message.SetString(language.English, key, key); err != nil {
			panic(err)
		}
	}
}

// Languages lists the accepted language codes in a stable order.
func Languages() []string {
	codes := make([]string, 0, len(tags))
	for code := range tags {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

func IsSupported(lang string) bool {
	_, ok := tags[lang]
	return ok
}

// NewPrinter returns a printer translating the message keys of this package into lang.
func NewPrinter(lang string) (*message.Printer, error) {
	tag, ok := tags[lang]
	if !ok {
		return nil, errors.Join(ErrUnsupportedLanguage, fmt.Errorf("%q, expected one of %v", lang, Languages()))
	}
	return message.NewPrinter(tag), nil
}
