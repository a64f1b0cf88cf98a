package estimator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Form errors.
var (
	ErrIncomplete    = errors.New("not all calculator fields are filled in")
	ErrInvalidNumber = errors.New("calculator field is not a number")
)

// Form holds the calculator fields exactly as typed on the page.
type Form struct {
	Power      string
	Age        string
	Experience string
	Region     string
}

// Complete reports whether every field holds a value.
// The calculation stays disabled until it does.
func (f Form) Complete() bool {
	return strings.TrimSpace(f.Power) != "" &&
		strings.TrimSpace(f.Age) != "" &&
		strings.TrimSpace(f.Experience) != "" &&
		strings.TrimSpace(f.Region) != ""
}

// Empty reports whether no field has been touched yet.
func (f Form) Empty() bool {
	return strings.TrimSpace(f.Power) == "" &&
		strings.TrimSpace(f.Age) == "" &&
		strings.TrimSpace(f.Experience) == "" &&
		strings.TrimSpace(f.Region) == ""
}

// Input converts the form into a typed Input.
func (f Form) Input() (Input, error) {
	if !f.Complete() {
		return Input{}, ErrIncomplete
	}

	power, err := strconv.ParseFloat(strings.TrimSpace(f.Power), 64)
	if err != nil || math.IsInf(power, 0) || math.IsNaN(power) {
		return Input{}, fmt.Errorf("engine power %q: %w", f.Power, ErrInvalidNumber)
	}

	age, err := strconv.Atoi(strings.TrimSpace(f.Age))
	if err != nil {
		return Input{}, fmt.Errorf("vehicle age %q: %w", f.Age, ErrInvalidNumber)
	}

	exp, err := strconv.Atoi(strings.TrimSpace(f.Experience))
	if err != nil {
		return Input{}, fmt.Errorf("driver experience %q: %w", f.Experience, ErrInvalidNumber)
	}

	region, err := ParseRegion(f.Region)
	if err != nil {
		return Input{}, fmt.Errorf("region %q: %w", f.Region, err)
	}

	return Input{
		EnginePower:      power,
		VehicleAge:       age,
		DriverExperience: exp,
		Region:           region,
	}, nil
}

var ruPrinter = message.NewPrinter(language.Russian)

// FormatPremium renders an amount with Russian digit grouping, e.g. "40 320".
func FormatPremium(premium int64) string {
	return ruPrinter.Sprintf("%d", premium)
}
