package estimator

import (
	"errors"
	"strings"
)

// Region is the vehicle registration region. Only three values take part in
// pricing, so the set is closed.
type Region string

const (
	RegionMoscow          Region = "moscow"
	RegionSaintPetersburg Region = "saint-petersburg"
	RegionOther           Region = "other"
)

// ErrUnknownRegion is returned when a region string matches none of the known regions.
var ErrUnknownRegion = errors.New("unknown region")

// Regions lists every region in the order the page offers them.
var Regions = []Region{RegionMoscow, RegionSaintPetersburg, RegionOther}

// regionAliases maps the values posted by the page's region select.
var regionAliases = map[string]Region{
	"moscow":           RegionMoscow,
	"saint-petersburg": RegionSaintPetersburg,
	"spb":              RegionSaintPetersburg,
	"other":            RegionOther,
	"regions":          RegionOther,
}

// ParseRegion converts a form or API value into a Region.
func ParseRegion(s string) (Region, error) {
	if r, ok := regionAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	return "", ErrUnknownRegion
}

// IsValid reports whether r is one of the known regions.
func (r Region) IsValid() bool {
	switch r {
	case RegionMoscow, RegionSaintPetersburg, RegionOther:
		return true
	}
	return false
}

// Label returns the Russian name shown in the region select.
func (r Region) Label() string {
	switch r {
	case RegionMoscow:
		return "Москва"
	case RegionSaintPetersburg:
		return "Санкт-Петербург"
	default:
		return "Другие регионы"
	}
}
