// Package estimator computes the OSAGO premium from the four calculator inputs.
// Everything here is pure: no I/O, no hidden state.
package estimator

import (
	"github.com/shopspring/decimal"
)

// BasePremium is the premium before any multiplier is applied, in rubles.
const BasePremium = 5000

var (
	base = decimal.NewFromInt(BasePremium)

	coefNone = decimal.RequireFromString("1.0")

	powerHigh   = decimal.RequireFromString("1.6")
	powerMedium = decimal.RequireFromString("1.3")

	ageOld    = decimal.RequireFromString("1.4")
	ageMiddle = decimal.RequireFromString("1.2")

	expNovice = decimal.RequireFromString("1.8")
	expJunior = decimal.RequireFromString("1.3")

	regionMoscow = decimal.RequireFromString("2.0")
	regionSPb    = decimal.RequireFromString("1.8")
	regionOther  = decimal.RequireFromString("1.3")
)

// Input is a complete set of calculator values.
type Input struct {
	EnginePower      float64 // horsepower
	VehicleAge       int     // years
	DriverExperience int     // years
	Region           Region
}

// Breakdown lists the multipliers that produced a premium.
type Breakdown struct {
	Base       decimal.Decimal
	Power      decimal.Decimal
	Age        decimal.Decimal
	Experience decimal.Decimal
	Region     decimal.Decimal
}

// Result is the computed premium.
type Result struct {
	Premium   int64
	Breakdown Breakdown
}

// Estimate returns the yearly premium for in.
//
// Every band boundary is strict: a value sitting exactly on a threshold
// stays in the cheaper band.
func Estimate(in Input) Result {
	b := Breakdown{
		Base:       base,
		Power:      PowerMultiplier(in.EnginePower),
		Age:        AgeMultiplier(in.VehicleAge),
		Experience: ExperienceMultiplier(in.DriverExperience),
		Region:     RegionMultiplier(in.Region),
	}

	total := b.Base.Mul(b.Power).Mul(b.Age).Mul(b.Experience).Mul(b.Region)

	return Result{
		Premium:   total.Round(0).IntPart(),
		Breakdown: b,
	}
}

// PowerMultiplier: >150 hp → 1.6, >100 hp → 1.3, otherwise 1.0.
func PowerMultiplier(hp float64) decimal.Decimal {
	switch {
	case hp > 150:
		return powerHigh
	case hp > 100:
		return powerMedium
	default:
		return coefNone
	}
}

// AgeMultiplier: >10 years → 1.4, >5 years → 1.2, otherwise 1.0.
func AgeMultiplier(years int) decimal.Decimal {
	switch {
	case years > 10:
		return ageOld
	case years > 5:
		return ageMiddle
	default:
		return coefNone
	}
}

// ExperienceMultiplier: <3 years → 1.8, <7 years → 1.3, otherwise 1.0.
func ExperienceMultiplier(years int) decimal.Decimal {
	switch {
	case years < 3:
		return expNovice
	case years < 7:
		return expJunior
	default:
		return coefNone
	}
}

// RegionMultiplier: moscow → 2.0, saint-petersburg → 1.8, anything else → 1.3.
func RegionMultiplier(r Region) decimal.Decimal {
	switch r {
	case RegionMoscow:
		return regionMoscow
	case RegionSaintPetersburg:
		return regionSPb
	default:
		return regionOther
	}
}
