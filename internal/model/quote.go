// Package model defines domain entities for the application.
package model

import (
	"time"

	"github.com/avtostrahovanie/landing/internal/estimator"
)

// Currency of every premium shown on the page.
const Currency = "RUB"

// Quote is a single premium estimation. It lives only for the request that produced it.
type Quote struct {
	ID        string              `json:"id"` // ULID
	Input     estimator.Input     `json:"-"`
	Premium   int64               `json:"premium"`
	Breakdown estimator.Breakdown `json:"-"`
	CreatedAt time.Time           `json:"created_at"`
}

// FormattedPremium returns the premium with Russian digit grouping.
func (q *Quote) FormattedPremium() string {
	return estimator.FormatPremium(q.Premium)
}

// PowerBand names the engine power band the quote fell into.
func (q *Quote) PowerBand() string {
	switch {
	case q.Input.EnginePower > 150:
		return "over_150"
	case q.Input.EnginePower > 100:
		return "101_150"
	default:
		return "up_to_100"
	}
}
