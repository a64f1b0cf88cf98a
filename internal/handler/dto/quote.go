package dto

import (
	"time"

	"github.com/avtostrahovanie/landing/internal/model"
	"github.com/avtostrahovanie/landing/internal/service"
)

// QuoteRequest represents the request body for pricing a policy.
// Fields are pointers so an omitted field can be told apart from zero.
type QuoteRequest struct {
	EnginePower      *float64 `json:"engine_power"`
	VehicleAge       *int     `json:"vehicle_age"`
	DriverExperience *int     `json:"driver_experience"`
	Region           *string  `json:"region"`
}

// ToServiceRequest converts the body into a service request.
func (r QuoteRequest) ToServiceRequest() service.QuoteRequest {
	return service.QuoteRequest{
		EnginePower:      r.EnginePower,
		VehicleAge:       r.VehicleAge,
		DriverExperience: r.DriverExperience,
		Region:           r.Region,
	}
}

// BreakdownResponse lists the factors applied to the base premium.
type BreakdownResponse struct {
	Base       int64   `json:"base"`
	Power      float64 `json:"power"`
	Age        float64 `json:"age"`
	Experience float64 `json:"experience"`
	Region     float64 `json:"region"`
}

// QuoteResponse represents a priced quote in API responses.
type QuoteResponse struct {
	ID               string            `json:"id"`
	Premium          int64             `json:"premium"`
	PremiumFormatted string            `json:"premium_formatted"`
	Currency         string            `json:"currency"`
	Region           string            `json:"region"`
	Breakdown        BreakdownResponse `json:"breakdown"`
	CreatedAt        time.Time         `json:"created_at"`
}

// ToQuoteResponse converts a Quote model to QuoteResponse DTO.
func ToQuoteResponse(q *model.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:               q.ID,
		Premium:          q.Premium,
		PremiumFormatted: q.FormattedPremium(),
		Currency:         model.Currency,
		Region:           string(q.Input.Region),
		Breakdown: BreakdownResponse{
			Base:       q.Breakdown.Base.IntPart(),
			Power:      q.Breakdown.Power.InexactFloat64(),
			Age:        q.Breakdown.Age.InexactFloat64(),
			Experience: q.Breakdown.Experience.InexactFloat64(),
			Region:     q.Breakdown.Region.InexactFloat64(),
		},
		CreatedAt: q.CreatedAt,
	}
}
