package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/avtostrahovanie/landing/internal/estimator"
	"github.com/avtostrahovanie/landing/internal/metrics"
	"github.com/avtostrahovanie/landing/internal/model"
)

// QuoteRequest is a typed calculator submission.
// A nil field means the visitor left it empty; zero is a legitimate value.
type QuoteRequest struct {
	EnginePower      *float64 `json:"engine_power" validate:"required"`
	VehicleAge       *int     `json:"vehicle_age" validate:"required"`
	DriverExperience *int     `json:"driver_experience" validate:"required"`
	Region           *string  `json:"region" validate:"required"`
}

// QuoteService prices calculator submissions. Quotes are never stored.
type QuoteService struct {
	logger  *slog.Logger
	metrics metrics.Recorder
	now     func() time.Time
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(logger *slog.Logger, recorder metrics.Recorder) *QuoteService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &QuoteService{
		logger:  logger.With("component", "service.quote"),
		metrics: recorder,
		now:     time.Now,
	}
}

// Quote prices a typed request.
func (s *QuoteService) Quote(ctx context.Context, req QuoteRequest) (*model.Quote, error) {
	// A blank region is as absent as an omitted one, matching Form.Complete.
	if req.Region != nil && strings.TrimSpace(*req.Region) == "" {
		req.Region = nil
	}

	if err := checkPresence(req, ErrIncompleteQuote); err != nil {
		s.metrics.IncQuoteRejected("incomplete")
		return nil, err
	}

	region, err := estimator.ParseRegion(*req.Region)
	if err != nil {
		s.metrics.IncQuoteRejected("invalid")
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuote, err)
	}

	return s.price(ctx, estimator.Input{
		EnginePower:      *req.EnginePower,
		VehicleAge:       *req.VehicleAge,
		DriverExperience: *req.DriverExperience,
		Region:           region,
	}), nil
}

// QuoteForm prices the calculator fields as typed on the page.
func (s *QuoteService) QuoteForm(ctx context.Context, form estimator.Form) (*model.Quote, error) {
	in, err := form.Input()
	switch {
	case errors.Is(err, estimator.ErrIncomplete):
		s.metrics.IncQuoteRejected("incomplete")
		return nil, &MissingFieldsError{Err: ErrIncompleteQuote, Fields: blankFormFields(form)}
	case err != nil:
		s.metrics.IncQuoteRejected("invalid")
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuote, err)
	}

	return s.price(ctx, in), nil
}

func (s *QuoteService) price(ctx context.Context, in estimator.Input) *model.Quote {
	result := estimator.Estimate(in)

	quote := &model.Quote{
		ID:        ulid.Make().String(),
		Input:     in,
		Premium:   result.Premium,
		Breakdown: result.Breakdown,
		CreatedAt: s.now().UTC(),
	}

	s.metrics.IncQuoteCalculated(string(in.Region))
	s.metrics.ObserveQuotePremium(string(in.Region), quote.Premium)

	s.logger.DebugContext(ctx, "quote_calculated",
		"quote_id", quote.ID,
		"region", in.Region,
		"power_band", quote.PowerBand(),
		"premium", quote.Premium,
	)

	return quote
}

func blankFormFields(form estimator.Form) []string {
	fields := make([]string, 0, 4)
	if strings.TrimSpace(form.Power) == "" {
		fields = append(fields, "engine_power")
	}
	if strings.TrimSpace(form.Age) == "" {
		fields = append(fields, "vehicle_age")
	}
	if strings.TrimSpace(form.Experience) == "" {
		fields = append(fields, "driver_experience")
	}
	if strings.TrimSpace(form.Region) == "" {
		fields = append(fields, "region")
	}
	return fields
}
