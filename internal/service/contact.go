package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/avtostrahovanie/landing/internal/metrics"
	"github.com/avtostrahovanie/landing/internal/model"
)

// ContactService accepts contact form submissions.
// Submission is simulated: the request is acknowledged locally and nothing leaves the process.
type ContactService struct {
	logger  *slog.Logger
	metrics metrics.Recorder
	now     func() time.Time
}

// NewContactService creates a new ContactService.
func NewContactService(logger *slog.Logger, recorder metrics.Recorder) *ContactService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ContactService{
		logger:  logger.With("component", "service.contact"),
		metrics: recorder,
		now:     time.Now,
	}
}

// Submit acknowledges a contact request once name and phone are present.
func (s *ContactService) Submit(ctx context.Context, req model.ContactRequest) (*model.ContactReceipt, error) {
	req = req.Normalize()

	if err := checkPresence(req, ErrIncompleteContact); err != nil {
		s.metrics.IncContactSubmitted("rejected")
		return nil, err
	}

	receipt := &model.ContactReceipt{
		Reference:   ulid.Make().String(),
		Status:      model.ContactStatusAccepted,
		SubmittedAt: s.now().UTC(),
	}

	s.metrics.IncContactSubmitted(string(receipt.Status))

	// Personal data stays out of the logs.
	s.logger.InfoContext(ctx, "contact_submitted",
		"reference", receipt.Reference,
		"has_email", req.Email != "",
		"message_length", len([]rune(req.Message)),
	)

	return receipt, nil
}
