package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/avtostrahovanie/landing/internal/estimator"
	"github.com/avtostrahovanie/landing/internal/metrics"
	"github.com/avtostrahovanie/landing/internal/model"
	"github.com/avtostrahovanie/landing/internal/service"
	"github.com/avtostrahovanie/landing/internal/view"
)

// Messages shown on the page.
const (
	msgCalcIncomplete    = "Заполните все поля, чтобы рассчитать стоимость"
	msgCalcInvalid       = "Проверьте введённые значения"
	msgContactIncomplete = "Укажите имя и телефон"
	msgContactBadForm    = "Не удалось отправить заявку, попробуйте ещё раз"
)

// PageHandler renders the landing page.
type PageHandler struct {
	renderer *view.Renderer
	quotes   *service.QuoteService
	contacts *service.ContactService
	metrics  metrics.Recorder
	logger   *slog.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(
	renderer *view.Renderer,
	quotes *service.QuoteService,
	contacts *service.ContactService,
	recorder metrics.Recorder,
	logger *slog.Logger,
) *PageHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &PageHandler{
		renderer: renderer,
		quotes:   quotes,
		contacts: contacts,
		metrics:  recorder,
		logger:   logger,
	}
}

// Index handles GET /.
// The calculator form submits here with power, age, exp and region; the
// premium is shown once all four are present.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	v := view.View{
		ActiveSection: query.Get("section"),
		Form: estimator.Form{
			Power:      query.Get("power"),
			Age:        query.Get("age"),
			Experience: query.Get("exp"),
			Region:     query.Get("region"),
		},
	}

	if !v.Form.Empty() {
		quote, err := h.quotes.QuoteForm(r.Context(), v.Form)
		switch {
		case err == nil:
			v.Quote = quote
		case errors.Is(err, service.ErrIncompleteQuote):
			v.CalcError = msgCalcIncomplete
		case errors.Is(err, service.ErrInvalidQuote):
			v.CalcError = msgCalcInvalid
		default:
			h.logger.Error("quote_failed", "error", err)
			v.CalcError = msgCalcInvalid
		}
	}

	h.render(w, r, http.StatusOK, v)
}

// Contact handles POST /contact.
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	v := view.View{ActiveSection: "contacts"}

	if err := r.ParseForm(); err != nil {
		v.ContactError = msgContactBadForm
		h.render(w, r, http.StatusBadRequest, v)
		return
	}

	v.Contact = model.ContactRequest{
		Name:    r.PostForm.Get("name"),
		Phone:   r.PostForm.Get("phone"),
		Email:   r.PostForm.Get("email"),
		Message: r.PostForm.Get("message"),
	}

	receipt, err := h.contacts.Submit(r.Context(), v.Contact)
	switch {
	case err == nil:
		v.Receipt = receipt
		v.Contact = model.ContactRequest{}
		h.render(w, r, http.StatusOK, v)
	case errors.Is(err, service.ErrIncompleteContact):
		v.ContactMissing = service.MissingFields(err)
		v.ContactError = msgContactIncomplete
		h.render(w, r, http.StatusUnprocessableEntity, v)
	default:
		h.logger.Error("contact_failed", "error", err)
		v.ContactError = msgContactBadForm
		h.render(w, r, http.StatusInternalServerError, v)
	}
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, v view.View) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, v); err != nil {
		h.logger.Error("render_failed", "error", err, "path", r.URL.Path)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.metrics.IncPageRendered()
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
