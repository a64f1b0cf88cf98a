package view

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avtostrahovanie/landing/internal/content"
	"github.com/avtostrahovanie/landing/internal/estimator"
	"github.com/avtostrahovanie/landing/internal/model"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	page, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load() error = %v", err)
	}
	r, err := New(page, "https://avtostrahovanie.ru/")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func render(t *testing.T, r *Renderer, v View) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Render(&buf, v); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestRender_AllSections(t *testing.T) {
	t.Parallel()

	out := render(t, newRenderer(t), View{})

	for _, id := range []string{"home", "about", "services", "calculator", "faq", "reviews", "contacts"} {
		if !strings.Contains(out, `id="`+id+`"`) {
			t.Errorf("page missing section %q", id)
		}
	}
	for _, text := range []string{"АвтоСтрахование", "Калькулятор стоимости ОСАГО", "от 35 000 ₽/год", "<details>", "★★★★☆"} {
		if !strings.Contains(out, text) {
			t.Errorf("page missing %q", text)
		}
	}
	if strings.Contains(out, `class="result"`) {
		t.Error("result panel shown without a quote")
	}
}

func TestRender_ActiveSection(t *testing.T) {
	t.Parallel()

	r := newRenderer(t)

	tests := []struct {
		name    string
		section string
		want    string
	}{
		{name: "known section", section: "faq", want: `href="/?section=faq#faq" class="active"`},
		{name: "empty falls back to home", section: "", want: `href="/?section=home#home" class="active"`},
		{name: "unknown falls back to home", section: "pricing", want: `href="/?section=home#home" class="active"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := render(t, r, View{ActiveSection: tt.section})
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q", tt.want)
			}
			if n := strings.Count(out, `class="active"`); n != 1 {
				t.Errorf("active items = %d, want 1", n)
			}
		})
	}
}

func TestRender_Result(t *testing.T) {
	t.Parallel()

	quote := &model.Quote{ID: "01HQ0000000000000000000000", Premium: 40320, CreatedAt: time.Now()}
	out := render(t, newRenderer(t), View{
		Form:  estimator.Form{Power: "151", Age: "11", Experience: "2", Region: "moscow"},
		Quote: quote,
	})

	if !strings.Contains(out, `data-quote-id="01HQ0000000000000000000000"`) {
		t.Error("result panel missing")
	}
	if !strings.Contains(out, estimator.FormatPremium(40320)+" ₽") {
		t.Errorf("formatted premium missing")
	}
	if !strings.Contains(out, `value="151"`) {
		t.Error("power field not prefilled")
	}
	if !strings.Contains(out, `<option value="moscow" selected>`) {
		t.Error("region not selected")
	}
}

func TestRender_RegionAliasSelected(t *testing.T) {
	t.Parallel()

	out := render(t, newRenderer(t), View{Form: estimator.Form{Region: "spb"}})
	if !strings.Contains(out, `<option value="saint-petersburg" selected>`) {
		t.Error("alias spb did not select saint-petersburg")
	}
}

func TestRender_EscapesInput(t *testing.T) {
	t.Parallel()

	out := render(t, newRenderer(t), View{
		Form:    estimator.Form{Power: `"><script>alert(1)</script>`},
		Contact: model.ContactRequest{Message: "<b>hi</b>"},
	})
	if strings.Contains(out, "<script>alert(1)</script>") || strings.Contains(out, "<b>hi</b>") {
		t.Error("user input rendered unescaped")
	}
}

func TestRender_Contact(t *testing.T) {
	t.Parallel()

	r := newRenderer(t)

	t.Run("missing fields are marked", func(t *testing.T) {
		t.Parallel()
		out := render(t, r, View{
			Contact:        model.ContactRequest{Name: "Анна"},
			ContactMissing: []string{"phone"},
			ContactError:   "Заполните обязательные поля",
		})
		if n := strings.Count(out, `class="invalid"`); n != 1 {
			t.Errorf("invalid fields = %d, want 1", n)
		}
		if !strings.Contains(out, `value="Анна"`) {
			t.Error("name not preserved")
		}
		if !strings.Contains(out, "Заполните обязательные поля") {
			t.Error("error message missing")
		}
	})

	t.Run("receipt replaces form", func(t *testing.T) {
		t.Parallel()
		out := render(t, r, View{Receipt: &model.ContactReceipt{Reference: "01HQREF", Status: model.ContactStatusAccepted}})
		if strings.Contains(out, `class="contact-form"`) {
			t.Error("form still shown after submission")
		}
		if !strings.Contains(out, "Спасибо! Мы свяжемся с вами") {
			t.Error("success message missing")
		}
	})
}

func TestRender_Canonical(t *testing.T) {
	t.Parallel()

	out := render(t, newRenderer(t), View{})
	if !strings.Contains(out, `<link rel="canonical" href="https://avtostrahovanie.ru/">`) {
		t.Error("canonical link missing")
	}
}

func TestStatic(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/static/site.css", nil)
	rec := httptest.NewRecorder()
	newRenderer(t).Static().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("Content-Type = %q, want text/css", ct)
	}

	rec = httptest.NewRecorder()
	newRenderer(t).Static().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/missing.css", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing asset status = %d, want 404", rec.Code)
	}
}

func TestIcon(t *testing.T) {
	t.Parallel()

	if icon("car") == icon("nope") {
		t.Error("known icon rendered as fallback")
	}
	if icon("nope") != "•" {
		t.Errorf("icon(nope) = %q", icon("nope"))
	}
}
