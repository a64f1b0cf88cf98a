package content

import (
	"errors"
	"strings"
	"testing"
)

func TestLoad_Embedded(t *testing.T) {
	t.Parallel()

	p, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if p.Brand.Name != "АвтоСтрахование" {
		t.Errorf("Brand.Name = %q", p.Brand.Name)
	}
	if len(p.Nav) != 6 {
		t.Errorf("len(Nav) = %d, want 6", len(p.Nav))
	}
	if len(p.Hero.Stats) != 4 {
		t.Errorf("len(Hero.Stats) = %d, want 4", len(p.Hero.Stats))
	}
	if len(p.Services.Items) != 4 {
		t.Errorf("len(Services.Items) = %d, want 4", len(p.Services.Items))
	}
	if len(p.FAQ.Items) != 5 {
		t.Errorf("len(FAQ.Items) = %d, want 5", len(p.FAQ.Items))
	}
	if p.Contacts.Channels[2].Note != "Пн-Пт: 9:00-19:00" {
		t.Errorf("address note = %q", p.Contacts.Channels[2].Note)
	}
	if !p.HasSection("calculator") || p.HasSection("pricing") {
		t.Error("HasSection returned unexpected results")
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	valid := string(defaultYAML)

	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "duplicate nav id",
			yaml:    strings.Replace(valid, "- id: about", "- id: home", 1),
			wantErr: ErrDuplicateNavID,
		},
		{
			name:    "rating out of range",
			yaml:    strings.Replace(valid, "rating: 4", "rating: 7", 1),
			wantErr: ErrInvalidRating,
		},
		{
			name:    "cta to missing section",
			yaml:    strings.Replace(valid, "target: services", "target: pricing", 1),
			wantErr: ErrUnknownTarget,
		},
		{
			name:    "no brand",
			yaml:    "nav: []\n",
			wantErr: ErrEmptySection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte("brand: [unterminated")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestReview_Stars(t *testing.T) {
	t.Parallel()

	if got := (Review{Rating: 4}).Stars(); got != "★★★★☆" {
		t.Errorf("Stars() = %q", got)
	}
}
