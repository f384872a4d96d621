package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"resume-builder/internal/countries"
)

type fakeEngine struct {
	lastHTML string
	lastRule countries.Rule
	pdf      []byte
	err      error
}

func (f *fakeEngine) Render(ctx context.Context, html string, rule countries.Rule) ([]byte, error) {
	f.lastHTML = html
	f.lastRule = rule
	if f.err != nil {
		return nil, f.err
	}
	return f.pdf, nil
}

func newTestRenderer(engine PDFEngine) *Renderer {
	return NewRenderer(countries.Defaults(), engine)
}

func TestRenderRequiresNameAndEmail(t *testing.T) {
	r := newTestRenderer(nil)
	cases := []Request{
		{Email: "jane@x.com", Country: "usa"},
		{Name: "Jane", Country: "usa"},
		{Name: "  ", Email: "jane@x.com"},
	}
	for i, req := range cases {
		if _, err := r.Render(context.Background(), req, false); !errors.Is(err, ErrValidation) {
			t.Fatalf("case %d: got %v, want ErrValidation", i, err)
		}
	}
}

func TestRenderNoLeftoverTokens(t *testing.T) {
	r := newTestRenderer(nil)
	for _, country := range []string{"usa", "uk", "canada", "germany", "australia", "nonexistent", ""} {
		res, err := r.Render(context.Background(), Request{
			Name: "Jane Doe", Email: "jane@x.com", Country: country,
		}, false)
		if err != nil {
			t.Fatalf("country %q: %v", country, err)
		}
		if strings.Contains(res.HTML, "{{") {
			t.Fatalf("country %q: leftover tokens in output", country)
		}
	}
}

func TestRenderUnknownCountryFallsBack(t *testing.T) {
	r := newTestRenderer(nil)
	res, err := r.Render(context.Background(), Request{Name: "John", Email: "j@x.com", Country: "nonexistent"}, false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if res.Country != "usa" || res.TemplateID != "usa" {
		t.Fatalf("expected usa fallback, got country=%s template=%s", res.Country, res.TemplateID)
	}
	if !strings.Contains(res.HTML, "United States") {
		t.Fatalf("expected USA display name in output")
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	r := newTestRenderer(nil)
	req := Request{
		Name: "Jane Doe", Email: "jane@x.com", Country: "germany",
		Summary: "Engineer", Experience: "A\nB", Education: "C", Skills: "Go",
		DateOfBirth: "1990-01-01", Nationality: "German", MaritalStatus: "Single",
	}
	first, err := r.Render(context.Background(), req, false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := r.Render(context.Background(), req, false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first.HTML != second.HTML {
		t.Fatalf("rendering is not deterministic")
	}
}

func TestRenderEscapesUserMarkup(t *testing.T) {
	r := newTestRenderer(nil)
	res, err := r.Render(context.Background(), Request{
		Name: "<script>alert(1)</script>", Email: "jane@x.com", Country: "usa",
	}, false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(res.HTML, "<script>alert(1)</script>") {
		t.Fatalf("user markup rendered live")
	}
	if !strings.Contains(res.HTML, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Fatalf("expected escaped name in output")
	}
}

func TestRenderDefaultsForAbsentFields(t *testing.T) {
	r := newTestRenderer(nil)
	res, err := r.Render(context.Background(), Request{Name: "Jane", Email: "jane@x.com", Country: "usa"}, false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{defaultPhone, defaultSummary, defaultSkills} {
		if !strings.Contains(res.HTML, want) {
			t.Fatalf("expected default %q in output", want)
		}
	}
	// Experience/education defaults flow through the multiline formatter.
	if !strings.Contains(res.HTML, "Details available upon request") {
		t.Fatalf("expected default experience/education blocks")
	}
}

func TestRenderGermanyPhotoPlaceholder(t *testing.T) {
	r := newTestRenderer(nil)
	res, err := r.Render(context.Background(), Request{Name: "Jane Doe", Email: "jane@x.com", Country: "germany"}, false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(res.HTML, "placeholder") {
		t.Fatalf("germany without photoUrl must show placeholder image")
	}
}

func TestRenderPDFPassesRuleToEngine(t *testing.T) {
	engine := &fakeEngine{pdf: []byte("%PDF-1.4 fake")}
	r := newTestRenderer(engine)
	res, err := r.Render(context.Background(), Request{Name: "Jane", Email: "jane@x.com", Country: "germany"}, true)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(res.PDF) == 0 {
		t.Fatalf("expected PDF bytes")
	}
	if engine.lastRule.PageSize != countries.PageA4 {
		t.Fatalf("expected A4 page for germany, got %q", engine.lastRule.PageSize)
	}
	if engine.lastHTML != res.HTML {
		t.Fatalf("engine received different HTML than result")
	}
}

func TestRenderPDFEngineFailure(t *testing.T) {
	engine := &fakeEngine{err: errors.New("chrome exploded")}
	r := newTestRenderer(engine)
	_, err := r.Render(context.Background(), Request{Name: "Jane", Email: "jane@x.com", Country: "usa"}, true)
	if !errors.Is(err, ErrRenderEngine) {
		t.Fatalf("got %v, want ErrRenderEngine", err)
	}
}

func TestRenderPDFWithoutEngine(t *testing.T) {
	r := newTestRenderer(nil)
	_, err := r.Render(context.Background(), Request{Name: "Jane", Email: "jane@x.com", Country: "usa"}, true)
	if !errors.Is(err, ErrRenderEngine) {
		t.Fatalf("got %v, want ErrRenderEngine", err)
	}
}
