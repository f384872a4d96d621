package pdf

import (
	"testing"
	"time"

	"resume-builder/internal/countries"
)

func TestPrintParamsUseRuleGeometry(t *testing.T) {
	rule := countries.Rule{
		PageSize: countries.PageA4,
		Margins:  countries.Margins{Top: 0.75, Right: 0.5, Bottom: 1.0, Left: 0.25},
	}
	params := printParams(rule)
	if params.PaperWidth != 8.27 || params.PaperHeight != 11.69 {
		t.Fatalf("A4 paper: got %vx%v", params.PaperWidth, params.PaperHeight)
	}
	if params.MarginTop != 0.75 || params.MarginRight != 0.5 || params.MarginBottom != 1.0 || params.MarginLeft != 0.25 {
		t.Fatalf("margins not applied: %+v", params)
	}
	if !params.PrintBackground {
		t.Fatalf("background printing must stay on for styled templates")
	}
}

func TestPrintParamsLetter(t *testing.T) {
	params := printParams(countries.Rule{PageSize: countries.PageLetter})
	if params.PaperWidth != 8.5 || params.PaperHeight != 11.0 {
		t.Fatalf("Letter paper: got %vx%v", params.PaperWidth, params.PaperHeight)
	}
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(Options{})
	if e.timeout != DefaultTimeout {
		t.Fatalf("timeout default: got %v", e.timeout)
	}
	if cap(e.sem) != DefaultMaxConcurrent {
		t.Fatalf("concurrency default: got %d", cap(e.sem))
	}

	e = NewEngine(Options{Timeout: 3 * time.Second, MaxConcurrent: 5})
	if e.timeout != 3*time.Second || cap(e.sem) != 5 {
		t.Fatalf("options not applied: timeout=%v cap=%d", e.timeout, cap(e.sem))
	}
}
