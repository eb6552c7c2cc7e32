package output

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/nestegg/wealth-projector/internal/domain"
)

func buildTestReport() *Report {
	params := domain.SimulationParams{
		StartingAssets:         100000,
		AnnualReturn:           0.07,
		InitialContribution:    20000,
		ContributionGrowthRate: 0.05,
		InflationRate:          0.025,
		Years:                  2,
	}
	results := []domain.PathResult{
		{
			Years: []domain.YearRecord{
				{Year: 1, EndingBalance: 128000, RealEndingBalance: 125000},
				{Year: 2, EndingBalance: 160000, RealEndingBalance: 152000},
			},
			FinalBalance: 160000,
		},
		{
			Years: []domain.YearRecord{
				{Year: 1, EndingBalance: 120000, RealEndingBalance: 118000},
				{Year: 2, EndingBalance: 140000, RealEndingBalance: 133000},
			},
			FinalBalance: 140000,
		},
	}
	bands := domain.PercentileBands{
		Years: 2,
		Bands: map[int][]float64{
			10: {120000, 140000},
			50: {128000, 160000},
			90: {128000, 160000},
		},
	}
	return NewReport(params, 42, "nominal", []int{10, 50, 90}, results, bands)
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "WEALTH PROJECTION") {
		t.Fatalf("expected heading, got: %s", content)
	}
	if !strings.Contains(content, "Seed: 42") {
		t.Errorf("expected seed echo, got: %s", content)
	}
	if !strings.Contains(content, "$160000.00") {
		t.Errorf("expected currency-formatted band value, got: %s", content)
	}
}

func TestCSVFormatterShape(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 year rows, got %d lines", len(lines))
	}
	if lines[0] != "year,p10,p50,p90" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,") || !strings.HasPrefix(lines[2], "2,") {
		t.Errorf("rows should be keyed by year: %q %q", lines[1], lines[2])
	}
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	report := buildTestReport()
	out, err := JSONFormatter{}.Format(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Seed != report.Seed || decoded.PathCount != report.PathCount {
		t.Errorf("round trip lost fields: %+v", decoded)
	}
}

func TestGetFormatterByName(t *testing.T) {
	cases := map[string]string{
		"console": "console",
		"CSV":     "csv",
		"txt":     "console",
		"json":    "json",
	}
	for in, want := range cases {
		f := GetFormatterByName(in)
		if f == nil || f.Name() != want {
			t.Errorf("GetFormatterByName(%q) = %v, want %q", in, f, want)
		}
	}
	if f := GetFormatterByName("parquet"); f != nil {
		t.Errorf("expected nil for unknown format, got %q", f.Name())
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(buildTestReport(), "parquet")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestNewReportSummaries(t *testing.T) {
	report := buildTestReport()
	// Nearest-rank median of finals {140000, 160000}: index 1.
	if report.MedianFinalBalance != 160000 {
		t.Errorf("median final balance %v, want 160000", report.MedianFinalBalance)
	}
	// Scheduled contributions: 20000 + 20000*1.05.
	want := 41000.0
	if math.Abs(report.ScheduledContributions-want) > 1e-6 {
		t.Errorf("scheduled contributions %v, want %v", report.ScheduledContributions, want)
	}
}
