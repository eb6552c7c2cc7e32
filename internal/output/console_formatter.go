package output

import (
	"bytes"
	"fmt"
	"sort"
)

// ConsoleFormatter renders the percentile bands as a fixed-width table for
// terminal reading.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "WEALTH PROJECTION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Starting assets: %s  Annual return: %s  Inflation: %s\n",
		Currency(report.Params.StartingAssets),
		Percent(report.Params.AnnualReturn),
		Percent(report.Params.InflationRate),
	)
	fmt.Fprintf(&buf, "Contribution: %s growing %s/yr over %d years\n",
		Currency(report.Params.InitialContribution),
		Percent(report.Params.ContributionGrowthRate),
		report.Params.Years,
	)
	fmt.Fprintf(&buf, "Paths: %d  Seed: %d  View: %s\n", report.PathCount, report.Seed, report.View)
	fmt.Fprintln(&buf)

	ranks := sortedRanks(report.Bands.Bands)
	fmt.Fprintf(&buf, "%-6s", "Year")
	for _, rank := range ranks {
		fmt.Fprintf(&buf, "%18s", fmt.Sprintf("p%d", rank))
	}
	fmt.Fprintln(&buf)
	for t := 0; t < report.Bands.Years; t++ {
		fmt.Fprintf(&buf, "%-6d", t+1)
		for _, rank := range ranks {
			fmt.Fprintf(&buf, "%18s", Currency(report.Bands.Bands[rank][t]))
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Median final balance: %s\n", Currency(report.MedianFinalBalance))
	fmt.Fprintf(&buf, "Scheduled contributions: %s\n", Currency(report.ScheduledContributions))
	return buf.Bytes(), nil
}

func sortedRanks(bands map[int][]float64) []int {
	ranks := make([]int, 0, len(bands))
	for rank := range bands {
		ranks = append(ranks, rank)
	}
	sort.Ints(ranks)
	return ranks
}
