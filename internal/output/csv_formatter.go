package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// CSVFormatter exports the percentile bands as one row per year with one
// column per rank, ready for a charting layer to consume.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	ranks := sortedRanks(report.Bands.Bands)
	header := []string{"year"}
	for _, rank := range ranks {
		header = append(header, fmt.Sprintf("p%d", rank))
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for t := 0; t < report.Bands.Years; t++ {
		row := []string{strconv.Itoa(t + 1)}
		for _, rank := range ranks {
			row = append(row, strconv.FormatFloat(report.Bands.Bands[rank][t], 'f', 2, 64))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
