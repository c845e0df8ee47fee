package export

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/san-kum/golsim/internal/life"
)

type SeriesData struct {
	RunID       string             `json:"run_id,omitempty"`
	GridLength  int                `json:"grid_length"`
	Frames      int                `json:"frames"`
	Interval    int                `json:"interval"`
	Populations []int              `json:"populations"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
	// Grids[k][i] is row i of frame k as a string of '0' and '1'.
	Grids [][]string `json:"grids"`
}

func NewSeriesData(runID string, ts *life.TimeSeries, interval int, metrics map[string]float64) SeriesData {
	data := SeriesData{
		RunID:       runID,
		GridLength:  ts.L,
		Frames:      ts.Frames,
		Interval:    interval,
		Populations: make([]int, ts.Frames),
		Metrics:     metrics,
		Grids:       make([][]string, ts.Frames),
	}

	row := make([]byte, ts.L)
	for k := 0; k < ts.Frames; k++ {
		g := ts.Frame(k)
		data.Populations[k] = g.Population()
		data.Grids[k] = make([]string, ts.L)
		for i := 0; i < ts.L; i++ {
			for j := range row {
				row[j] = '0' + byte(g.At(i, j))
			}
			data.Grids[k][i] = string(row)
		}
	}
	return data
}

func WriteJSON(w io.Writer, data SeriesData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(data), "[export.WriteJSON] failed to encode")
}
