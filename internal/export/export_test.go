package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/golsim/internal/life"
)

func TestGridToSVG(t *testing.T) {
	if GridToSVG(nil, 1) != "" {
		t.Error("expected empty svg for nil grid")
	}

	g := life.NewGrid(3)
	g.Set(0, 2, life.Alive)
	g.Set(1, 1, life.Alive)

	svg := GridToSVG(g, 10)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Errorf("malformed svg:\n%s", svg)
	}
	if !strings.Contains(svg, `width="30" height="30"`) {
		t.Error("svg size not scaled")
	}
	if n := strings.Count(svg, "<rect x="); n != 2 {
		t.Errorf("expected 2 cell rects, got %d", n)
	}
	if !strings.Contains(svg, `<rect x="20.0" y="0.0" width="10.0" height="10.0"/>`) {
		t.Error("cell (0,2) not drawn at x=20 y=0")
	}
}

func TestPopulationToSVG(t *testing.T) {
	if PopulationToSVG([]int{1}, 100, 50, "#fff") != "" {
		t.Error("expected empty svg for a single point")
	}

	svg := PopulationToSVG([]int{0, 5, 10}, 100, 50, "#00ff00")
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("stroke colour missing")
	}
	if !strings.Contains(svg, "M0.0,50.0 L50.0,27.5 L100.0,5.0") {
		t.Errorf("unexpected path:\n%s", svg)
	}
}

func TestWriteJSON(t *testing.T) {
	ts := life.NewTimeSeries(2, 1)
	ts.Frame(0).Set(0, 1, life.Alive)
	ts.Frame(1).Set(1, 0, life.Alive)
	ts.Frame(1).Set(1, 1, life.Alive)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewSeriesData("run_1", ts, 4, map[string]float64{"population": 2})); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var got SeriesData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.RunID != "run_1" || got.Frames != 2 || got.Interval != 4 {
		t.Errorf("unexpected header %+v", got)
	}
	if got.Populations[0] != 1 || got.Populations[1] != 2 {
		t.Errorf("populations = %v", got.Populations)
	}
	if got.Grids[0][0] != "01" || got.Grids[1][1] != "11" {
		t.Errorf("grids = %v", got.Grids)
	}
}
