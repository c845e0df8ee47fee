package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/san-kum/golsim/internal/life"
)

const (
	metadataFile   = "metadata.json"
	seriesFile     = "series.npy"
	populationFile = "population.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return errors.Wrapf(os.MkdirAll(s.baseDir, 0755), "[storage.Init] failed to create %s", s.baseDir)
}

// Dir returns the directory holding a run.
func (s *Store) Dir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	GridLength int                `json:"grid_length"`
	Sweeps     int                `json:"sweeps"`
	Frames     int                `json:"frames"`
	Interval   int                `json:"interval"`
	Density    float64            `json:"density"`
	Pattern    string             `json:"pattern,omitempty"`
	Sweeper    string             `json:"sweeper"`
	Elapsed    time.Duration      `json:"elapsed_ns"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes a new run directory named after meta.Name and returns its id.
// meta.ID and meta.Timestamp are filled in.
func (s *Store) Save(meta RunMetadata, series *life.TimeSeries) (string, error) {
	now := time.Now()
	base := fmt.Sprintf("%s_%d", meta.Name, now.Unix())

	runID, runDir := base, s.Dir(base)
	for n := 1; ; n++ {
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", errors.Wrapf(err, "[storage.Save] failed to create %s", runDir)
		}
		runID = fmt.Sprintf("%s-%d", base, n)
		runDir = s.Dir(runID)
	}

	meta.ID = runID
	meta.Timestamp = now
	if err := writeRun(runDir, meta, series); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	return runID, nil
}

func writeRun(runDir string, meta RunMetadata, series *life.TimeSeries) error {
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return err
	}
	if err := writeSeries(filepath.Join(runDir, seriesFile), series); err != nil {
		return err
	}
	return writePopulation(filepath.Join(runDir, populationFile), series, meta.Interval)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[storage] failed to create %s", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return errors.Wrapf(enc.Encode(v), "[storage] failed to encode %s", path)
}

func writeSeries(path string, series *life.TimeSeries) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[storage] failed to create %s", path)
	}
	if err := WriteNPY(f, series); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "[storage] failed to close %s", path)
}

func writePopulation(path string, series *life.TimeSeries, interval int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[storage] failed to create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"frame", "sweep", "population"}); err != nil {
		return err
	}
	for k := 0; k < series.Frames; k++ {
		row := []string{
			strconv.Itoa(k),
			strconv.Itoa(k * interval),
			strconv.Itoa(series.Frame(k).Population()),
		}
		if err := w.Write(row); err != nil {
			return errors.Wrapf(err, "[storage] failed to write %s", path)
		}
	}
	w.Flush()
	return errors.Wrapf(w.Error(), "[storage] failed to flush %s", path)
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, errors.Wrapf(err, "[storage.List] failed to read %s", s.baseDir)
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.Dir(runID), metadataFile)
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, errors.Wrapf(err, "[storage.Load] failed to read %s", metaPath)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "[storage.Load] failed to unmarshal %s", metaPath)
	}
	return &meta, nil
}

func (s *Store) LoadSeries(runID string) (*life.TimeSeries, error) {
	path := filepath.Join(s.Dir(runID), seriesFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[storage.LoadSeries] failed to open %s", path)
	}
	defer f.Close()

	ts, err := ReadNPY(f)
	return ts, errors.Wrapf(err, "[storage.LoadSeries] %s", path)
}

// LoadPopulation reads the per-frame population table back.
func (s *Store) LoadPopulation(runID string) (sweeps, pops []int, err error) {
	path := filepath.Join(s.Dir(runID), populationFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[storage.LoadPopulation] failed to open %s", path)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[storage.LoadPopulation] failed to parse %s", path)
	}

	for _, record := range records[min(1, len(records)):] {
		if len(record) != 3 {
			continue
		}
		sweep, err1 := strconv.Atoi(record[1])
		pop, err2 := strconv.Atoi(record[2])
		if err1 != nil || err2 != nil {
			continue
		}
		sweeps = append(sweeps, sweep)
		pops = append(pops, pop)
	}
	return sweeps, pops, nil
}
