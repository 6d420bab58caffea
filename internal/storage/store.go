package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/orbitlab/internal/orbit"
)

// Store persists completed simulation runs under a base directory, one
// subdirectory per run: metadata.json plus frames.csv with per-body
// positions over time.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	G          float64            `json:"g"`
	Dt         float64            `json:"dt"`
	TimeScale  float64            `json:"time_scale"`
	Steps      int                `json:"steps"`
	Bodies     int                `json:"bodies"`
	Satellites int                `json:"satellites"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Frame is one recorded step: elapsed simulation time plus every body's
// position at that step.
type Frame struct {
	Time      float64
	Positions []orbit.Vec2
}

// Save writes a run directory and returns its id. Frames may have grown
// mid-run; the CSV carries columns for the final body count and leaves
// earlier columns blank where a body did not exist yet.
func (s *Store) Save(meta RunMetadata, frames []Frame) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Steps = len(frames)

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(frames) == 0 {
		return runID, nil
	}

	nBodies := 0
	for _, f := range frames {
		if len(f.Positions) > nBodies {
			nBodies = len(f.Positions)
		}
	}

	header := []string{"time"}
	for i := 0; i < nBodies; i++ {
		header = append(header, fmt.Sprintf("b%d_x", i), fmt.Sprintf("b%d_y", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, f := range frames {
		row := []string{strconv.FormatFloat(f.Time, 'f', 6, 64)}
		for i := 0; i < nBodies; i++ {
			if i < len(f.Positions) {
				row = append(row,
					strconv.FormatFloat(f.Positions[i].X, 'f', 6, 64),
					strconv.FormatFloat(f.Positions[i].Y, 'f', 6, 64))
			} else {
				row = append(row, "", "")
			}
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
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
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Frame{}, nil
	}

	frames := make([]Frame, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 1 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		f := Frame{Time: t}
		for j := 1; j+1 < len(record); j += 2 {
			if record[j] == "" {
				break
			}
			x, errX := strconv.ParseFloat(record[j], 64)
			y, errY := strconv.ParseFloat(record[j+1], 64)
			if errX != nil || errY != nil {
				break
			}
			f.Positions = append(f.Positions, orbit.Vec2{X: x, Y: y})
		}
		frames = append(frames, f)
	}
	return frames, nil
}
