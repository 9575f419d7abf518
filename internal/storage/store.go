// Package storage persists script runs as per-run directories with a
// metadata.json and a trace.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/dynarr/internal/replay"
)

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
	ID              string    `json:"id"`
	Script          string    `json:"script"`
	Timestamp       time.Time `json:"timestamp"`
	InitialCapacity int       `json:"initial_capacity"`
	Steps           int       `json:"steps"`
	FinalLen        int       `json:"final_len"`
	FinalCap        int       `json:"final_cap"`
	FinalItems      []int     `json:"final_items"`
}

// TracePoint is one row of a saved trace: the array's length and
// capacity after a step.
type TracePoint struct {
	Step int
	Op   string
	Len  int
	Cap  int
}

func (s *Store) Save(res *replay.Result) (string, error) {
	name := res.Script.Name
	if name == "" {
		name = "run"
	}
	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:              runID,
		Script:          name,
		Timestamp:       time.Now(),
		InitialCapacity: res.Script.InitialCapacity,
		Steps:           len(res.Steps),
		FinalLen:        res.Array.Len(),
		FinalCap:        res.Array.Cap(),
		FinalItems:      res.Array.Items(),
	}

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

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"step", "op", "len", "cap"}); err != nil {
		return "", err
	}
	for i, step := range res.Steps {
		row := []string{
			strconv.Itoa(i),
			step.Op,
			strconv.Itoa(step.Len),
			strconv.Itoa(step.Cap),
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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
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

func (s *Store) LoadTrace(runID string) ([]TracePoint, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []TracePoint{}, nil
	}

	points := make([]TracePoint, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		step, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("bad step %q: %w", record[0], err)
		}
		length, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("bad len %q: %w", record[2], err)
		}
		capacity, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("bad cap %q: %w", record[3], err)
		}
		points = append(points, TracePoint{Step: step, Op: record[1], Len: length, Cap: capacity})
	}

	return points, nil
}
