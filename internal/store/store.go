package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tomaskol/sigflow/internal/models"
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
	ID        string             `json:"id"`
	Model     string             `json:"model"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Columns   []string           `json:"columns"`
	Stats     map[string]float64 `json:"stats"`
}

// Save persists one run as metadata.json plus trace.csv under a fresh run
// directory and returns the run ID.
func (s *Store) Save(model string, dt, duration float64, trace *models.Trace, stats map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%s", model, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Model:     model,
		Timestamp: time.Now(),
		Dt:        dt,
		Duration:  duration,
		Columns:   trace.Columns,
		Stats:     stats,
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

	header := append([]string{"time"}, trace.Columns...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, row := range trace.Rows {
		record := []string{strconv.FormatFloat(trace.Times[i], 'f', 6, 64)}
		for _, val := range row {
			record = append(record, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(record); err != nil {
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

// LoadTrace reads a persisted trace back into memory.
func (s *Store) LoadTrace(runID string) (*models.Trace, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
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
	if len(records) < 1 {
		return nil, fmt.Errorf("store: empty trace for run %s", runID)
	}

	trace := models.NewTrace(records[0][1:])
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		row := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			row = append(row, val)
		}
		trace.Append(t, row)
	}
	return trace, nil
}

// ExportJSON writes a run (metadata plus full trace) as indented JSON.
func ExportJSON(w *json.Encoder, meta *RunMetadata, trace *models.Trace) error {
	return w.Encode(struct {
		Meta  *RunMetadata  `json:"meta"`
		Trace *models.Trace `json:"trace"`
	}{Meta: meta, Trace: trace})
}
