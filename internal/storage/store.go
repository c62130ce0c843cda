package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/oceanfft/internal/config"
	"github.com/san-kum/oceanfft/internal/ocean"
	"github.com/san-kum/oceanfft/internal/surface"
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
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Resolution int                `json:"resolution"`
	PatchSize  float64            `json:"patch_size"`
	WindX      float64            `json:"wind_x"`
	WindY      float64            `json:"wind_y"`
	Choppiness float64            `json:"choppiness"`
	Seed       int64              `json:"seed"`
	Dt         float64            `json:"dt"`
	Ticks      int                `json:"ticks"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes a run directory holding metadata.json and the final
// displacement field as surface.csv, one row per cell.
func (s *Store) Save(cfg *config.Config, result *ocean.Result, disp *surface.Displacement) (string, error) {
	runID := fmt.Sprintf("ocean_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Resolution: cfg.Resolution,
		PatchSize:  cfg.PatchSize,
		WindX:      cfg.Wind.X,
		WindY:      cfg.Wind.Y,
		Choppiness: cfg.Choppiness,
		Seed:       cfg.Seed,
		Dt:         cfg.Dt,
		Ticks:      result.TicksTaken,
		Metrics:    result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "surface.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "dx", "height", "dz"}); err != nil {
		return "", err
	}

	n := disp.N
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			d := disp.At(x, y)
			row := []string{
				strconv.Itoa(x),
				strconv.Itoa(y),
				strconv.FormatFloat(d.X, 'f', 6, 64),
				strconv.FormatFloat(d.Y, 'f', 6, 64),
				strconv.FormatFloat(d.Z, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
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
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSurface reads surface.csv back into a displacement field. The
// grid size comes from the run's metadata.
func (s *Store) LoadSurface(runID string) (*surface.Displacement, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	csvPath := filepath.Join(s.baseDir, runID, "surface.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	disp := surface.NewDisplacement(meta.Resolution)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 5 {
			continue
		}

		x, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		y, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}
		if x < 0 || x >= meta.Resolution || y < 0 || y >= meta.Resolution {
			continue
		}

		dx, _ := strconv.ParseFloat(record[2], 64)
		h, _ := strconv.ParseFloat(record[3], 64)
		dz, _ := strconv.ParseFloat(record[4], 64)
		disp.Set(x, y, surface.Vec3{X: dx, Y: h, Z: dz})
	}

	return disp, nil
}
