package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/lorenz63/internal/config"
)

type ExportData struct {
	ID         string        `json:"id"`
	Integrator string        `json:"integrator"`
	Config     config.Config `json:"config"`
	Steps      int           `json:"steps"`
	Times      []float64     `json:"times"`
	States     [][]float64   `json:"states"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, states [][]float64, times []float64) error {
	data := ExportData{
		ID:         meta.ID,
		Integrator: meta.Integrator,
		Config:     meta.Config,
		Steps:      len(times),
		Times:      times,
		States:     states,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSONStdout(meta *RunMetadata, states [][]float64, times []float64) error {
	return ExportJSON(os.Stdout, meta, states, times)
}
