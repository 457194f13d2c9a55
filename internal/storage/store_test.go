package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/san-kum/lorenz63/internal/config"
	"github.com/san-kum/lorenz63/internal/integrators"
	"github.com/san-kum/lorenz63/internal/lorenz"
	"github.com/san-kum/lorenz63/internal/sim"
)

func runReference(t *testing.T, cfg config.Config) *Store {
	t.Helper()

	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	dyn := lorenz.NewWith(cfg.Prandtl, cfg.Rayleigh, cfg.Beta)
	result, err := sim.New(dyn, integrators.NewEuler()).Run(context.Background(), cfg.InitialState(), cfg.RunConfig())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if _, err := st.Save("euler", cfg, result); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	return st
}

func TestSaveAndList(t *testing.T) {
	cfg := config.Default()
	st := runReference(t, cfg)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	run := runs[0]
	if run.Integrator != "euler" {
		t.Errorf("expected integrator euler, got %s", run.Integrator)
	}
	if run.Config != cfg {
		t.Errorf("metadata config mismatch: %+v", run.Config)
	}
	if run.Steps != 99 {
		t.Errorf("expected 99 steps, got %d", run.Steps)
	}
}

func TestLoadStates(t *testing.T) {
	cfg := config.Default()
	st := runReference(t, cfg)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	states, times, err := st.LoadStates(runs[0].ID)
	if err != nil {
		t.Fatalf("load states failed: %v", err)
	}

	if len(states) != 100 || len(times) != 100 {
		t.Fatalf("expected 100 samples, got %d states / %d times", len(states), len(times))
	}

	for i, s := range states {
		if len(s) != 3 {
			t.Fatalf("sample %d has %d coordinates", i, len(s))
		}
	}
	if states[0][0] != 1.0 || states[0][1] != 1.0 || states[0][2] != 1.0 {
		t.Errorf("initial sample should be (1,1,1), got %v", states[0])
	}
	// CSV carries 8 decimal digits; the first step is exact at that
	// precision.
	if math.Abs(states[1][1]-1.008) > 1e-8 || math.Abs(states[1][2]-0.973) > 1e-8 {
		t.Errorf("first step should be ~(1, 1.008, 0.973), got %v", states[1])
	}
}

func TestListEmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/missing")

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	cfg := config.Default()
	st := runReference(t, cfg)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	meta, err := st.Load(runs[0].ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	states, times, err := st.LoadStates(runs[0].ID)
	if err != nil {
		t.Fatalf("load states failed: %v", err)
	}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, states, times); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var back ExportData
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if back.Steps != 100 || len(back.States) != 100 {
		t.Errorf("export carries %d steps / %d states, want 100", back.Steps, len(back.States))
	}
	if back.Config.Beta != cfg.Beta {
		t.Errorf("export config mismatch: %+v", back.Config)
	}
}
