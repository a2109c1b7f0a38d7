package store

import (
	"math"
	"strings"
	"testing"

	"github.com/tomaskol/sigflow/internal/models"
)

func sampleTrace() *models.Trace {
	tr := models.NewTrace([]string{"pos", "vel"})
	tr.Append(0.1, []float64{9.804, -0.98})
	tr.Append(0.2, []float64{9.412, -2.94})
	return tr
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("bouncing_ball", 0.1, 0.2, sampleTrace(), map[string]float64{"pos_min": 9.412})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "bouncing_ball_") {
		t.Errorf("run ID should carry the model name, got %s", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Model != "bouncing_ball" || meta.Dt != 0.1 {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.Stats["pos_min"] != 9.412 {
		t.Errorf("expected saved stats, got %+v", meta.Stats)
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if trace.Len() != 2 {
		t.Fatalf("expected 2 samples, got %d", trace.Len())
	}
	pos, err := trace.Column("pos")
	if err != nil {
		t.Fatalf("column: %v", err)
	}
	if math.Abs(pos[0]-9.804) > 1e-6 {
		t.Errorf("expected pos[0] 9.804, got %f", pos[0])
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

func TestListFindsRuns(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := st.Save("clock", 0.1, 1.0, sampleTrace(), nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := st.Save("cooling", 0.01, 1.0, sampleTrace(), nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("missing_run"); err == nil {
		t.Error("expected error for unknown run")
	}
}
