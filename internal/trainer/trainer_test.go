package trainer

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/adapters/history"
	"github.com/seabroker/email-classifier/internal/core"
	"github.com/seabroker/email-classifier/internal/corpus"
	"github.com/seabroker/email-classifier/internal/dataset"
	"github.com/seabroker/email-classifier/internal/features"
	"github.com/seabroker/email-classifier/internal/inference"
)

func sampleDataset(t *testing.T) *core.Dataset {
	t.Helper()
	builder := dataset.NewBuilder(features.NewExtractor(), zap.NewNop())
	ds, err := builder.Build(corpus.Sample())
	if err != nil {
		t.Fatalf("failed to build sample dataset: %v", err)
	}
	return ds
}

func newTrainer() (*Trainer, *history.MemoryStore) {
	store := history.NewMemoryStore(zap.NewNop())
	return New(zap.NewNop(), store), store
}

// stubClassifier predicts the class encoded in the first feature and fails
// on demand, so selection policy can be tested without real fitting.
type stubClassifier struct {
	fitErr error
}

func (s *stubClassifier) Fit(X [][]float64, y []int) error {
	return s.fitErr
}

func (s *stubClassifier) Predict(X [][]float64) ([]int, error) {
	out := make([]int, len(X))
	for i, row := range X {
		if row[0] >= 0.5 {
			out[i] = 1
		}
	}
	return out, nil
}

func (s *stubClassifier) PredictProba(X [][]float64) ([][]float64, error) {
	preds, _ := s.Predict(X)
	out := make([][]float64, len(X))
	for i, p := range preds {
		out[i] = []float64{float64(1 - p), float64(p)}
	}
	return out, nil
}

// stubDataset encodes the label directly in its single feature, making every
// stub candidate a perfect scorer.
func stubDataset(perClass int) *core.Dataset {
	ds := &core.Dataset{Columns: []string{"f0"}}
	for i := 0; i < perClass; i++ {
		ds.Rows = append(ds.Rows, []float64{0})
		ds.Labels = append(ds.Labels, core.LabelCargo)
	}
	for i := 0; i < perClass; i++ {
		ds.Rows = append(ds.Rows, []float64{1})
		ds.Labels = append(ds.Labels, core.LabelVessel)
	}
	return ds
}

func stubCandidate(name string, fitErr error) Candidate {
	return Candidate{
		Name: name,
		New: func(seed int64) core.Classifier {
			return &stubClassifier{fitErr: fitErr}
		},
	}
}

func TestTrainDeterministic(t *testing.T) {
	ds := sampleDataset(t)

	tr1, _ := newTrainer()
	first, err := tr1.Train(context.Background(), ds, DefaultConfig())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	tr2, _ := newTrainer()
	second, err := tr2.Train(context.Background(), ds, DefaultConfig())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if first.Metadata.ModelType != second.Metadata.ModelType {
		t.Fatalf("model type differs: %s vs %s", first.Metadata.ModelType, second.Metadata.ModelType)
	}
	if first.Metadata.Accuracy != second.Metadata.Accuracy {
		t.Fatalf("accuracy differs: %v vs %v", first.Metadata.Accuracy, second.Metadata.Accuracy)
	}
}

func TestTrainMetadata(t *testing.T) {
	ds := sampleDataset(t)
	tr, store := newTrainer()

	bundle, err := tr.Train(context.Background(), ds, DefaultConfig())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	meta := bundle.Metadata
	if !reflect.DeepEqual(meta.FeatureColumns, core.FeatureColumns()) {
		t.Errorf("feature_columns = %v, want canonical order", meta.FeatureColumns)
	}
	if len(meta.FeatureColumns) != len(ds.Columns) {
		t.Errorf("feature_columns length %d, dataset has %d", len(meta.FeatureColumns), len(ds.Columns))
	}
	if !reflect.DeepEqual(meta.Classes, []string{"CARGO", "VESSEL"}) {
		t.Errorf("classes = %v, want [CARGO VESSEL]", meta.Classes)
	}

	scaleSensitive := meta.ModelType == "LogisticRegression" || meta.ModelType == "SVM"
	if meta.NeedsScaling != scaleSensitive {
		t.Errorf("needs_scaling = %v for model %s", meta.NeedsScaling, meta.ModelType)
	}
	if meta.NeedsScaling && bundle.Scaler == nil {
		t.Errorf("scale-sensitive selection must carry a scaler")
	}
	if !meta.NeedsScaling && bundle.Scaler != nil {
		t.Errorf("tree selection must not carry a scaler")
	}

	entries := store.Entries()
	if len(entries) == 0 {
		t.Fatalf("expected run history entries")
	}
	selected := 0
	for _, e := range entries {
		if e.Selected {
			selected++
			if e.ModelType != meta.ModelType {
				t.Errorf("selected history entry is %s, bundle says %s", e.ModelType, meta.ModelType)
			}
		}
	}
	if selected != 1 {
		t.Errorf("expected exactly one selected entry, got %d", selected)
	}
}

func TestTrainEmptyDataset(t *testing.T) {
	tr, _ := newTrainer()
	_, err := tr.Train(context.Background(), &core.Dataset{}, DefaultConfig())
	if !errors.Is(err, core.ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestTrainInsufficientData(t *testing.T) {
	tr, _ := newTrainer()
	_, err := tr.Train(context.Background(), stubDataset(3), DefaultConfig())
	if !errors.Is(err, core.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestTrainTieBreakFirstDeclaredWins(t *testing.T) {
	// Both stubs score a perfect 1.0; the tie must go to the candidate
	// declared first.
	cfg := DefaultConfig()
	cfg.Candidates = []Candidate{
		stubCandidate("first", nil),
		stubCandidate("second", nil),
	}

	tr, _ := newTrainer()
	bundle, err := tr.Train(context.Background(), stubDataset(10), cfg)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}
	if bundle.Metadata.ModelType != "first" {
		t.Fatalf("tie went to %s, want first", bundle.Metadata.ModelType)
	}
	if bundle.Metadata.Accuracy != 1.0 {
		t.Fatalf("stub accuracy = %v, want 1.0", bundle.Metadata.Accuracy)
	}
}

func TestTrainToleratesFailingCandidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Candidates = []Candidate{
		stubCandidate("broken", errors.New("did not converge")),
		stubCandidate("working", nil),
	}

	tr, _ := newTrainer()
	bundle, err := tr.Train(context.Background(), stubDataset(10), cfg)
	if err != nil {
		t.Fatalf("one failing candidate must not abort the run: %v", err)
	}
	if bundle.Metadata.ModelType != "working" {
		t.Fatalf("selected %s, want working", bundle.Metadata.ModelType)
	}
}

func TestTrainAllCandidatesFail(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Candidates = []Candidate{
		stubCandidate("broken1", errors.New("did not converge")),
		stubCandidate("broken2", errors.New("did not converge")),
	}

	tr, _ := newTrainer()
	_, err := tr.Train(context.Background(), stubDataset(10), cfg)
	if !errors.Is(err, core.ErrNoViableModel) {
		t.Fatalf("expected ErrNoViableModel, got %v", err)
	}
}

func TestTrainEndToEndClassifiesVesselEmail(t *testing.T) {
	ds := sampleDataset(t)
	tr, _ := newTrainer()

	bundle, err := tr.Train(context.Background(), ds, DefaultConfig())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	predictor := inference.NewPredictor(bundle)
	pred, err := predictor.Predict(core.EmailRecord{
		Subject: "MV Star Eagle open position",
		Body:    "Bulk carrier 55,000 DWT open Singapore next week",
		Sender:  "ops@bulkship.sg",
	})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if pred.Label != core.LabelVessel {
		t.Fatalf("prediction = %s with probs %v, want VESSEL", pred.Label, pred.Probs)
	}
}
