package artifacts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/core"
	"github.com/seabroker/email-classifier/internal/ml"
)

func trainingData() ([][]float64, []int) {
	X := [][]float64{
		{0, 1}, {0.1, 1.2}, {0.2, 0.9}, {0.1, 1.1}, {0.3, 1.0},
		{1, 0}, {1.2, 0.1}, {0.9, 0.2}, {1.1, 0.1}, {1.0, 0.3},
	}
	y := []int{1, 1, 1, 1, 1, 0, 0, 0, 0, 0}
	return X, y
}

func TestSaveLoadRoundTripForest(t *testing.T) {
	X, y := trainingData()
	forest := ml.NewRandomForest(42)
	if err := forest.Fit(X, y); err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	bundle := &core.TrainedArtifactBundle{
		Model: forest,
		Metadata: core.ModelMetadata{
			ModelType:      "RandomForest",
			Accuracy:       0.9,
			FeatureColumns: core.FeatureColumns(),
			Classes:        core.ClassStrings(),
		},
	}

	store, err := NewFSStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewFSStore failed: %v", err)
	}
	ctx := context.Background()
	if err := store.Save(ctx, bundle); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded.Metadata, bundle.Metadata) {
		t.Fatalf("metadata changed across round trip: %+v", loaded.Metadata)
	}
	if loaded.Scaler != nil {
		t.Fatalf("tree bundle must load without a scaler")
	}

	want, _ := forest.PredictProba(X)
	got, err := loaded.Model.PredictProba(X)
	if err != nil {
		t.Fatalf("loaded model cannot predict: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("loaded model predicts differently")
	}
}

func TestSaveLoadRoundTripWithScaler(t *testing.T) {
	X, y := trainingData()
	scaler := ml.NewStandardScaler()
	model := ml.NewLogisticRegression()
	if err := model.Fit(scaler.FitTransform(X), y); err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	bundle := &core.TrainedArtifactBundle{
		Model:  model,
		Scaler: scaler,
		Metadata: core.ModelMetadata{
			ModelType:      "LogisticRegression",
			Accuracy:       1.0,
			FeatureColumns: core.FeatureColumns(),
			Classes:        core.ClassStrings(),
			NeedsScaling:   true,
		},
	}

	dir := t.TempDir()
	store, err := NewFSStore(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFSStore failed: %v", err)
	}
	ctx := context.Background()
	if err := store.Save(ctx, bundle); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	for _, name := range []string{modelFile, scalerFile, metadataFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected artifact %s: %v", name, err)
		}
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Scaler == nil {
		t.Fatalf("scale-sensitive bundle must load with its scaler")
	}

	scaled := loaded.Scaler.Transform(X)
	want, _ := model.PredictProba(scaler.Transform(X))
	got, err := loaded.Model.PredictProba(scaled)
	if err != nil {
		t.Fatalf("loaded model cannot predict: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("loaded pipeline predicts differently")
	}
}

func TestLoadMissingScalerIsPersistenceError(t *testing.T) {
	X, y := trainingData()
	scaler := ml.NewStandardScaler()
	model := ml.NewLogisticRegression()
	if err := model.Fit(scaler.FitTransform(X), y); err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	dir := t.TempDir()
	store, err := NewFSStore(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFSStore failed: %v", err)
	}
	ctx := context.Background()
	bundle := &core.TrainedArtifactBundle{
		Model:  model,
		Scaler: scaler,
		Metadata: core.ModelMetadata{
			ModelType:      "LogisticRegression",
			FeatureColumns: core.FeatureColumns(),
			Classes:        core.ClassStrings(),
			NeedsScaling:   true,
		},
	}
	if err := store.Save(ctx, bundle); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, scalerFile)); err != nil {
		t.Fatalf("failed to remove scaler: %v", err)
	}

	_, err = store.Load(ctx)
	if err == nil {
		t.Fatalf("expected an error when the scaler artifact is missing")
	}
	var perr *core.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %T: %v", err, err)
	}
}
