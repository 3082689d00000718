// Package artifacts persists trained bundles to the filesystem as three
// JSON documents: the tagged model, the scaler when the model is
// scale-sensitive, and the metadata.
package artifacts

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/core"
	"github.com/seabroker/email-classifier/internal/ml"
)

const (
	modelFile    = "email_classifier.json"
	scalerFile   = "feature_scaler.json"
	metadataFile = "model_metadata.json"
)

// FSStore is a filesystem implementation of the ArtifactStore interface.
type FSStore struct {
	dir    string
	logger *zap.Logger
}

// NewFSStore creates a store rooted at dir, creating it if needed.
func NewFSStore(dir string, logger *zap.Logger) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create artifacts directory: %w", err)
	}
	return &FSStore{
		dir:    dir,
		logger: logger,
	}, nil
}

// modelDocument tags the serialized model parameters with the family name so
// Load can pick the right concrete type.
type modelDocument struct {
	ModelType string          `json:"model_type"`
	Params    json.RawMessage `json:"params"`
}

// Save writes the bundle's artifacts. All-or-nothing: the first failure is
// returned as a PersistenceError and fails the run.
func (s *FSStore) Save(ctx context.Context, bundle *core.TrainedArtifactBundle) error {
	params, err := json.Marshal(bundle.Model)
	if err != nil {
		return &core.PersistenceError{Artifact: modelFile, Err: err}
	}
	doc := modelDocument{ModelType: bundle.Metadata.ModelType, Params: params}
	if err := s.writeJSON(modelFile, doc); err != nil {
		return err
	}

	if bundle.Metadata.NeedsScaling {
		scaler, ok := bundle.Scaler.(*ml.StandardScaler)
		if !ok {
			return &core.PersistenceError{Artifact: scalerFile, Err: fmt.Errorf("bundle scaler has unexpected type %T", bundle.Scaler)}
		}
		if err := s.writeJSON(scalerFile, scaler); err != nil {
			return err
		}
	}

	if err := s.writeJSON(metadataFile, bundle.Metadata); err != nil {
		return err
	}

	s.logger.Info("Saved trained artifacts",
		zap.String("dir", s.dir),
		zap.String("model_type", bundle.Metadata.ModelType),
		zap.Bool("with_scaler", bundle.Metadata.NeedsScaling))
	return nil
}

// Load reconstructs a bundle from a previous run. A missing scaler for a
// scale-sensitive model is a PersistenceError.
func (s *FSStore) Load(ctx context.Context) (*core.TrainedArtifactBundle, error) {
	var metadata core.ModelMetadata
	if err := s.readJSON(metadataFile, &metadata); err != nil {
		return nil, err
	}

	var doc modelDocument
	if err := s.readJSON(modelFile, &doc); err != nil {
		return nil, err
	}
	model, err := decodeModel(doc)
	if err != nil {
		return nil, &core.PersistenceError{Artifact: modelFile, Err: err}
	}

	bundle := &core.TrainedArtifactBundle{
		Model:    model,
		Metadata: metadata,
	}
	if metadata.NeedsScaling {
		scaler := ml.NewStandardScaler()
		if err := s.readJSON(scalerFile, scaler); err != nil {
			return nil, err
		}
		bundle.Scaler = scaler
	}
	return bundle, nil
}

func decodeModel(doc modelDocument) (core.Classifier, error) {
	var model core.Classifier
	switch doc.ModelType {
	case "RandomForest":
		model = &ml.RandomForest{}
	case "GradientBoosting":
		model = &ml.GradientBoosting{}
	case "LogisticRegression":
		model = &ml.LogisticRegression{}
	case "SVM":
		model = &ml.SVM{}
	default:
		return nil, fmt.Errorf("unknown model type %q", doc.ModelType)
	}
	if err := json.Unmarshal(doc.Params, model); err != nil {
		return nil, err
	}
	return model, nil
}

// writeJSON writes via a temp file and rename so a crash never leaves a
// truncated artifact behind.
func (s *FSStore) writeJSON(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &core.PersistenceError{Artifact: name, Err: err}
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &core.PersistenceError{Artifact: name, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &core.PersistenceError{Artifact: name, Err: err}
	}
	return nil
}

func (s *FSStore) readJSON(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return &core.PersistenceError{Artifact: name, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &core.PersistenceError{Artifact: name, Err: err}
	}
	return nil
}
