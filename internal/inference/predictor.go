// Package inference turns a trained artifact bundle back into predictions
// for raw emails.
package inference

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/core"
	"github.com/seabroker/email-classifier/internal/features"
)

// Predictor classifies raw emails through a trained bundle, re-running the
// same feature extraction the dataset was built with.
type Predictor struct {
	extractor *features.Extractor
	bundle    *core.TrainedArtifactBundle
}

// NewPredictor creates a predictor over the given bundle.
func NewPredictor(bundle *core.TrainedArtifactBundle) *Predictor {
	return &Predictor{
		extractor: features.NewExtractor(),
		bundle:    bundle,
	}
}

// Predict classifies one email, applying the bundle's scaler when the
// metadata declares the model scale-sensitive.
func (p *Predictor) Predict(email core.EmailRecord) (*core.Prediction, error) {
	X := [][]float64{p.extractor.Extract(email).Vector()}

	if p.bundle.Metadata.NeedsScaling {
		if p.bundle.Scaler == nil {
			return nil, fmt.Errorf("bundle declares needs_scaling but carries no scaler")
		}
		X = p.bundle.Scaler.Transform(X)
	}

	probs, err := p.bundle.Model.PredictProba(X)
	if err != nil {
		return nil, fmt.Errorf("prediction failed: %w", err)
	}

	classes := core.Classes()
	best := 0
	for j, prob := range probs[0] {
		if prob > probs[0][best] {
			best = j
		}
	}
	return &core.Prediction{
		Label:      classes[best],
		Confidence: probs[0][best],
		Probs:      probs[0],
	}, nil
}

// smokeEmails are two held-out examples, one obvious cargo inquiry and one
// obvious vessel position, used to sanity-check a fresh bundle.
var smokeEmails = []core.EmailRecord{
	{
		Subject: "Steel coils 5000 MT ready for shipment",
		Body:    "We have steel coils ready at Shanghai port. Need vessel for Japan",
		Sender:  "steel@export.cn",
	},
	{
		Subject: "MV Star Eagle open position",
		Body:    "Bulk carrier 55,000 DWT open Singapore next week",
		Sender:  "ops@bulkship.sg",
	},
}

// SmokeTest runs the reference sample emails through the bundle and logs the
// outcomes. Diagnostic only: it mutates nothing and gates nothing.
func SmokeTest(bundle *core.TrainedArtifactBundle, logger *zap.Logger) {
	predictor := NewPredictor(bundle)
	for _, email := range smokeEmails {
		pred, err := predictor.Predict(email)
		if err != nil {
			logger.Error("Smoke test prediction failed", zap.Error(err), zap.String("subject", email.Subject))
			continue
		}
		logger.Info("Smoke test prediction",
			zap.String("subject", email.Subject),
			zap.String("prediction", string(pred.Label)),
			zap.Float64("cargo", pred.Probs[0]),
			zap.Float64("vessel", pred.Probs[1]))
	}
}
