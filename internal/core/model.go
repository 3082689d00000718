package core

// Label is one of the two classification targets.
type Label string

const (
	LabelCargo  Label = "CARGO"
	LabelVessel Label = "VESSEL"
)

// Classes returns the fixed class order used everywhere a label is encoded
// as an index: CARGO = 0, VESSEL = 1. The order never depends on label
// frequencies in the data.
func Classes() []Label {
	return []Label{LabelCargo, LabelVessel}
}

// ClassStrings returns the class order as plain strings for metadata.
func ClassStrings() []string {
	return []string{string(LabelCargo), string(LabelVessel)}
}

// Index returns the positional encoding of the label, or -1 if the label is
// not one of the two known classes.
func (l Label) Index() int {
	switch l {
	case LabelCargo:
		return 0
	case LabelVessel:
		return 1
	default:
		return -1
	}
}

// EmailRecord represents one raw email. Label is empty for inference-only
// records.
type EmailRecord struct {
	Subject string
	Body    string
	Sender  string
	Label   Label
}

// FeatureRecord is the fixed, ordered numeric view of one EmailRecord.
type FeatureRecord struct {
	CargoKeywordCount  int
	VesselKeywordCount int
	HasTonnage         bool
	HasVesselName      bool
	HasPortNames       bool
	SubjectLength      int
	BodyLength         int
	IsShippingDomain   bool
	IsCargoDomain      bool
}

// FeatureColumns returns the canonical column order. A model trained against
// this order must never be scored against a vector built with a different one.
func FeatureColumns() []string {
	return []string{
		"cargo_keyword_count",
		"vessel_keyword_count",
		"has_tonnage",
		"has_vessel_name",
		"has_port_names",
		"subject_length",
		"body_length",
		"is_shipping_domain",
		"is_cargo_domain",
	}
}

// Vector flattens the record into the canonical column order, booleans as 0/1.
func (f FeatureRecord) Vector() []float64 {
	return []float64{
		float64(f.CargoKeywordCount),
		float64(f.VesselKeywordCount),
		boolToFloat(f.HasTonnage),
		boolToFloat(f.HasVesselName),
		boolToFloat(f.HasPortNames),
		float64(f.SubjectLength),
		float64(f.BodyLength),
		boolToFloat(f.IsShippingDomain),
		boolToFloat(f.IsCargoDomain),
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Dataset is an ordered feature matrix with an aligned label column. It is
// built once per training run and not mutated afterwards.
type Dataset struct {
	Columns []string
	Rows    [][]float64
	Labels  []Label
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// ModelMetadata describes a trained model well enough to reproduce inference.
type ModelMetadata struct {
	ModelType      string   `json:"model_type"`
	Accuracy       float64  `json:"accuracy"`
	FeatureColumns []string `json:"feature_columns"`
	Classes        []string `json:"classes"`
	NeedsScaling   bool     `json:"needs_scaling"`
}

// TrainedArtifactBundle is the sole unit handed off for persistence: the
// fitted model, its paired scaler when the model family is scale-sensitive,
// and the metadata a consumer needs to reload both. Loading the model without
// its scaler when NeedsScaling is true is a consumer error, not a condition
// this core guards against.
type TrainedArtifactBundle struct {
	Model    Classifier
	Scaler   FeatureScaler
	Metadata ModelMetadata
}

// Prediction is the outcome of classifying one email. Probs is aligned with
// Classes().
type Prediction struct {
	Label      Label
	Confidence float64
	Probs      []float64
}
