// Package recommender scores soil and climate measurements against a
// pre-trained crop classification artifact. The artifact is opaque, versioned
// data produced offline; no training or update logic lives here.
package recommender

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// FeatureCount is the fixed length of a measurement vector:
// nitrogen, phosphorus, potassium, temperature, humidity, ph, rainfall.
const FeatureCount = 7

// Artifact mirrors the JSON layout of the exported model file: the min-max
// ranges and standardization parameters of the training pipeline, plus the
// per-class Gaussian parameters of the classifier, all in pipeline order.
type Artifact struct {
	Version  string   `json:"version"`
	Features []string `json:"features"`
	MinMax   struct {
		Min []float64 `json:"min"`
		Max []float64 `json:"max"`
	} `json:"minmax"`
	Standard struct {
		Mean  []float64 `json:"mean"`
		Scale []float64 `json:"scale"`
	} `json:"standard"`
	Classes []ClassParams `json:"classes"`
}

// ClassParams holds the Gaussian parameters of one crop class in the
// standardized feature space.
type ClassParams struct {
	ID       int       `json:"id"`
	Prior    float64   `json:"prior"`
	Theta    []float64 `json:"theta"`
	Variance []float64 `json:"variance"`
}

// Recommender applies the fixed transform pipeline and classifier.
type Recommender struct {
	artifact Artifact
}

// Load reads and validates a model artifact from disk.
func Load(path string) (*Recommender, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var art Artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	return New(art)
}

// New validates artifact dimensions and builds a Recommender.
func New(art Artifact) (*Recommender, error) {
	if len(art.MinMax.Min) != FeatureCount || len(art.MinMax.Max) != FeatureCount {
		return nil, fmt.Errorf("model artifact: minmax parameters must have %d entries", FeatureCount)
	}
	if len(art.Standard.Mean) != FeatureCount || len(art.Standard.Scale) != FeatureCount {
		return nil, fmt.Errorf("model artifact: standardization parameters must have %d entries", FeatureCount)
	}
	if len(art.Classes) == 0 {
		return nil, fmt.Errorf("model artifact: no classes")
	}
	for _, c := range art.Classes {
		if len(c.Theta) != FeatureCount || len(c.Variance) != FeatureCount {
			return nil, fmt.Errorf("model artifact: class %d parameters must have %d entries", c.ID, FeatureCount)
		}
		for _, v := range c.Variance {
			if v <= 0 {
				return nil, fmt.Errorf("model artifact: class %d has non-positive variance", c.ID)
			}
		}
	}
	return &Recommender{artifact: art}, nil
}

// Version reports the artifact version string.
func (r *Recommender) Version() string {
	return r.artifact.Version
}

// Recommend scores a raw measurement vector and returns the winning crop
// class id and name.
func (r *Recommender) Recommend(features []float64) (int, string, error) {
	if len(features) != FeatureCount {
		return 0, "", fmt.Errorf("expected %d features, got %d", FeatureCount, len(features))
	}

	x := r.transform(features)

	bestID := 0
	bestScore := math.Inf(-1)
	for _, c := range r.artifact.Classes {
		score := math.Log(c.Prior)
		for i := 0; i < FeatureCount; i++ {
			diff := x[i] - c.Theta[i]
			score -= diff*diff/(2*c.Variance[i]) + 0.5*math.Log(2*math.Pi*c.Variance[i])
		}
		if score > bestScore {
			bestScore = score
			bestID = c.ID
		}
	}

	return bestID, CropName(bestID), nil
}

// transform applies range normalization followed by standardization, the same
// two fixed transforms the model was trained with.
func (r *Recommender) transform(features []float64) []float64 {
	x := make([]float64, FeatureCount)
	for i := 0; i < FeatureCount; i++ {
		span := r.artifact.MinMax.Max[i] - r.artifact.MinMax.Min[i]
		v := 0.0
		if span != 0 {
			v = (features[i] - r.artifact.MinMax.Min[i]) / span
		}
		if scale := r.artifact.Standard.Scale[i]; scale != 0 {
			v = (v - r.artifact.Standard.Mean[i]) / scale
		}
		x[i] = v
	}
	return x
}
