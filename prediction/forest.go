package prediction

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// forestNode is one node of a decision tree. Internal nodes route on
// feature <= threshold (left) vs > threshold (right). Leaves have
// Feature == -1 and carry per-class sample counts from training.
type forestNode struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Counts    []float64 `json:"counts,omitempty"`
}

type forestTree struct {
	Nodes []forestNode `json:"nodes"`
}

// Forest is a random-forest classifier loaded from a JSON artifact
// exported by the offline training pipeline, paired with the feature
// scaler fit on the same training run. It implements Classifier.
type Forest struct {
	ClassNames     []string     `json:"classes"`
	FeatureVersion string       `json:"feature_version"`
	Trees          []forestTree `json:"trees"`

	scaler *Scaler
}

// LoadForest reads the model and scaler artifact pair. Either file
// being absent surfaces ErrModelUnavailable.
func LoadForest(modelPath, scalerPath string) (*Forest, error) {
	b, err := os.ReadFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	var f Forest
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse model %s: %w", modelPath, err)
	}
	if f.FeatureVersion != FeatureVersion {
		return nil, fmt.Errorf("model %s: feature version %q does not match %q",
			modelPath, f.FeatureVersion, FeatureVersion)
	}
	if len(f.ClassNames) == 0 || len(f.Trees) == 0 {
		return nil, fmt.Errorf("model %s: no classes or trees", modelPath)
	}
	scaler, err := LoadScaler(scalerPath)
	if err != nil {
		return nil, err
	}
	f.scaler = scaler
	return &f, nil
}

// Predict scales the feature vector with the training-time parameters,
// averages the leaf class distributions across all trees and returns
// the arg-max class plus the full class-to-probability map. The map
// values sum to 1.
func (f *Forest) Predict(features []float64) (string, map[string]float64, error) {
	if len(features) != FeatureCount {
		return "", nil, fmt.Errorf("expected %d features, got %d", FeatureCount, len(features))
	}
	scaled := f.scaler.Transform(features)

	probs := make([]float64, len(f.ClassNames))
	for _, tree := range f.Trees {
		leaf, err := tree.walk(scaled)
		if err != nil {
			return "", nil, err
		}
		total := 0.0
		for _, c := range leaf.Counts {
			total += c
		}
		if total == 0 {
			continue
		}
		for i, c := range leaf.Counts {
			probs[i] += c / total
		}
	}
	// normalize across trees so the distribution sums to 1
	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	scores := make(map[string]float64, len(f.ClassNames))
	for i, name := range f.ClassNames {
		if sum > 0 {
			scores[name] = probs[i] / sum
		} else {
			scores[name] = 1.0 / float64(len(f.ClassNames))
		}
	}
	return ArgMax(scores), scores, nil
}

func (t forestTree) walk(features []float64) (forestNode, error) {
	idx := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		if idx < 0 || idx >= len(t.Nodes) {
			return forestNode{}, fmt.Errorf("tree walk left node range at %d", idx)
		}
		node := t.Nodes[idx]
		if node.Feature < 0 {
			if len(node.Counts) == 0 {
				return forestNode{}, fmt.Errorf("leaf %d has no class counts", idx)
			}
			return node, nil
		}
		if node.Feature >= len(features) {
			return forestNode{}, fmt.Errorf("node %d routes on feature %d of %d", idx, node.Feature, len(features))
		}
		if features[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
	return forestNode{}, fmt.Errorf("tree walk did not terminate")
}

// ArgMax returns the key with the strictly maximum score. Keys are
// visited in sorted order so ties resolve deterministically to the
// first-encountered key.
func ArgMax(scores map[string]float64) string {
	keys := sortedKeys(scores)
	best := ""
	bestScore := 0.0
	for _, k := range keys {
		if best == "" || scores[k] > bestScore {
			best = k
			bestScore = scores[k]
		}
	}
	return best
}

func sortedKeys(scores map[string]float64) []string {
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
