package prediction

// Classifier is the narrow seam around the injected, externally trained
// probability model. Implementations must be deterministic for a fixed
// vector and fixed trained parameters, and must expose the full class
// list with probabilities, not just the arg-max. The returned map's
// values sum to 1 across the classifier's classes.
//
// Swapping in a different model implementation must not touch any other
// component.
type Classifier interface {
	Predict(features []float64) (class string, scores map[string]float64, err error)
}
