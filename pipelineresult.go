package authorship

type ResultType uint8

const (
	Loaded ResultType = iota
	Users
	QualifyingUsers
	Baseline
	Producing
	Training
	Scoring
	Accuracy
	Done
)

// PipelineResult is the output of an authorship pipeline. Which fields are set depends on Type: Count for
// Loaded, Users and QualifyingUsers; Accuracy for Baseline and Accuracy; Extractor and Classifier while
// producing features, training and scoring.
type PipelineResult struct {
	Type       ResultType
	Run        string
	Count      int
	Extractor  string
	Classifier string
	Accuracy   float64
}
