// Package output formats the results of authorship experiments for the console.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"github.com/hscells/authorship"
	"strconv"
)

// TextFormatter describes a pipeline result as a line of progress for a person to read. Results with
// nothing to say give an empty string.
func TextFormatter(r authorship.PipelineResult) string {
	switch r.Type {
	case authorship.Loaded:
		return fmt.Sprintf("%d comments loaded", r.Count)
	case authorship.Users:
		return fmt.Sprintf("%d total users", r.Count)
	case authorship.QualifyingUsers:
		return fmt.Sprintf("%d users available for analysis", r.Count)
	case authorship.Baseline:
		return fmt.Sprintf("Uniform guess correctness rate: %v", r.Accuracy)
	case authorship.Producing:
		return fmt.Sprintf("Producing %s features...", r.Extractor)
	case authorship.Training:
		return fmt.Sprintf("Training %s Classifier...", r.Classifier)
	case authorship.Scoring:
		return "Computing accuracy..."
	case authorship.Accuracy:
		return fmt.Sprintf("%s/%s Accuracy: %v", r.Classifier, r.Extractor, r.Accuracy)
	case authorship.Done:
		return fmt.Sprintf("run %s complete", r.Run)
	}
	return ""
}

// CsvAccuracyFormatter summarises the accuracy results of a run as CSV. Other results are ignored.
func CsvAccuracyFormatter(results []authorship.PipelineResult) (string, error) {
	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	if err := w.Write([]string{"Run", "Features", "Classifier", "Accuracy"}); err != nil {
		return "", err
	}
	for _, r := range results {
		if r.Type != authorship.Accuracy {
			continue
		}
		err := w.Write([]string{r.Run, r.Extractor, r.Classifier, strconv.FormatFloat(r.Accuracy, 'f', -1, 64)})
		if err != nil {
			return "", err
		}
	}
	w.Flush()
	return b.String(), w.Error()
}
