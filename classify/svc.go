package classify

import (
	libSvm "github.com/ewalker544/libsvm-go"
	"github.com/hscells/authorship/vectorize"
	"github.com/pkg/errors"
	"io/ioutil"
	"math"
	"os"
)

const svcName = "Support Vector Classifier"

// SVC is a C-support vector classifier with an RBF kernel, trained with LIBSVM. Multiple users are
// handled one-against-one by LIBSVM itself.
type SVC struct {
	c       float64
	gamma   float64
	verbose bool

	model *libSvm.Model
	cols  int
}

// SVCCost sets the penalty parameter C (default 1).
func SVCCost(c float64) func(s *SVC) {
	return func(s *SVC) {
		s.c = c
	}
}

// SVCGamma sets the RBF kernel coefficient. Zero (the default) uses one over the number of features.
func SVCGamma(gamma float64) func(s *SVC) {
	return func(s *SVC) {
		s.gamma = gamma
	}
}

// SVCVerbose lets LIBSVM print its solver progress to stdout.
func SVCVerbose(verbose bool) func(s *SVC) {
	return func(s *SVC) {
		s.verbose = verbose
	}
}

// NewSVC creates an untrained support vector classifier.
func NewSVC(options ...func(s *SVC)) *SVC {
	s := &SVC{c: 1}
	for _, o := range options {
		o(s)
	}
	return s
}

func (s *SVC) Name() string {
	return svcName
}

func (s *SVC) Fit(x *vectorize.Matrix, y []int) error {
	if err := checkFit(x, y); err != nil {
		return err
	}

	// LIBSVM reads its problems from a file.
	f, err := ioutil.TempFile("", "authorship-svc-*.libsvm")
	if err != nil {
		return errors.Wrap(err, "could not create problem file")
	}
	defer os.Remove(f.Name())
	if err := x.WriteLibSVM(f, y); err != nil {
		f.Close()
		return errors.Wrap(err, "could not write problem file")
	}
	if err := f.Close(); err != nil {
		return err
	}

	param := libSvm.NewParameter()
	param.SvmType = libSvm.C_SVC
	param.KernelType = libSvm.RBF
	param.C = s.c
	param.Gamma = s.gamma
	param.QuietMode = !s.verbose
	if param.Gamma == 0 {
		param.Gamma = 1
		if x.Cols > 0 {
			param.Gamma = 1 / float64(x.Cols)
		}
	}

	problem, err := libSvm.NewProblem(f.Name(), param)
	if err != nil {
		return errors.Wrap(err, "could not load problem file")
	}

	model := libSvm.NewModel(param)
	model.Train(problem)

	s.model = model
	s.cols = x.Cols
	return nil
}

func (s *SVC) Predict(x *vectorize.Matrix) ([]int, error) {
	if s.model == nil {
		return nil, ErrNotFitted
	}
	if err := checkPredict(x, s.cols); err != nil {
		return nil, err
	}
	predicted := make([]int, len(x.Rows))
	for i, row := range x.Rows {
		predicted[i] = int(math.Round(s.model.Predict(row.LibSVMFeatures())))
	}
	return predicted, nil
}
