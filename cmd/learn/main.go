// Command learn learns comment authors from text. It reads comments, keeps users with enough of them,
// and reports how accurately each feature model and classifier pairing attributes held-out comments.
package main

import (
	"fmt"
	"github.com/alexflint/go-arg"
	"github.com/go-errors/errors"
	"github.com/hscells/authorship"
	"github.com/hscells/authorship/comment"
	"github.com/hscells/authorship/output"
	"io"
	"log"
	"os"
)

var (
	name    = "learn"
	version = "17.Oct.2026"
)

type args struct {
	In              string `help:"serialized comment input file (default: stdin)" arg:"--in"`
	MinUserComments int    `help:"minimum comments a user has to have to be used" arg:"--min_user_comments"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
Learn comment authors from text.
# %s`, name, version)
}

func run(args args) error {
	var in io.Reader = os.Stdin
	if len(args.In) > 0 {
		f, err := os.Open(args.In)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		defer f.Close()
		in = f
	}

	r, err := comment.NewReader(in)
	if err != nil {
		return err
	}
	comments, err := comment.ReadAll(r)
	if err != nil {
		return err
	}

	p, err := authorship.NewPipeline(
		authorship.MinComments(args.MinUserComments),
		authorship.Progress(os.Stderr))
	if err != nil {
		return err
	}

	var results []authorship.PipelineResult
	err = p.Execute(comments, func(result authorship.PipelineResult) {
		results = append(results, result)
		if line := output.TextFormatter(result); len(line) > 0 {
			fmt.Println(line)
		}
	})
	if err != nil {
		return err
	}

	summary, err := output.CsvAccuracyFormatter(results)
	if err != nil {
		return err
	}
	fmt.Print(summary)
	return nil
}

// report describes an error along with the stack it was created or first wrapped on.
func report(err error) string {
	if e, ok := err.(*errors.Error); ok {
		return e.ErrorStack()
	}
	return fmt.Sprintf("%+v", err)
}

func main() {
	args := args{MinUserComments: authorship.DefaultMinComments}
	arg.MustParse(&args)

	if err := run(args); err != nil {
		log.Println(report(err))
		os.Exit(1)
	}
}
