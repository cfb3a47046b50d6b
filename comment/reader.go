package comment

import (
	"bufio"
	"bytes"
	"encoding/gob"
	"github.com/mailru/easyjson"
	"github.com/pkg/errors"
	"io"
)

// Reader produces comments from some serialised source. Next returns io.EOF once the source has been
// exhausted; any other error means the source could not be decoded.
type Reader interface {
	Next() (Comment, error)
}

// GobReader reads a stream of gob encoded comments.
type GobReader struct {
	dec *gob.Decoder
}

// NewGobReader creates a reader over a gob stream of Comment values.
func NewGobReader(r io.Reader) *GobReader {
	return &GobReader{dec: gob.NewDecoder(r)}
}

func (g *GobReader) Next() (Comment, error) {
	var c Comment
	err := g.dec.Decode(&c)
	if err == io.EOF {
		return Comment{}, io.EOF
	}
	if err != nil {
		return Comment{}, errors.Wrap(err, "could not decode comment")
	}
	return c, nil
}

// JSONReader reads comments encoded one JSON object per line.
type JSONReader struct {
	s    *bufio.Scanner
	line int
}

// NewJSONReader creates a reader over newline delimited JSON comments.
func NewJSONReader(r io.Reader) *JSONReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 16*1024*1024)
	return &JSONReader{s: s}
}

func (j *JSONReader) Next() (Comment, error) {
	for j.s.Scan() {
		j.line++
		b := bytes.TrimSpace(j.s.Bytes())
		if len(b) == 0 {
			continue
		}
		var c Comment
		if err := easyjson.Unmarshal(b, &c); err != nil {
			return Comment{}, errors.Wrapf(err, "could not decode comment on line %d", j.line)
		}
		return c, nil
	}
	if err := j.s.Err(); err != nil {
		return Comment{}, errors.Wrap(err, "could not read comments")
	}
	return Comment{}, io.EOF
}

// NewReader inspects the beginning of r and picks a JSON lines reader when the first non-space byte
// opens an object, and a gob reader otherwise.
func NewReader(r io.Reader) (Reader, error) {
	br := bufio.NewReader(r)
	// Nothing is consumed here: leading bytes of a gob stream may look like whitespace.
	for n := 1; n <= br.Size(); n++ {
		b, err := br.Peek(n)
		if err == io.EOF && n > 1 {
			// Only blank lines.
			return NewJSONReader(br), nil
		}
		if err == io.EOF {
			return NewGobReader(br), nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "could not read comments")
		}
		c := b[n-1]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		if c == '{' {
			return NewJSONReader(br), nil
		}
		return NewGobReader(br), nil
	}
	return NewGobReader(br), nil
}

// ReadAll drains a reader.
func ReadAll(r Reader) ([]Comment, error) {
	var comments []Comment
	for {
		c, err := r.Next()
		if err == io.EOF {
			return comments, nil
		}
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
}
