package comment

import (
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
	"math"
	"time"
)

// created_utc is fractional unix seconds. This codec is written by hand against the easyjson lexer and
// writer; do not regenerate it.

var (
	_ easyjson.Marshaler   = Comment{}
	_ easyjson.Unmarshaler = (*Comment)(nil)
)

func decodeComment(in *jlexer.Lexer, out *Comment) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "author":
			out.Author = in.String()
		case "body":
			out.Body = in.String()
		case "created_utc":
			sec, frac := math.Modf(in.Float64())
			out.Created = time.Unix(int64(sec), int64(frac*1e9)).UTC()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func encodeComment(out *jwriter.Writer, in Comment) {
	out.RawString(`{"author":`)
	out.String(in.Author)
	out.RawString(`,"body":`)
	out.String(in.Body)
	out.RawString(`,"created_utc":`)
	out.Float64(float64(in.Created.UnixNano()) / 1e9)
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v Comment) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	encodeComment(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v Comment) MarshalEasyJSON(w *jwriter.Writer) {
	encodeComment(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *Comment) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	decodeComment(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *Comment) UnmarshalEasyJSON(l *jlexer.Lexer) {
	decodeComment(l, v)
}
