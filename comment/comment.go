// Package comment models the authored text samples the experiments are run over, and how they are read.
package comment

import (
	"github.com/xtgo/set"
	"sort"
	"time"
)

// Comment is a single piece of text written by an author.
type Comment struct {
	Author  string
	Body    string
	Created time.Time
}

// Comments is a sortable list of comments, ordered by author, then body, then creation time.
type Comments []Comment

func (c Comments) Len() int      { return len(c) }
func (c Comments) Swap(i, j int) { c[i], c[j] = c[j], c[i] }
func (c Comments) Less(i, j int) bool {
	if c[i].Author != c[j].Author {
		return c[i].Author < c[j].Author
	}
	if c[i].Body != c[j].Body {
		return c[i].Body < c[j].Body
	}
	return c[i].Created.Before(c[j].Created)
}

// Unique removes comments that were collected more than once. The input is not modified.
func Unique(comments []Comment) []Comment {
	c := make(Comments, len(comments))
	copy(c, comments)
	sort.Sort(c)
	n := set.Uniq(c)
	return c[:n]
}
