// Package index groups comments by the user that wrote them, and splits those groups into training and
// test sets.
package index

import (
	"github.com/hscells/authorship/comment"
	"math/rand"
	"sort"
)

// UserIndex maps a user to the comments they wrote.
type UserIndex map[string][]comment.Comment

// Build groups comments by author. Comments for an author keep the order they were seen in.
func Build(comments []comment.Comment) UserIndex {
	idx := make(UserIndex)
	for _, c := range comments {
		idx[c.Author] = append(idx[c.Author], c)
	}
	return idx
}

// Users lists the users in the index in sorted order. This order is used to number users when they are
// turned into class labels.
func (idx UserIndex) Users() []string {
	users := make([]string, 0, len(idx))
	for user := range idx {
		users = append(users, user)
	}
	sort.Strings(users)
	return users
}

// Count is the total number of comments in the index.
func (idx UserIndex) Count() int {
	var n int
	for _, comments := range idx {
		n += len(comments)
	}
	return n
}

// Filter keeps only the users that have at least min comments.
func Filter(idx UserIndex, min int) UserIndex {
	filtered := make(UserIndex)
	for user, comments := range idx {
		if len(comments) >= min {
			filtered[user] = comments
		}
	}
	return filtered
}

// Split randomly partitions the comments of each user in half. The training set receives the first
// floor(n/2) comments of the shuffled list and the test set the rest. A nil rng uses the global source.
// The comments in idx are not modified.
func Split(idx UserIndex, rng *rand.Rand) (training, test UserIndex) {
	training = make(UserIndex, len(idx))
	test = make(UserIndex, len(idx))

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}

	for _, user := range idx.Users() {
		comments := idx[user]
		c := make([]comment.Comment, len(comments))
		copy(c, comments)
		shuffle(len(c), func(i, j int) {
			c[i], c[j] = c[j], c[i]
		})

		half := len(c) / 2
		training[user] = c[:half:half]
		test[user] = c[half:]
	}
	return
}
