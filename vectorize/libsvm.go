package vectorize

import (
	"bufio"
	"io"
	"strconv"
)

// WriteLibSVM writes a LIBSVM compatible line for the vector to a writer. Columns are numbered from one.
func (v Vector) WriteLibSVM(writer io.Writer, label int) (int, error) {
	b := []byte(strconv.Itoa(label))
	for i, idx := range v.Indices {
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(idx+1), 10)
		b = append(b, ':')
		b = strconv.AppendFloat(b, v.Values[i], 'g', -1, 64)
	}
	b = append(b, '\n')
	return writer.Write(b)
}

// WriteLibSVM writes every row of the matrix with its label in LIBSVM format.
func (m *Matrix) WriteLibSVM(writer io.Writer, labels []int) error {
	w := bufio.NewWriter(writer)
	for i, row := range m.Rows {
		if _, err := row.WriteLibSVM(w, labels[i]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// LibSVMFeatures is the vector in the one-indexed map form LIBSVM predicts from.
func (v Vector) LibSVMFeatures() map[int]float64 {
	m := make(map[int]float64, len(v.Indices))
	for i, idx := range v.Indices {
		m[idx+1] = v.Values[i]
	}
	return m
}
