package models

import "fmt"

// Trace is the recorded output of one driven signal graph: a time axis plus
// one named column per sampled output.
type Trace struct {
	Columns []string
	Times   []float64
	Rows    [][]float64
}

func NewTrace(columns []string) *Trace {
	return &Trace{
		Columns: columns,
		Times:   make([]float64, 0),
		Rows:    make([][]float64, 0),
	}
}

func (tr *Trace) Append(t float64, row []float64) {
	tr.Times = append(tr.Times, t)
	tr.Rows = append(tr.Rows, row)
}

func (tr *Trace) Len() int { return len(tr.Rows) }

// Column extracts one named series.
func (tr *Trace) Column(name string) ([]float64, error) {
	idx := -1
	for i, c := range tr.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("models: unknown column: %s", name)
	}
	data := make([]float64, len(tr.Rows))
	for i, row := range tr.Rows {
		if idx < len(row) {
			data[i] = row[idx]
		}
	}
	return data, nil
}
