package fitness

// Sample is one (x, y) point of the target function.
type Sample struct {
	X, Y float64
}

// Dataset is the fixed, ordered sample set a run is scored against.
type Dataset []Sample

// NewDataset pairs a flat x0, y0, x1, y1, ... slice. A trailing unpaired
// value is dropped.
func NewDataset(flat []float64) Dataset {
	d := make(Dataset, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		d = append(d, Sample{X: flat[i], Y: flat[i+1]})
	}
	return d
}

// Flat returns the dataset as alternating x, y values.
func (d Dataset) Flat() []float64 {
	out := make([]float64, 0, 2*len(d))
	for _, s := range d {
		out = append(out, s.X, s.Y)
	}
	return out
}
