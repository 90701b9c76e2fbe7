package colour

// Classifier maps a pixel to the index of its nearest palette bucket.
// Implementations must be safe for concurrent use.
type Classifier interface {
	Classify(pixel uint32) int
}

// BruteForce classifies by scanning every bucket of a palette.
type BruteForce struct {
	metric Metric
}

// NewBruteForce creates a brute-force classifier over p using the metric
// for p's colourspace.
func NewBruteForce(p *Palette) *BruteForce {
	return &BruteForce{metric: p.Metric()}
}

// Classify returns the index of the closest bucket. Ties go to the lowest
// index: a later bucket only wins if it is strictly closer.
func (c *BruteForce) Classify(pixel uint32) int {
	prepared := c.metric.Prepare(pixel)
	best := 0
	bestDist := 0.0
	for i := range c.metric.Len() {
		d := c.metric.Distance(prepared, i)
		if i == 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// LookupClassifier classifies with a precomputed table, one byte per RGB value.
type LookupClassifier struct {
	table LookupTable
}

// NewLookupClassifier wraps a loaded table. The table must not be modified afterwards.
func NewLookupClassifier(t LookupTable) *LookupClassifier {
	return &LookupClassifier{table: t}
}

// Classify returns the table entry for the pixel's RGB value.
func (c *LookupClassifier) Classify(pixel uint32) int {
	return int(c.table[pixel&RGBMask])
}
