package colour

import "fmt"

// DefaultEpsilon is the ΔE below which two palette colours are treated as
// indistinguishable.
const DefaultEpsilon = 0.01

// AllDistinguishable is the audit line reported when no pair is too close.
const AllDistinguishable = "All colours are distinguishable."

// SimilarPair is two palette entries closer than the audit threshold.
type SimilarPair struct {
	I      int     `json:"i"`
	J      int     `json:"j"`
	HexI   string  `json:"hex_i"`
	HexJ   string  `json:"hex_j"`
	DeltaE float64 `json:"delta_e"`
}

// String describes the pair in one line.
func (s SimilarPair) String() string {
	return fmt.Sprintf("No perceptual difference between colour %d (%s) and colour %d (%s): delta E %.6f",
		s.I, s.HexI, s.J, s.HexJ, s.DeltaE)
}

// FindIndistinguishable compares every pair of entries in p (i < j) with
// CIEDE2000 and returns those with ΔE below epsilon, in (i, j) order.
// RGB palettes are converted to OkLab first.
func FindIndistinguishable(p *Palette, epsilon float64) []SimilarPair {
	n := p.Len()
	lab := make([]OkLab, n)
	for i := range n {
		lab[i] = p.OkLabAt(i)
	}

	var pairs []SimilarPair
	for i := range n {
		for j := i + 1; j < n; j++ {
			d := CIEDE2000(lab[i], lab[j])
			if d < epsilon {
				pairs = append(pairs, SimilarPair{
					I:      i,
					J:      j,
					HexI:   p.Hex(i),
					HexJ:   p.Hex(j),
					DeltaE: d,
				})
			}
		}
	}
	return pairs
}

// AuditReport renders pairs as human-readable lines. With no pairs it
// returns the single line AllDistinguishable.
func AuditReport(pairs []SimilarPair) []string {
	if len(pairs) == 0 {
		return []string{AllDistinguishable}
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = p.String()
	}
	return lines
}
