package colour

import (
	"cmp"
	"slices"
)

// DominantColour is one ranked bucket.
type DominantColour struct {
	Hex     string  `json:"hex"`
	Percent float64 `json:"percent"`
	Bucket  int     `json:"bucket"`
	Count   uint64  `json:"count"`
}

// Rank orders buckets by count, most frequent first, and returns the top k.
// Buckets with equal counts are ordered by ascending bucket index.
// k <= 0 yields an empty result; k larger than the palette yields every bucket.
// Percentages are relative to counts.Total and are 0 for an empty image.
func Rank(counts BucketCounts, p *Palette, k int) []DominantColour {
	if k <= 0 {
		return []DominantColour{}
	}

	order := make([]int, len(counts.Counts))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(counts.Counts[b], counts.Counts[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	k = min(k, len(order))
	result := make([]DominantColour, k)
	for i, bucket := range order[:k] {
		count := counts.Counts[bucket]
		result[i] = DominantColour{
			Hex:     p.Hex(bucket),
			Percent: Percent(count, counts.Total),
			Bucket:  bucket,
			Count:   count,
		}
	}
	return result
}

// Percent returns 100 × count / total, or 0 when total is 0.
func Percent(count, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(count) / float64(total)
}
