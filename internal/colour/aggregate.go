package colour

import (
	"context"
	"fmt"
	"sync"
)

// PixelGrid is a decoded image: a width × height grid of packed ARGB pixels.
type PixelGrid interface {
	Width() int
	Height() int
	// PixelAt returns the pixel at (x, y) as 0xAARRGGBB.
	PixelAt(x, y int) uint32
}

// BucketCounts holds per-bucket pixel counts for one image.
type BucketCounts struct {
	Counts []uint64
	Total  uint64
}

// NewBucketCounts allocates zeroed counts for n buckets.
func NewBucketCounts(n int) BucketCounts {
	return BucketCounts{Counts: make([]uint64, n)}
}

// Add merges other into c. Both must have the same number of buckets.
func (c *BucketCounts) Add(other BucketCounts) {
	for i, v := range other.Counts {
		c.Counts[i] += v
	}
	c.Total += other.Total
}

// Aggregate classifies every pixel of grid in row-major order and counts
// how many fall into each of the buckets.
func Aggregate(grid PixelGrid, c Classifier, buckets int) BucketCounts {
	counts := NewBucketCounts(buckets)
	countRows(grid, c, 0, grid.Height(), &counts)
	return counts
}

func countRows(grid PixelGrid, c Classifier, y0, y1 int, counts *BucketCounts) {
	w := grid.Width()
	for y := y0; y < y1; y++ {
		for x := range w {
			counts.Counts[c.Classify(grid.PixelAt(x, y))]++
		}
	}
	counts.Total += uint64(w) * uint64(y1-y0)
}

// AggregateParallel is Aggregate with rows split across workers. Each worker
// owns its counts; they are summed once all rows are done, so the result is
// identical to Aggregate. The classifier must be safe for concurrent use.
func AggregateParallel(ctx context.Context, grid PixelGrid, c Classifier, buckets, workers int) (BucketCounts, error) {
	height := grid.Height()
	if workers <= 1 || height < 2 {
		return Aggregate(grid, c, buckets), nil
	}
	workers = min(workers, height)

	partials := make([]BucketCounts, workers)
	rows := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for i := range workers {
		y0 := i * rows
		y1 := min(y0+rows, height)
		partials[i] = NewBucketCounts(buckets)
		if y0 >= y1 {
			continue
		}
		wg.Add(1)
		go func(part *BucketCounts) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				if ctx.Err() != nil {
					return
				}
				countRows(grid, c, y, y+1, part)
			}
		}(&partials[i])
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return BucketCounts{}, fmt.Errorf("aggregation cancelled: %w", err)
	}

	total := NewBucketCounts(buckets)
	for _, p := range partials {
		total.Add(p)
	}
	return total, nil
}

// CountUnique returns the number of distinct RGB values in grid. Alpha is ignored.
func CountUnique(grid PixelGrid) int {
	seen := make([]uint64, TableSize/64)
	unique := 0
	for y := range grid.Height() {
		for x := range grid.Width() {
			rgb := grid.PixelAt(x, y) & RGBMask
			word, bit := rgb/64, rgb%64
			if seen[word]&(1<<bit) == 0 {
				seen[word] |= 1 << bit
				unique++
			}
		}
	}
	return unique
}
