package colour

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
)

// TableSize is the number of entries in a lookup table: one per 24-bit RGB value.
const TableSize = 1 << 24

var (
	// ErrTableLength is returned when a table is not exactly TableSize bytes.
	ErrTableLength = errors.New("lookup table has wrong length")

	// ErrTableMismatch is returned when a table disagrees with its palette.
	ErrTableMismatch = errors.New("lookup table does not match palette")
)

// LookupTable maps every RGB value to a bucket index. Entry i is the bucket
// for RGB value i, with alpha stripped. Entries are unsigned bytes.
type LookupTable []uint8

// BuildOptions configures lookup table construction.
type BuildOptions struct {
	// Workers is the number of goroutines classifying colours.
	// Zero means runtime.NumCPU().
	Workers int

	// Logger receives progress messages. Nil disables logging.
	Logger hclog.Logger
}

// BuildLookupTable classifies every RGB value against p with brute force and
// records the result. For the curated OkLab palette this takes a long time;
// it is meant to be run offline and the result persisted with WriteTo.
//
// Work is split by red channel. Cancelling ctx stops the build early.
func BuildLookupTable(ctx context.Context, p *Palette, opts BuildOptions) (LookupTable, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("palette %s is empty", p.Name)
	}
	if p.Len() > 256 {
		return nil, fmt.Errorf("palette %s: %w (%d)", p.Name, ErrPaletteTooLarge, p.Len())
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	table := make(LookupTable, TableSize)
	classifier := NewBruteForce(p)

	reds := make(chan int)
	var done atomic.Int32
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range reds {
				base := uint32(r) << 16
				for gb := uint32(0); gb < 1<<16; gb++ {
					rgb := (base | gb) & RGBMask
					table[rgb] = uint8(classifier.Classify(rgb))
				}
				n := done.Add(1)
				if n%16 == 0 {
					logger.Debug("lookup table progress", "planes", n, "of", 256)
				}
			}
		}()
	}

	var err error
feed:
	for r := range 256 {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case reds <- r:
		}
	}
	close(reds)
	wg.Wait()

	if err != nil {
		return nil, fmt.Errorf("lookup table build cancelled: %w", err)
	}
	logger.Info("lookup table built", "palette", p.Name, "buckets", p.Len())
	return table, nil
}

// LoadLookupTable reads a raw table. The input must hold exactly TableSize bytes.
func LoadLookupTable(r io.Reader) (LookupTable, error) {
	table := make(LookupTable, TableSize)
	n, err := io.ReadFull(r, table)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrTableLength, n, TableSize)
		}
		return nil, fmt.Errorf("failed to read lookup table: %w", err)
	}

	var extra [1]byte
	if m, _ := r.Read(extra[:]); m > 0 {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTableLength, TableSize)
	}
	return table, nil
}

// WriteTo writes the raw table bytes.
func (t LookupTable) WriteTo(w io.Writer) (int64, error) {
	if len(t) != TableSize {
		return 0, fmt.Errorf("%w: %d entries", ErrTableLength, len(t))
	}
	n, err := w.Write(t)
	return int64(n), err
}

// Bucket returns the bucket recorded for a pixel. Alpha is ignored.
func (t LookupTable) Bucket(pixel uint32) int {
	return int(t[pixel&RGBMask])
}

// Verify checks the table against brute-force classification of samples.
// It fails if the table has the wrong length, points past the end of the
// palette, or disagrees with p for any sample.
func (t LookupTable) Verify(p *Palette, samples []uint32) error {
	if len(t) != TableSize {
		return fmt.Errorf("%w: %d entries", ErrTableLength, len(t))
	}
	bf := NewBruteForce(p)
	for _, s := range samples {
		got := t.Bucket(s)
		if got >= p.Len() {
			return fmt.Errorf("%w: %s maps to bucket %d, palette %s has %d buckets",
				ErrTableMismatch, RGBToHex(s), got, p.Name, p.Len())
		}
		if want := bf.Classify(s); got != want {
			return fmt.Errorf("%w: %s maps to bucket %d, expected %d",
				ErrTableMismatch, RGBToHex(s), got, want)
		}
	}
	return nil
}

// ReferenceSamples returns colours used to spot-check a table at startup:
// every palette entry, the primaries and a grey ramp.
func ReferenceSamples(p *Palette) []uint32 {
	samples := make([]uint32, 0, p.Len()+24)
	for i := range p.Len() {
		rgb, err := HexToRGB(p.Hex(i))
		if err == nil {
			samples = append(samples, rgb)
		}
	}
	samples = append(samples, SimplePalette().RGB...)
	for v := 0; v < 256; v += 15 {
		samples = append(samples, Pack(uint8(v), uint8(v), uint8(v)))
	}
	return samples
}

// RandomSamples returns n pseudo-random RGB values from a fixed seed.
func RandomSamples(n int, seed uint64) []uint32 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	out := make([]uint32, n)
	for i := range out {
		out[i] = rng.Uint32() & RGBMask
	}
	return out
}
