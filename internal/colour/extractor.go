package colour

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Extractor ranks the colours of an image against a palette.
type Extractor interface {
	// Extract classifies every pixel of grid and returns the top count buckets.
	Extract(ctx context.Context, grid PixelGrid, count int) (*Result, error)
}

// Algorithm represents the colour extraction algorithm type.
type Algorithm string

const (
	// AlgorithmDominant ranks buckets of the configured palette by pixel frequency.
	AlgorithmDominant Algorithm = "dominant"

	// AlgorithmPrimary reports the single most frequent colour of the simple palette.
	AlgorithmPrimary Algorithm = "primary"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmDominant,
		AlgorithmPrimary,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// Strategy names how pixels were classified.
type Strategy string

const (
	StrategyBruteForce Strategy = "bruteforce"
	StrategyLookup     Strategy = "lookup"
)

// DominantOptions configures a DominantExtractor.
type DominantOptions struct {
	// Palette supplies the buckets. Required.
	Palette *Palette

	// Table, when set, replaces brute-force classification. It must have been
	// built from Palette and is only accepted for OkLab palettes.
	Table LookupTable

	// Workers splits aggregation across goroutines. Values below 2 run serially.
	Workers int

	// Logger receives debug output. Nil disables logging.
	Logger hclog.Logger
}

// Validate validates the options.
func (o DominantOptions) Validate() error {
	if o.Palette == nil {
		return fmt.Errorf("palette is required")
	}
	if o.Palette.Len() == 0 {
		return fmt.Errorf("palette %s is empty", o.Palette.Name)
	}
	if o.Table != nil {
		if o.Palette.Space != ColourspaceOkLab {
			return fmt.Errorf("lookup tables are only supported for oklab palettes, got %s", o.Palette.Space)
		}
		if o.Palette.Len() > 256 {
			return fmt.Errorf("palette %s: %w", o.Palette.Name, ErrPaletteTooLarge)
		}
		if len(o.Table) != TableSize {
			return fmt.Errorf("%w: %d entries", ErrTableLength, len(o.Table))
		}
	}
	if o.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", o.Workers)
	}
	return nil
}

// DominantExtractor implements Extractor by bucket classification.
type DominantExtractor struct {
	palette    *Palette
	classifier Classifier
	strategy   Strategy
	workers    int
	logger     hclog.Logger
}

// NewDominantExtractor creates an extractor. When a table is supplied it is
// spot-checked against the palette; a mismatch is returned as an error.
func NewDominantExtractor(opts DominantOptions) (*DominantExtractor, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	e := &DominantExtractor{
		palette: opts.Palette,
		workers: opts.Workers,
		logger:  logger,
	}

	if opts.Table != nil {
		if err := opts.Table.Verify(opts.Palette, ReferenceSamples(opts.Palette)); err != nil {
			return nil, fmt.Errorf("lookup table rejected: %w", err)
		}
		e.classifier = NewLookupClassifier(opts.Table)
		e.strategy = StrategyLookup
	} else {
		e.classifier = NewBruteForce(opts.Palette)
		e.strategy = StrategyBruteForce
	}

	logger.Debug("extractor ready", "palette", opts.Palette.Name,
		"colourspace", opts.Palette.Space, "strategy", e.strategy)
	return e, nil
}

// Strategy reports how pixels are classified.
func (e *DominantExtractor) Strategy() Strategy {
	return e.strategy
}

// Palette returns the extractor's palette.
func (e *DominantExtractor) Palette() *Palette {
	return e.palette
}

// Extract classifies every pixel of grid and returns the count most frequent buckets.
func (e *DominantExtractor) Extract(ctx context.Context, grid PixelGrid, count int) (*Result, error) {
	if grid == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}

	e.logger.Debug("classifying pixels", "width", grid.Width(), "height", grid.Height(), "workers", e.workers)

	counts, err := AggregateParallel(ctx, grid, e.classifier, e.palette.Len(), e.workers)
	if err != nil {
		return nil, err
	}

	return &Result{
		Palette:     e.palette.Name,
		Colourspace: e.palette.Space,
		Strategy:    e.strategy,
		Total:       counts.Total,
		Colours:     Rank(counts, e.palette, count),
	}, nil
}

// NewExtractor creates an Extractor for the given algorithm. AlgorithmPrimary
// ignores opts.Palette and always uses the simple palette.
func NewExtractor(alg Algorithm, opts DominantOptions) (Extractor, error) {
	switch alg {
	case AlgorithmDominant:
		return NewDominantExtractor(opts)
	case AlgorithmPrimary:
		opts.Palette = SimplePalette()
		opts.Table = nil
		return NewDominantExtractor(opts)
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

// Result is the ranked outcome of one extraction.
type Result struct {
	Palette     string           `json:"palette"`
	Colourspace Colourspace      `json:"colourspace"`
	Strategy    Strategy         `json:"strategy"`
	Total       uint64           `json:"total_pixels"`
	Colours     []DominantColour `json:"colours"`
}

// ToJSON converts the result to indented JSON.
func (r *Result) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// String returns a human-readable listing of the ranked colours.
func (r *Result) String() string {
	if len(r.Colours) == 0 {
		return "No colours\n"
	}
	var sb strings.Builder
	for i, c := range r.Colours {
		fmt.Fprintf(&sb, "%2d: %s %6.2f%%\n", i+1, c.Hex, c.Percent)
	}
	return sb.String()
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	Algorithm   Algorithm
	Palette     string
	Colourspace Colourspace
	Count       int
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:   AlgorithmDominant,
		Palette:     PaletteCurated,
		Colourspace: ColourspaceOkLab,
		Count:       5,
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s", c.Algorithm)
	}
	if c.Palette != PaletteSimple && c.Palette != PaletteCurated {
		return fmt.Errorf("invalid palette: %s", c.Palette)
	}
	if _, err := ParseColourspace(string(c.Colourspace)); err != nil {
		return err
	}
	return nil
}
