package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/swatch/internal/artifact"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/image"
	"github.com/spf13/cobra"
)

// dominantOptions holds the flags shared by the dominant and main commands.
type dominantOptions struct {
	palette     string
	paletteFile string
	colourspace string
	top         int
	lut         string
	workers     int
	format      string
	preview     bool
	output      string
}

func newDominantCmd() *cobra.Command {
	opts := &dominantOptions{}
	defaults := colour.DefaultExtractorConfig()

	cmd := &cobra.Command{
		Use:   "dominant <image|dir|url>...",
		Short: "Rank the dominant palette colours of an image",
		Long: `Classify every pixel of an image into the nearest palette colour and
rank the palette colours by how many pixels they received.

Directories are scanned for images (non-recursively) and URLs are fetched.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF

Examples:
  # Top 5 curated colours compared in OkLab (CIEDE2000)
  swatch dominant wallpaper.jpg

  # Use a prebuilt lookup table for the curated palette
  swatch dominant --lut curated.lut.zst wallpaper.jpg

  # Top 3 simple colours compared in RGB, as JSON
  swatch dominant --palette simple --colourspace rgb --top 3 --format json photo.png

  # Custom palette, one hex colour per line
  swatch dominant --palette-file brand.txt logo.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDominant(cmd, args, colour.AlgorithmDominant, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.palette, "palette", "p", defaults.Palette, "built-in palette (simple, curated)")
	cmd.Flags().StringVar(&opts.paletteFile, "palette-file", "", "file of hex colours, one per line (overrides --palette)")
	cmd.Flags().StringVarP(&opts.colourspace, "colourspace", "s", string(defaults.Colourspace), "comparison colourspace (rgb, oklab)")
	cmd.Flags().IntVarP(&opts.top, "top", "k", defaults.Count, "number of colours to report")
	cmd.Flags().StringVar(&opts.lut, "lut", "", "prebuilt lookup table for the palette (env "+EnvLUT+")")
	addReportFlags(cmd, opts)
	return cmd
}

func newMainCmd() *cobra.Command {
	opts := &dominantOptions{top: 1}

	cmd := &cobra.Command{
		Use:   "main <image|dir|url>...",
		Short: "Report the most common primary colour of an image",
		Long: `Classify every pixel into the six primary and secondary colours
(red, green, blue, yellow, cyan, magenta) by RGB distance and report the
most frequent one.

Examples:
  swatch main photo.png
  swatch main --format json photo.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.palette = colour.PaletteSimple
			opts.colourspace = string(colour.ColourspaceRGB)
			return runDominant(cmd, args, colour.AlgorithmPrimary, opts)
		},
	}

	addReportFlags(cmd, opts)
	return cmd
}

func addReportFlags(cmd *cobra.Command, opts *dominantOptions) {
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "goroutines per image (default: env "+EnvWorkers+" or CPU count)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text, hex, json)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews in terminal")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
}

// runDominant executes the dominant and main commands.
func runDominant(cmd *cobra.Command, args []string, alg colour.Algorithm, opts *dominantOptions) error {
	logger := commandLogger(cmd)

	config := colour.ExtractorConfig{
		Algorithm:   alg,
		Palette:     opts.palette,
		Colourspace: colour.Colourspace(strings.ToLower(opts.colourspace)),
		Count:       opts.top,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	workers, err := resolveWorkers(opts.workers)
	if err != nil {
		return err
	}

	palette, err := resolvePalette(opts.palette, opts.paletteFile, opts.colourspace)
	if err != nil {
		return fmt.Errorf("failed to resolve palette: %w", err)
	}

	extractorOpts := colour.DominantOptions{
		Palette: palette,
		Workers: workers,
		Logger:  logger,
	}
	if alg == colour.AlgorithmDominant {
		if path := resolveLUT(opts.lut, palette, opts.paletteFile); path != "" {
			logger.Debug("loading lookup table", "path", path)
			table, err := artifact.LoadTable(path)
			if err != nil {
				return err
			}
			extractorOpts.Table = table
		}
	}

	extractor, err := colour.NewExtractor(alg, extractorOpts)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	paths, err := image.ExpandPaths(args)
	if err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	reports := make([]imageReport, 0, len(paths))
	loader := image.NewSmartLoader()
	for _, path := range paths {
		report, err := extractImage(cmd, loader, extractor, path, opts.top, logger)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	output, err := formatReports(reports, opts.format, previewEnabled(cmd, opts.preview))
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if err := writeOutput(cmd.OutOrStdout(), opts.output, output); err != nil {
		return err
	}
	if opts.output != "" {
		logger.Info("wrote report", "path", opts.output)
	}
	return nil
}

// imageReport is the result for one input image.
type imageReport struct {
	Image  string `json:"image"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	*colour.Result
}

func extractImage(cmd *cobra.Command, loader image.Loader, extractor colour.Extractor, path string, top int, logger hclog.Logger) (imageReport, error) {
	logger.Debug("loading image", "path", path)
	img, err := loader.Load(cmd.Context(), path)
	if err != nil {
		return imageReport{}, fmt.Errorf("failed to load image: %w", err)
	}

	grid := image.NewGrid(img)
	logger.Debug("image loaded", "width", grid.Width(), "height", grid.Height())

	result, err := extractor.Extract(cmd.Context(), grid, top)
	if err != nil {
		return imageReport{}, fmt.Errorf("failed to extract colours from %s: %w", path, err)
	}

	return imageReport{
		Image:  path,
		Width:  grid.Width(),
		Height: grid.Height(),
		Result: result,
	}, nil
}

func validateFormat(format string) error {
	switch format {
	case "text", "hex", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, hex, json)", format)
	}
}

// formatReports renders reports according to the specified format. A single
// JSON report is an object; several are an array.
func formatReports(reports []imageReport, format string, showPreview bool) (string, error) {
	switch format {
	case "json":
		var (
			data []byte
			err  error
		)
		if len(reports) == 1 {
			data, err = json.MarshalIndent(reports[0], "", "  ")
		} else {
			data, err = json.MarshalIndent(reports, "", "  ")
		}
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	case "hex":
		var sb strings.Builder
		for _, r := range reports {
			if len(reports) > 1 {
				fmt.Fprintf(&sb, "# %s\n", r.Image)
			}
			sb.WriteString(formatHex(r.Colours, showPreview))
		}
		return sb.String(), nil
	case "text":
		var sb strings.Builder
		for i, r := range reports {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(formatText(r, showPreview))
		}
		return sb.String(), nil
	default:
		return "", validateFormat(format)
	}
}

// formatHex lists colour hex codes, one per line.
func formatHex(colours []colour.DominantColour, showPreview bool) string {
	var sb strings.Builder
	for _, c := range colours {
		if showPreview {
			if rgb, err := colour.HexToRGB(c.Hex); err == nil {
				sb.WriteString(colour.FormatColourWithPreview(colour.RGBFromPacked(rgb), 8) + "\n")
				continue
			}
		}
		sb.WriteString(c.Hex + "\n")
	}
	return sb.String()
}

// formatText renders one report as a summary line followed by a table.
func formatText(r imageReport, showPreview bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %dx%d, %d pixels, palette %s (%s, %s)\n",
		r.Image, r.Width, r.Height, r.Total, r.Palette, r.Colourspace, r.Strategy)

	if len(r.Colours) == 0 {
		sb.WriteString("No colours\n")
		return sb.String()
	}

	headers := []string{"Rank", "Colour", "Percent", "Pixels", "Bucket"}
	if showPreview {
		headers = append(headers, "Preview")
	}
	table := NewTable(headers)
	table.SetColumnAlignRight(0)
	table.SetColumnAlignRight(2)
	table.SetColumnAlignRight(3)
	table.SetColumnAlignRight(4)

	for i, c := range r.Colours {
		row := []string{
			strconv.Itoa(i + 1),
			c.Hex,
			fmt.Sprintf("%.2f%%", c.Percent),
			strconv.FormatUint(c.Count, 10),
			strconv.Itoa(c.Bucket),
		}
		if showPreview {
			if rgb, err := colour.HexToRGB(c.Hex); err == nil {
				row = append(row, colour.ColourPreview(colour.RGBFromPacked(rgb), 8))
			}
		}
		table.AddRow(row)
	}
	sb.WriteString(table.Render())
	return sb.String()
}
