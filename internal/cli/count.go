package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/image"
	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "count <image|dir|url>...",
		Short: "Count the distinct colours of an image",
		Long: `Count how many distinct RGB values occur in an image. Alpha is ignored.

Examples:
  swatch count photo.png
  swatch count --format json ~/Pictures/wallpapers`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
			logger := commandLogger(cmd)

			paths, err := image.ExpandPaths(args)
			if err != nil {
				return fmt.Errorf("invalid image path: %w", err)
			}

			type countReport struct {
				Image  string `json:"image"`
				Unique int    `json:"unique_colours"`
			}
			reports := make([]countReport, 0, len(paths))
			loader := image.NewSmartLoader()
			for _, path := range paths {
				logger.Debug("loading image", "path", path)
				img, err := loader.Load(cmd.Context(), path)
				if err != nil {
					return fmt.Errorf("failed to load image: %w", err)
				}
				reports = append(reports, countReport{
					Image:  path,
					Unique: colour.CountUnique(image.NewGrid(img)),
				})
			}

			var sb strings.Builder
			if format == "json" {
				data, err := json.MarshalIndent(reports, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				sb.Write(data)
				sb.WriteString("\n")
			} else {
				for _, r := range reports {
					if len(reports) > 1 {
						fmt.Fprintf(&sb, "%s: ", r.Image)
					}
					fmt.Fprintf(&sb, "%d\n", r.Unique)
				}
			}
			return writeOutput(cmd.OutOrStdout(), "", sb.String())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}
