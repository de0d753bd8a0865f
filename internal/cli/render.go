package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genart-dev/plugin-shapes/internal/config"
	"github.com/genart-dev/plugin-shapes/pkg/layer"
	"github.com/genart-dev/plugin-shapes/pkg/render"
	"github.com/genart-dev/plugin-shapes/pkg/shape"
)

const (
	formatSVG = "svg"
	formatPNG = "png"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string  // output file path (extension decides nothing; formats do)
	formats    string  // comma-separated output formats: "svg", "png"
	width      int     // viewport width in pixels
	height     int     // viewport height in pixels
	background string  // background fill color, empty for transparent
}

// renderCommand creates the render command for rasterizing layer documents.
// A layer document is a JSON array of layers, as produced by the file store
// or by the add_shape/add_line tools.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a layer document to SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			if opts.width == 0 {
				opts.width = cfg.Render.Width
			}
			if opts.height == 0 {
				opts.height = cfg.Render.Height
			}
			if opts.background == "" {
				opts.background = cfg.Render.Background
			}
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path (default: input name with new extension)")
	cmd.Flags().StringVarP(&opts.formats, "formats", "f", formatSVG, "comma-separated formats: svg,png")
	cmd.Flags().IntVar(&opts.width, "width", 0, "viewport width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "viewport height in pixels")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color (hex), empty for transparent")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	layers, err := readLayerDocument(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded layer document", "path", path, "layers", len(layers))

	docOpts := []render.Option{render.WithSize(opts.width, opts.height)}
	if opts.background != "" {
		docOpts = append(docOpts, render.WithBackground(opts.background))
	}

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(path, filepath.Ext(path))
	} else {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	for _, format := range strings.Split(opts.formats, ",") {
		format = strings.TrimSpace(format)
		var out []byte
		switch format {
		case formatSVG:
			out, err = render.SVGDocument(ctx, shape.Default(), layers, docOpts...)
		case formatPNG:
			out, err = render.PNGDocument(ctx, shape.Default(), layers, docOpts...)
		default:
			return fmt.Errorf("unknown format %q (want svg or png)", format)
		}
		if err != nil {
			return err
		}

		outPath := base + "." + format
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			return err
		}
		printFile(outPath)
	}

	prog.done(fmt.Sprintf("Rendered %d layers", len(layers)))
	return nil
}

// readLayerDocument loads a JSON array of layers from disk.
func readLayerDocument(path string) ([]*layer.Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var layers []*layer.Layer
	if err := json.Unmarshal(data, &layers); err != nil {
		return nil, fmt.Errorf("parsing layer document %s: %w", path, err)
	}
	return layers, nil
}
