package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	cloudgen "github.com/Erkaman/cloud-gen"
	"github.com/Erkaman/cloud-gen/render"
	"github.com/Erkaman/cloud-gen/theme"
)

const (
	formatSVG = "svg"
	formatPNG = "png"
)

type options struct {
	verbose   bool
	themeName string
	themeFile string
	seed      uint64
	width     float64
	height    float64
	format    string
	scale     float64
	output    string
	dir       string

	log *zap.Logger
}

// newRootCmd returns the command tree. If log is nil, a production logger is
// built once flags are parsed.
func newRootCmd(log *zap.Logger) *cobra.Command {
	opts := &options{log: log}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	rootCmd := &cobra.Command{
		Use:   "cloudgen",
		Short: "Procedurally generate skies full of cartoon clouds",
		Long: `cloudgen scatters non-overlapping, hand-drawn looking clouds over a canvas
and writes the result as an SVG document or a PNG image.

Scenes are fully determined by the theme and the seed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.log != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.log = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
		RunE: generateCmd.RunE,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemes(cmd.OutOrStdout())
		},
	}

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Render every built-in theme into a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log every placement decision")
	pf.Uint64Var(&opts.seed, "seed", 0, "random seed")
	pf.StringVar(&opts.format, "format", "", "output format, svg or png (default: from the output file name, else svg)")
	pf.Float64Var(&opts.scale, "scale", 1, "pixels per canvas unit for png output")

	for _, cmd := range []*cobra.Command{rootCmd, generateCmd} {
		f := cmd.Flags()
		f.StringVarP(&opts.themeName, "theme", "t", theme.BlueSky, "built-in theme, see 'cloudgen themes'")
		f.StringVar(&opts.themeFile, "theme-file", "", "load the theme from a YAML file instead")
		f.Float64Var(&opts.width, "width", 0, "canvas width (default: the theme's)")
		f.Float64Var(&opts.height, "height", 0, "canvas height (default: the theme's)")
		f.StringVarP(&opts.output, "output", "o", "-", "output file, - for standard output")
	}
	allCmd.Flags().StringVar(&opts.dir, "dir", ".", "directory to write the scenes to")

	rootCmd.AddCommand(generateCmd, themesCmd, allCmd)
	return rootCmd
}

func (o *options) resolveTheme() (theme.Theme, error) {
	var (
		th  theme.Theme
		err error
	)
	if o.themeFile != "" {
		th, err = theme.LoadFile(o.themeFile)
	} else {
		th, err = theme.Lookup(o.themeName)
	}
	if err != nil {
		return theme.Theme{}, err
	}
	if o.width > 0 {
		th.Width = o.width
	}
	if o.height > 0 {
		th.Height = o.height
	}
	return th, nil
}

// outputFormat picks the format from the flag or from the output file's
// extension.
func (o *options) outputFormat(name string) (string, error) {
	format := strings.ToLower(o.format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
		if format != formatPNG {
			format = formatSVG
		}
	}
	switch format {
	case formatSVG, formatPNG:
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q, want %s or %s", o.format, formatSVG, formatPNG)
	}
}

func (o *options) generate(th theme.Theme) (*cloudgen.Scene, error) {
	log := o.log.With(zap.String("theme", th.Name), zap.Uint64("seed", o.seed))
	s, err := cloudgen.Generate(th.Request(o.seed), cloudgen.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Info("generated scene", zap.Int("clouds", len(s.Clouds)))
	return s, nil
}

func (o *options) write(w io.Writer, format string, s *cloudgen.Scene, th theme.Theme) error {
	if format == formatPNG {
		return render.WritePNG(w, s, th, o.scale)
	}
	return render.WriteSVG(w, s, th)
}

func runGenerate(cmd *cobra.Command, o *options) error {
	format, err := o.outputFormat(o.output)
	if err != nil {
		return err
	}
	th, err := o.resolveTheme()
	if err != nil {
		return err
	}
	s, err := o.generate(th)
	if err != nil {
		return err
	}
	if o.output == "" || o.output == "-" {
		return o.write(cmd.OutOrStdout(), format, s, th)
	}
	return o.writeFile(o.output, format, s, th)
}

func (o *options) writeFile(name, format string, s *cloudgen.Scene, th theme.Theme) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err := o.write(f, format, s, th); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	o.log.Debug("wrote scene", zap.String("file", name))
	return nil
}

func runThemes(w io.Writer) error {
	for _, th := range theme.All() {
		total := 0
		classes := make([]string, len(th.Classes))
		for i, c := range th.Classes {
			total += c.Count
			classes[i] = fmt.Sprintf("%s×%d", c.Name, c.Count)
		}
		if _, err := fmt.Fprintf(w, "%-10s %3d clouds (%s)\n", th.Name, total, strings.Join(classes, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// runAll renders the built-in themes concurrently. Every scene has its own
// generator, so the output matches running generate once per theme.
func runAll(o *options) error {
	format := strings.ToLower(o.format)
	if format == "" {
		format = formatSVG
	}
	if _, err := o.outputFormat("." + format); err != nil {
		return err
	}
	if err := os.MkdirAll(o.dir, 0o755); err != nil {
		return err
	}

	var g errgroup.Group
	for _, th := range theme.All() {
		g.Go(func() error {
			s, err := o.generate(th)
			if err != nil {
				return err
			}
			return o.writeFile(filepath.Join(o.dir, th.Name+"."+format), format, s, th)
		})
	}
	return g.Wait()
}
