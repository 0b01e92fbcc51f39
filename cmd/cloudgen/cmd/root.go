package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"cloud-gen/internal/batch"
	"cloud-gen/internal/cloud"
	"cloud-gen/internal/config"
	"cloud-gen/internal/logging"
	"cloud-gen/internal/output"
	"cloud-gen/internal/sheet"
)

type rootOptions struct {
	configPath string
	sets       map[string]string

	dir      string
	parallel bool
	workers  int
	seed     int64
	sheet    string
	verbose  bool
}

// RootCmd is the root Cobra command that gets called from the main func.
func RootCmd() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "cloudgen <count>",
		Short: "cloudgen renders cloud sprites as transparent PNG files.",
		Long: `cloudgen renders <count> independent cloud sprites, each a white
image whose alpha channel traces a noisy blob, and writes them to
<out>/cloud0.png .. <out>/cloud<count-1>.png.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &batch.UsageError{Err: errors.Errorf("expected exactly one cloud count, got %d arguments", len(args))}
			}
			_, err := batch.ParseCount(args[0])
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := batch.ParseCount(args[0])
			if err != nil {
				return err
			}
			return o.run(cmd, count)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "YAML config file (defaults to $"+config.EnvPath+")")
	pf.StringToStringVar(&o.sets, "set", nil, "cloud parameter override in key=value form (repeatable)")

	f := cmd.Flags()
	f.StringVarP(&o.dir, "out", "o", "clouds", "output directory")
	f.BoolVarP(&o.parallel, "parallel", "p", false, "generate clouds concurrently")
	f.IntVar(&o.workers, "workers", 0, "maximum concurrent clouds with --parallel (0 = one per cloud)")
	f.Int64Var(&o.seed, "seed", 0, "base random seed (0 = derive from the clock)")
	f.StringVar(&o.sheet, "sheet", "", "also write a contact sheet of all clouds to this path")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log per-row progress")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &batch.UsageError{Err: err}
	})
	cmd.AddCommand(paramsCmd(o))
	return cmd
}

// load resolves cloud parameters: defaults, then the config file,
// then --set overrides.
func (o *rootOptions) load() (*config.Config, cloud.Params, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, cloud.Params{}, err
	}
	params := cloud.FromMap(cfg.Cloud, o.sets)
	if err := params.Validate(); err != nil {
		return nil, cloud.Params{}, err
	}
	return cfg, params, nil
}

func (o *rootOptions) run(cmd *cobra.Command, count int) error {
	cfg, params, err := o.load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	opts := batch.Options{
		Count:    count,
		Dir:      cfg.Batch.Dir,
		Params:   params,
		Seed:     cfg.Batch.Seed,
		Parallel: cfg.Batch.Parallel,
		Workers:  cfg.Batch.Workers,
	}
	if flags.Changed("out") || opts.Dir == "" {
		opts.Dir = o.dir
	}
	if flags.Changed("parallel") {
		opts.Parallel = o.parallel
	}
	if flags.Changed("workers") {
		opts.Workers = o.workers
	}
	if flags.Changed("seed") {
		opts.Seed = o.seed
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	logger := logging.New(cmd.OutOrStdout(), o.verbose)
	logger.WithField("seed", opts.Seed).Infof("generating %d clouds (%dx%d)", count, params.Size, params.Size)

	report, err := batch.Run(cmd.Context(), opts, output.PNGWriter{}, logger)
	if err != nil {
		return err
	}

	if o.sheet != "" && len(report.Paths) > 0 {
		img, err := sheet.ComposeFiles(report.Paths, sheet.DefaultLayout())
		if err != nil {
			return err
		}
		if err := (output.PNGWriter{}).Save(o.sheet, img); err != nil {
			return err
		}
		logger.WithField("path", o.sheet).Info("wrote contact sheet")
	}
	return nil
}

func paramsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the effective cloud parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, params, err := o.load()
			if err != nil {
				return err
			}
			return params.Snapshot().Write(cmd.OutOrStdout())
		},
	}
}

// Execute runs the command line and returns the process exit status. Usage
// errors print the usage text to out.
func Execute(ctx context.Context, args []string, out io.Writer) int {
	root := RootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var usage *batch.UsageError
	if errors.As(err, &usage) {
		fmt.Fprintf(out, "%v\n\n%s", err, root.UsageString())
		return 1
	}
	fmt.Fprintf(out, "error: %v\n", err)
	return 1
}
