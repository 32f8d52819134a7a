package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"wgvanity/internal/config"
)

// version is overridden at build time with -ldflags "-X ...commands.version=...".
var version = "dev"

// errNoPattern is returned after printing help when no pattern is given.
var errNoPattern = errors.New("a pattern is required")

// cli holds state shared by the commands of one invocation.
type cli struct {
	flags config.Config
	cfg   *config.Config
}

// Execute runs the wgvanity CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "wgvanity [REGEX]",
		Short:        "Find WireGuard key pairs whose public key matches a regex",
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.flags, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if err := cmd.Help(); err != nil {
					return err
				}
				return errNoPattern
			}
			return c.search(cmd, args[0])
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.IntVarP(&c.flags.Workers, config.FlagWorkers, "w", 0, "parallel workers (default one per CPU)")
	pf.DurationVar(&c.flags.Calibration, config.FlagCalibration, 0, "minimum rate sampling window (default 1s)")
	pf.Uint64Var(&c.flags.MinSamples, config.FlagMinSamples, 0, "minimum rate sampling attempts (default 64)")
	pf.Uint64Var(&c.flags.MaxAttempts, config.FlagMaxAttempts, 0, "stop each worker after this many attempts (default unlimited)")
	pf.BoolVar(&c.flags.SkipCalibration, config.FlagSkipCalibration, false, "do not measure the search rate")
	pf.BoolVar(&c.flags.SkipVerify, config.FlagSkipVerify, false, "do not re-derive matches before printing them")
	pf.StringVar(&c.flags.LogLevel, config.FlagLogLevel, "", "diagnostic level: trace, debug, info, warn, error (default info)")
	pf.StringVar(&c.flags.LogFormat, config.FlagLogFormat, "", "diagnostic format: console or json (default console)")

	root.AddCommand(c.searchCmd(), c.rateCmd(), c.pubkeyCmd())
	return root
}
