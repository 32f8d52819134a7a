package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wgvanity/internal/app"
	"wgvanity/internal/rate"
)

func (c *cli) rateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate REGEX",
		Short: "Measure the search rate and estimate the wait for REGEX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(c.cfg, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			s := w.Calibrate()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "rate: %s per worker, %d workers\n", rate.Format(s.Rate), w.Search.Workers())
			est := w.Pattern.Expected()
			switch {
			case est.Never():
				fmt.Fprintln(out, "expected: never (pattern uses symbols outside the key alphabet)")
			case !est.Known:
				fmt.Fprintln(out, "expected: unknown for this pattern")
			default:
				fmt.Fprintf(out, "expected: %.0f attempts", est.Attempts)
				if eta, ok := rate.ETA(est.Attempts, s.Rate*float64(w.Search.Workers())); ok {
					fmt.Fprintf(out, ", about %s", eta.Round(time.Second))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
