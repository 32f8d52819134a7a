package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"wgvanity/internal/app"
)

func (c *cli) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search REGEX",
		Short: "Search for key pairs until interrupted",
		Long: "Search for key pairs whose base64 public key matches REGEX (RE2 syntax).\n" +
			"Every match is printed; the search runs until interrupted.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.search(cmd, args[0])
		},
	}
}

func (c *cli) search(cmd *cobra.Command, expr string) error {
	w, err := app.NewWire(c.cfg, expr, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = w.Run(ctx)
	return err
}
