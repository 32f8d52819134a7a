package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wgvanity/internal/crypto"
	"wgvanity/internal/domain"
)

func (c *cli) pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Read a base64 private key from stdin and print its public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read private key: %w", err)
			}
			raw, err := crypto.DecodeKey(strings.TrimSpace(line))
			if err != nil {
				return err
			}
			priv := domain.MustX25519Private(raw[:])
			crypto.Wipe(raw[:])
			defer crypto.WipePrivate(&priv)
			crypto.Clamp(&priv)

			pub, err := crypto.PublicX25519(priv)
			if err != nil {
				return err
			}
			if !c.cfg.SkipVerify {
				if err := crypto.Verify(domain.KeyPair{Private: priv, Public: pub}); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), crypto.B64(pub[:]))
			return err
		},
	}
}
