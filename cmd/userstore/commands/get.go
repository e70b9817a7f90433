package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"userstore/internal/domain"
)

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <username>",
		Short: "Print the record stored for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := domain.Username(args[0])

			v, ok, err := appCtx.Store.Get(u)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%q: %w", u, domain.ErrNotFound)
			}

			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
