package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"userstore/internal/domain"
)

func pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <username>",
		Short: "Print the file a user's record is written to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Local == nil {
				return errors.New("no record files in --ephemeral mode")
			}
			p, err := appCtx.Local.Path(domain.Username(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}
