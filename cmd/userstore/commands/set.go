package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"userstore/internal/domain"
)

// set <username> <value>: value is JSON or YAML; "-" reads it from stdin.
func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <username> <value>",
		Short: "Store a JSON or YAML value for a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := domain.Username(args[0])

			raw := []byte(args[1])
			if args[1] == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				raw = b
			}

			// YAML is a superset of JSON, so one parser covers both.
			var v any
			if err := yaml.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("parsing value for %q: %w", u, err)
			}

			if err := appCtx.Store.Set(u, stringKeys(v)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "saved")
			return nil
		},
	}
}

// stringKeys rewrites YAML mappings with non-string keys (e.g. "1: a") into
// map[string]any so every parsed value can be stored as JSON.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = stringKeys(e)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = stringKeys(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = stringKeys(e)
		}
		return t
	default:
		return v
	}
}
