package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ovhcred/internal/credential"
)

func newInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample credential file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = credential.DefaultPath
			} else {
				expanded, err := expandPath(target)
				if err != nil {
					return fmt.Errorf("resolve credential path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("credential file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check credential path: %w", err)
				}
			}

			if err := credential.CreateSample(target); err != nil {
				return fmt.Errorf("create sample credential file: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample credential file to %s\n", target)
			fmt.Fprintln(out, "Edit the file to set your application key, application secret, and consumer key.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the credential file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing file")
	return cmd
}
