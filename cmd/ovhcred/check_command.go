package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ovhcred/internal/credential"
)

func newCheckCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that a credential file loads",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			cred, path, err := loadCredential(*configFlag)
			fmt.Fprintln(out, renderStatusLine("Credential file", statusInfo, path, colorize))
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("Load", statusError, describeLoadError(err), colorize))
				return err
			}
			fmt.Fprintln(out, renderStatusLine("Load", statusOK, "", colorize))
			fmt.Fprintln(out, renderStatusLine("Host", statusInfo, cred.Host(), colorize))
			for _, field := range []struct {
				label string
				value string
			}{
				{"Application key", cred.ApplicationKey()},
				{"Application secret", cred.ApplicationSecret()},
				{"Consumer key", cred.ConsumerKey()},
			} {
				kind, message := keyStatus(field.value)
				fmt.Fprintln(out, renderStatusLine(field.label, kind, message, colorize))
			}
			return nil
		},
	}
}

func describeLoadError(err error) string {
	var missing *credential.MissingFieldError
	switch {
	case errors.As(err, &missing):
		return fmt.Sprintf("missing required field %q", missing.Field)
	case errors.Is(err, credential.ErrParse):
		return "file is not valid TOML"
	case errors.Is(err, credential.ErrRead):
		return "file could not be read (run 'ovhcred init' to scaffold one)"
	}
	return err.Error()
}

func keyStatus(value string) (statusKind, string) {
	if value == "" {
		return statusWarn, "empty"
	}
	return statusOK, "set"
}
