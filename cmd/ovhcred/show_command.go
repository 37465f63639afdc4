package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCommand(configFlag *string) *cobra.Command {
	var asJSON bool
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the credential resolved from a credential file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cred, path, err := loadCredential(*configFlag)
			if err != nil {
				return err
			}
			secret := cred.ApplicationSecret()
			consumer := cred.ConsumerKey()
			if !reveal {
				secret = mask(secret)
				consumer = mask(consumer)
			}
			if asJSON {
				return writeJSON(cmd, map[string]string{
					"source":             path,
					"host":               cred.Host(),
					"application_key":    cred.ApplicationKey(),
					"application_secret": secret,
					"consumer_key":       consumer,
				})
			}
			rows := [][]string{
				{"Source", path},
				{"Host", cred.Host()},
				{"Application key", cred.ApplicationKey()},
				{"Application secret", secret},
				{"Consumer key", consumer},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show secrets unmasked")
	return cmd
}
