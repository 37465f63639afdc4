package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ovhcred/internal/endpoints"
)

func newEndpointsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List recognized endpoint identifiers and their API hosts",
		RunE: func(cmd *cobra.Command, args []string) error {
			known := endpoints.Known()
			if asJSON {
				hosts := make(map[string]string, len(known))
				for _, id := range known {
					hosts[id] = endpoints.Host(id)
				}
				return writeJSON(cmd, hosts)
			}
			rows := make([][]string, 0, len(known)+1)
			for _, id := range known {
				rows = append(rows, []string{id, endpoints.Host(id)})
			}
			rows = append(rows, []string{"(other)", endpoints.DefaultHost})
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Endpoint", "Host"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
