package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var dbPath string

	rootCmd := &cobra.Command{
		Use:   "leadcomposer",
		Short: "Compose personalized WhatsApp messages for a list of leads",
		Long: "leadcomposer fills message templates with each lead's name and builds " +
			"wa.me links or a batch for an OS shortcut. Custom templates are kept in a local SQLite file.",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite file (overrides DB_PATH)")

	rootCmd.AddCommand(newServeCmd(&dbPath))
	rootCmd.AddCommand(newTUICmd(&dbPath))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
