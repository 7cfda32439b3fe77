/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/policy-insights-be/database"
	"github.com/tieubaoca/policy-insights-be/repository"
	"github.com/tieubaoca/policy-insights-be/service"
)

// importLogCmd represents the importLog command
var importLogCmd = &cobra.Command{
	Use:   "import-log [csv files]",
	Short: "Import legacy CSV query logs into the store",
	Long: `Imports legacy CSV query logs into the embedded store. All three
historical header shapes are accepted:

  timestamp,context,question,answer
  timestamp,policy,question,answer
  timestamp,question,answer

"policy" is mapped to "context"; rows without a context column are labeled
"General".`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dataDir, _ := cmd.Flags().GetString("data-dir")

		store, err := database.NewStore(dataDir)
		if err != nil {
			log.Fatalf("Failed to open store: %v", err)
		}
		defer store.Close()

		queryRepo := repository.NewQueryRepo(store)
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				log.Fatalf("Failed to open %s: %v", path, err)
			}
			imported, err := service.ImportLegacyCSV(context.Background(), f, queryRepo)
			f.Close()
			if err != nil {
				log.Fatalf("Failed to import %s: %v", path, err)
			}
			fmt.Printf("Imported %d rows from %s\n", imported, path)
		}
	},
}

func init() {
	rootCmd.AddCommand(importLogCmd)

	importLogCmd.Flags().StringP("data-dir", "d", "data", "Data directory of the store")
}
