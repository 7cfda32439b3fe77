/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/policy-insights-be/utils"
)

// batchUploadPolicyCmd represents the batchUploadPolicy command
var batchUploadPolicyCmd = &cobra.Command{
	Use:   "batch-upload-policy",
	Short: "Copy every policy PDF in a directory into the policy directory",
	Run: func(cmd *cobra.Command, args []string) {
		directory, _ := cmd.Flags().GetString("directory")
		policyDir, _ := cmd.Flags().GetString("policy-dir")

		files, err := os.ReadDir(directory)
		if err != nil {
			log.Fatalf("Failed to read directory: %v", err)
		}
		for _, file := range files {
			if file.IsDir() || strings.ToLower(filepath.Ext(file.Name())) != ".pdf" {
				continue
			}
			filePath := filepath.Join(directory, file.Name())
			destPath, err := utils.CopyFileWithTimestamp(filePath, policyDir)
			if err != nil {
				log.Printf("Failed to copy policy %s: %v", filePath, err)
				continue
			}
			fmt.Println("Stored policy at", destPath)
		}
	},
}

func init() {
	rootCmd.AddCommand(batchUploadPolicyCmd)

	batchUploadPolicyCmd.Flags().String("directory", "", "Path to the dir of policy PDFs")
	batchUploadPolicyCmd.Flags().StringP("policy-dir", "p", "policies", "Policy directory")
	batchUploadPolicyCmd.MarkFlagRequired("directory")
}
