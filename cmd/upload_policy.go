/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/policy-insights-be/utils"
)

// uploadPolicyCmd represents the uploadPolicy command
var uploadPolicyCmd = &cobra.Command{
	Use:   "upload-policy",
	Short: "Copy a policy PDF into the policy directory",
	Long: `Copies a single policy PDF into the policy directory under a
timestamped filename so the server can list and answer questions about it.`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		policyDir, _ := cmd.Flags().GetString("policy-dir")

		if strings.ToLower(filepath.Ext(filePath)) != ".pdf" {
			log.Fatalf("Not a PDF file: %s", filePath)
		}

		destPath, err := utils.CopyFileWithTimestamp(filePath, policyDir)
		if err != nil {
			log.Fatalf("Failed to copy policy: %v", err)
		}
		fmt.Println("Stored policy at", destPath)
	},
}

func init() {
	rootCmd.AddCommand(uploadPolicyCmd)

	uploadPolicyCmd.Flags().StringP("file", "f", "", "Path to the policy PDF")
	uploadPolicyCmd.Flags().StringP("policy-dir", "p", "policies", "Policy directory")
	uploadPolicyCmd.MarkFlagRequired("file")
}
