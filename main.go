/*
Copyright © 2025 tieubaoca
*/
package main

import (
	"github.com/joho/godotenv"
	"github.com/tieubaoca/policy-insights-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional, secrets can come from the real environment
	_ = godotenv.Load()
}
