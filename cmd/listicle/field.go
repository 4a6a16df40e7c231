package main

import "github.com/spf13/cobra"

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Manage collection fields",
}

func init() {
	fieldCmd.AddCommand(fieldAddCmd)
}
