package main

import "github.com/spf13/cobra"

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage collection items",
}

func init() {
	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemUpdateCmd)
	itemCmd.AddCommand(itemRemoveCmd)
}
