package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List supported institutions",
	Long: `Lists every registered institution in dispatch order, with the
default currency each one reports.`,
	Run: func(cmd *cobra.Command, args []string) {
		registry := buildRegistry()
		for i, rs := range registry.RuleSets() {
			fmt.Printf("%2d  %-28s %s\n", i+1, rs.Bank, rs.Currency)
		}
	},
}

func init() {
	rootCmd.AddCommand(banksCmd)
}
