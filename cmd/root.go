package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "stock-advisor",
	Short: "AI-assisted stock analysis and portfolio backend",
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
