package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wq",
	Short: "Wq is a tool for processing whitespace separated values.",
	Long:  "Wq is a tool for processing WSV (whitespace separated values) data. It can parse WSV files, normalize them, and convert them to other representations such as JSON.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Wq",
	Long:  `All software has versions. This is Wq's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Wq v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(wsvCmd)
}
