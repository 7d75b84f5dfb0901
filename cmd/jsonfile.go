package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scrapekit/internal/jsonio"
)

var jsonLabel string

var jsonCmd = &cobra.Command{
	Use:   "json",
	Short: "Inspect or rewrap JSON documents",
}

var jsonShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Load a JSON file and pretty-print its content",
	Args:  cobra.ExactArgs(1),
	Run:   runJSONShowCommand,
}

var jsonWrapCmd = &cobra.Command{
	Use:   "wrap [input] [output]",
	Short: "Load a JSON file and save it wrapped under a key",
	Args:  cobra.ExactArgs(2),
	Run:   runJSONWrapCommand,
}

func runJSONShowCommand(cmd *cobra.Command, args []string) {
	data, err := jsonio.Load(args[0])
	if err != nil {
		fmt.Printf("Error loading %s: %v\n", args[0], err)
		os.Exit(1)
	}

	pretty, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Printf("Error formatting %s: %v\n", args[0], err)
		os.Exit(1)
	}
	fmt.Println(string(pretty))
}

func runJSONWrapCommand(cmd *cobra.Command, args []string) {
	data, err := jsonio.Load(args[0])
	if err != nil {
		fmt.Printf("Error loading %s: %v\n", args[0], err)
		os.Exit(1)
	}

	if err := jsonio.Save(args[1], data, jsonLabel); err != nil {
		fmt.Printf("Error saving %s: %v\n", args[1], err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(jsonCmd)
	jsonCmd.AddCommand(jsonShowCmd)
	jsonCmd.AddCommand(jsonWrapCmd)

	jsonWrapCmd.Flags().StringVar(&jsonLabel, "label", "",
		"Wrapping key for the saved document (default \"data\")")
}
