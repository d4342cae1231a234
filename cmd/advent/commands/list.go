package commands

import (
	"github.com/dyluth/advent/internal/printer"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered days",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	registry, err := newRegistry()
	if err != nil {
		return err
	}

	all := registry.All()
	for _, s := range all {
		printer.Info("%02d  %s\n", s.Day, s.Title)
	}

	countMsg := "day"
	if len(all) != 1 {
		countMsg = "days"
	}
	printer.Info("\n%d %s registered\n", len(all), countMsg)
	return nil
}
