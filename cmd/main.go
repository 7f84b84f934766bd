package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "aurumline-insights",
		Short: "Analytics and inventory reports over order/product snapshots",
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the aurumline-insights version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Compute the business metrics report for a range",
		RunE:  runReport,
	}

	inventoryCmd = &cobra.Command{
		Use:   "inventory",
		Short: "Compute inventory-health rankings",
		RunE:  runInventory,
	}

	cfgFile string
	version string
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.AddCommand(versionCmd, reportCmd, inventoryCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Default().Error("command failed", slog.String("err", err.Error()))
		os.Exit(-1)
	}
}
