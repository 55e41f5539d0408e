package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	root := &cobra.Command{
		Use:   "scanner",
		Short: "BounceSentry scans an equity universe for oversold bounces",
		Long: `BounceSentry screens a configured equity universe for the
oversold-bounce pattern (deep RSI, volume surge, strong bullish close) and
emits ranked trade signals with target and stop levels.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", defaultConfigPath(), "path to config file")

	root.AddCommand(newScanCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newVersionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}
