package main

import (
	"flag"
	"fmt"
	"os"
	"watd/internal/di"
	"watd/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", ".", "directory containing config.yaml")
	flag.BoolVar(&flags.DebugMode, "debug", false, "log to stdout as well as the log files")
	flag.StringVar(&flags.FetchMode, "fetch", "", "run a single order-count pull (morning|afternoon) and exit")
	flag.Parse()

	if flags.FetchMode != "" {
		fetchApp, err := di.InitFetch(flags)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watd: %s\n", err)
			os.Exit(1)
		}
		if err := fetchApp.Run(flags.FetchMode); err != nil {
			fmt.Fprintf(os.Stderr, "watd: %s\n", err)
			os.Exit(1)
		}
		return
	}

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "watd: %s\n", err)
		os.Exit(1)
	}
}
