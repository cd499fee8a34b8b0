package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/team1160/assistant-vision/internal/particle"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "assistant-vision %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
			for _, b := range particle.Backends() {
				if b.Available {
					fmt.Fprintf(out, "  Backend %s: available %s\n", b.Name, b.Version)
				} else {
					fmt.Fprintf(out, "  Backend %s: unavailable (%s)\n", b.Name, b.Error)
				}
			}
		},
	}
}
