// Command splay walks through the operations of a splay tree and prints the tree after
// each of them.
package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	keys    []int
	noColor bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "splay [command] (flags)",
	Short: "splay tree demonstration tool",
	Long:  ``,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	},
	SilenceUsage: true,
}

func main() {
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(demoCmd, walkCmd)

	for _, cmd := range []*cobra.Command{demoCmd, walkCmd} {
		cmd.Flags().IntSliceVarP(
			&keys, "keys", "k", []int{10, 20, 30, 40, 50, 60}, "keys to insert, in order")
	}
	rootCmd.PersistentFlags().BoolVar(
		&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "log every operation")

	demoCmd.Flags().IntVar(
		&demo.remove, "remove", 40, "key to remove")
	demoCmd.Flags().IntVar(
		&demo.probe, "probe", 30, "key to look up")
	demoCmd.Flags().IntVar(
		&demo.insert, "insert", 70, "key to insert and then undo")

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
