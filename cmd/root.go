package cmd

import (
	"os"

	"github.com/aschey/lapwatch/internal"
	"github.com/aschey/lapwatch/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var title = lipgloss.NewStyle().
	Foreground(lipgloss.Color("9")).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("6")).
	PaddingLeft(1).
	PaddingRight(1).
	Render("⏱ lapwatch\nStopwatch with lap splits")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:  "lapwatch",
	Long: title,
	Args: cobra.NoArgs,

	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	usageFunc := rootCmd.UsageFunc()
	rootCmd.SetUsageFunc(func(c *cobra.Command) error {
		return internal.FormatUsage(c, usageFunc, "")
	})

	rootCmd.SetHelpFunc(func(c *cobra.Command, a []string) {
		internal.FormatHelp(c)
	})

	config.RegisterFlags(rootCmd.Flags())
}
