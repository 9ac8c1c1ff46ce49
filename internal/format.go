package internal

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func addColor(replaceStr string, searchStr string, style lipgloss.Style) string {
	return strings.ReplaceAll(replaceStr, searchStr, style.Render(searchStr))
}

func FormatHelp(c *cobra.Command) {
	fmt.Fprintf(c.OutOrStdout(), "%s\n\n", c.Long)
	if err := c.Usage(); err != nil {
		fmt.Fprintln(c.ErrOrStderr(), err)
	}
}

// FormatUsage renders the default cobra usage into a buffer and colors it before printing.
func FormatUsage(c *cobra.Command, usageFunc func(c *cobra.Command) error, exampleText string) error {
	out := c.OutOrStdout()
	var buf bytes.Buffer
	c.SetOut(&buf)
	err := usageFunc(c)
	c.SetOut(out)
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, colorUsage(c, buf.String(), exampleText)+"\n")
	return err
}

func colorUsage(c *cobra.Command, usage string, exampleText string) string {
	subtext := lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	defaultText := lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))

	outStr := usage
	outStr = addColor(outStr, "Usage:", title)
	outStr = addColor(outStr, "Available Commands:", title)
	outStr = addColor(outStr, "Global Flags:", title)
	outStr = addColor(outStr, "Flags:", title)
	outStr = addColor(outStr, "[flags]", subtext)
	outStr = addColor(outStr, "[command]", subtext)
	if len(exampleText) > 0 {
		outStr = addColor(outStr, exampleText, defaultText)
	}

	c.Flags().VisitAll(func(flag *pflag.Flag) {
		outStr = addColor(outStr, flag.Usage, subtext)
		outStr = addColor(outStr, flag.Value.Type(), defaultText)
	})

	for _, c := range c.Commands() {
		outStr = addColor(outStr, c.Short, subtext)
	}

	return outStr
}

func PrettyPrintList(list []string) string {
	formatted := []string{}
	numberStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	for i := 0; i < len(list); i++ {
		formatted = append(
			formatted,
			fmt.Sprintf("%s %s", numberStyle.Render(strconv.Itoa(i+1)+"."), list[i]),
		)
	}
	return strings.Join(formatted, "\n")
}
