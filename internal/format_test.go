package internal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MarvinJWendt/testza"
	"github.com/spf13/cobra"
)

func TestPrettyPrintList(t *testing.T) {
	out := PrettyPrintList([]string{"first", "second"})
	lines := strings.Split(out, "\n")
	testza.AssertEqual(t, 2, len(lines))
	testza.AssertTrue(t, strings.HasSuffix(lines[0], " first"))
	testza.AssertTrue(t, strings.Contains(lines[1], "2."))
}

func TestPrettyPrintEmptyList(t *testing.T) {
	testza.AssertEqual(t, "", PrettyPrintList([]string{}))
}

func TestFormatUsage(t *testing.T) {
	c := &cobra.Command{Use: "lapwatch", Run: func(*cobra.Command, []string) {}}
	c.Flags().Bool("interactive", false, "Run in interactive prompt mode")
	var out bytes.Buffer
	c.SetOut(&out)

	testza.AssertNoError(t, FormatUsage(c, c.UsageFunc(), ""))
	testza.AssertTrue(t, strings.Contains(out.String(), "Usage:"))
	testza.AssertTrue(t, strings.Contains(out.String(), "Run in interactive prompt mode"))
}
