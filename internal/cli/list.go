// internal/cli/list.go
package palbench

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mwiater/palbench/internal/inputgen"
	"github.com/mwiater/palbench/internal/palindrome"
)

// newListCmd groups the listing commands.
func newListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List candidates, generation modes or commands",
	}

	listCmd.AddCommand(
		&cobra.Command{
			Use:   "candidates",
			Short: "List the functions under test",
			Run: func(cmd *cobra.Command, args []string) {
				runListCandidates(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "modes",
			Short: "List the input generation modes",
			Run: func(cmd *cobra.Command, args []string) {
				for _, m := range inputgen.Modes() {
					fmt.Fprintln(cmd.OutOrStdout(), m)
				}
			},
		},
		&cobra.Command{
			Use:   "commands",
			Short: "List all commands",
			Run: func(cmd *cobra.Command, args []string) {
				runListCommands(cmd.OutOrStdout(), cmd.Root())
			},
		},
	)
	return listCmd
}

// runListCandidates prints every registered candidate with its description.
func runListCandidates(out io.Writer) {
	nameStyle := lipgloss.NewStyle().Bold(true)
	width := 0
	for _, name := range palindrome.Names() {
		if len(name) > width {
			width = len(name)
		}
	}
	for _, c := range palindrome.All() {
		marker := " "
		if c.Name == palindrome.DefaultCandidate {
			marker = "*"
		}
		padded := c.Name + strings.Repeat(" ", width-len(c.Name))
		fmt.Fprintf(out, "%s %s  %s\n", marker, nameStyle.Render(padded), c.Description)
	}
}

// runListCommands prints the command tree in a two-column layout.
func runListCommands(out io.Writer, rootCmd *cobra.Command) {
	commandData := collectCommandData(rootCmd, "", "")

	maxPathLength := 0
	for _, data := range commandData {
		if len(data.path) > maxPathLength {
			maxPathLength = len(data.path)
		}
	}

	fmt.Fprintln(out, "Commands and Subcommands:")
	for _, data := range commandData {
		if strings.Contains(data.path, "completion") || strings.Contains(data.path, "help") {
			continue
		}
		fmt.Fprintf(out, "  %s%s%s\n", data.path, strings.Repeat(" ", maxPathLength-len(data.path)+2), data.description)
	}
}

// commandInfo holds the path and description of a command for display.
type commandInfo struct {
	path        string
	description string
}

// collectCommandData walks the command tree and flattens it into path/description pairs.
func collectCommandData(cmd *cobra.Command, currentPath string, indent string) []commandInfo {
	fullPath := currentPath + cmd.Name()
	if currentPath != "" {
		fullPath = currentPath + " " + cmd.Name()
	}

	allData := []commandInfo{{
		path:        indent + fullPath,
		description: cmd.Short,
	}}
	for _, subCmd := range cmd.Commands() {
		allData = append(allData, collectCommandData(subCmd, fullPath, indent+"  ")...)
	}
	return allData
}
