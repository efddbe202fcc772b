package main

import (
	"fmt"
	"strings"

	"studentnet/internal/taglist"

	"github.com/spf13/cobra"
)

// normalizeCmd shows how typed text becomes tags
var normalizeCmd = &cobra.Command{
	Use:   "normalize [text...]",
	Short: "Print the tags a line of input would produce",
	Long: `Splits the arguments on commas, normalizes every piece the way the tag
fields do, and prints one tag per line followed by the serialized field value.

Example:
  studentnet normalize "rock climbing, C++, 3d printing"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalize,
}

func runNormalize(cmd *cobra.Command, args []string) error {
	tags := taglist.Split(strings.Join(args, " "))
	out := cmd.OutOrStdout()
	if len(tags) == 0 {
		fmt.Fprintln(out, "No tags.")
		return nil
	}
	for _, t := range tags {
		fmt.Fprintln(out, t)
	}
	fmt.Fprintf(out, "field: %s\n", strings.Join(tags, taglist.Delimiter))
	return nil
}
