package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bnema/wlout/internal/session"
)

// completeDisplays completes the first n positional arguments with the
// names of the connected displays.
func completeDisplays(n int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= n {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return displayNames(cmd), cobra.ShellCompDirectiveNoFileComp
	}
}

func completePower(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return displayNames(cmd), cobra.ShellCompDirectiveNoFileComp
	case 1:
		return []string{"on", "off"}, cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

func displayNames(cmd *cobra.Command) []string {
	var names []string
	err := withSession(cmd, func(ctx context.Context, s *session.Session) error {
		for _, h := range s.Heads() {
			names = append(names, h.Name)
		}
		return nil
	})
	if err != nil {
		cobra.CompDebugln(err.Error(), false)
	}
	return names
}
