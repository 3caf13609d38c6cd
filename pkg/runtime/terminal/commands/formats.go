package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/history"
)

type FormatsCmd struct {
	registry history.Registry
}

func NewFormatsCmd(registry history.Registry) *cobra.Command {
	fc := &FormatsCmd{registry: registry}
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported history file formats",
		RunE:  fc.run,
	}
}

func (fc *FormatsCmd) run(cmd *cobra.Command, _ []string) error {
	formats := fc.registry.ListFormats()
	if len(formats) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No history formats registered")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Supported history formats:\n%s\n", strings.Join(formats, "\n"))
	return nil
}
