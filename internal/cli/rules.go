package cli

import (
	"fmt"

	"github.com/arthur-debert/gildedrose/pkg/logging"
	"github.com/arthur-debert/gildedrose/pkg/report"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// wrapWidth keeps the rule table readable on narrow terminals
const wrapWidth = 100

func newRulesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ropts, err := opts.reportOptions(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			format := report.NewRenderer(out, ropts).Format()
			if format != report.FormatTerminal {
				_, err := fmt.Fprint(out, MsgRulesMarkdown)
				return err
			}

			_, err = fmt.Fprint(out, renderMarkdown(MsgRulesMarkdown))
			return err
		},
	}
}

// renderMarkdown renders through glamour, falling back to the raw text
func renderMarkdown(content string) string {
	logger := logging.GetLogger("cli.rules")

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		logger.Debug().Err(err).Msg("Glamour unavailable, printing plain markdown")
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		logger.Debug().Err(err).Msg("Glamour render failed, printing plain markdown")
		return content
	}
	return rendered
}
