package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort    = "Age a shop's stock by one night"
	MsgAdvanceShort = "Run one aging pass over the demo stock"
	MsgStockShort   = "Show the demo stock without aging it"
	MsgRulesShort   = "Describe how each category ages"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"

	// Version output
	MsgVersionFormat = "gildedrose version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrLoadConfig = "failed to load configuration: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat   = "Output format: auto, term, text, json, yaml or toml"
	MsgFlagNoColor  = "Disable colored output"
	MsgFlagCategory = "Show each item's category"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/advance-long.txt
	msgAdvanceLongRaw string
	MsgAdvanceLong    = strings.TrimSpace(msgAdvanceLongRaw)

	//go:embed msgs/advance-example.txt
	msgAdvanceExampleRaw string
	MsgAdvanceExample    = strings.TrimRight(msgAdvanceExampleRaw, "\n")

	//go:embed msgs/stock-example.txt
	msgStockExampleRaw string
	MsgStockExample    = strings.TrimRight(msgStockExampleRaw, "\n")

	//go:embed msgs/rules.md
	MsgRulesMarkdown string

	//go:embed msgs/usage.tmpl
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
