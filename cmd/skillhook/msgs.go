package skillhook

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Suggest skills for a prompt from the project's skill rules"
	MsgCheckShort      = "Show which skills a prompt triggers"
	MsgRulesShort      = "List the skills defined in the rule file"
	MsgConfigShort     = "Print the effective settings"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgVersionFormat  = "skillhook version %s\n  commit: %s\n  built:  %s\n"
	MsgSettingsSource = "# settings file: %s\n"
	MsgRuleWarning    = "warning: %s\n"
	MsgError          = "Error: %v"

	// Error messages
	MsgErrResolve    = "failed to resolve project: %w"
	MsgErrReadPrompt = "failed to read prompt: %w"
	MsgErrFormat     = "invalid --format: %w"
	MsgErrEmptyInput = "no prompt given"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagProjectDir = "Project directory (overrides $CLAUDE_PROJECT_DIR and the hook input cwd)"
	MsgFlagRules      = "Rule file path, relative to the project directory"
	MsgFlagFormat     = "Output format (auto, term, text, json)"
	MsgFlagDefaults   = "Print the built-in defaults instead of the effective settings"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
