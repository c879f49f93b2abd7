// Package config handles the hook's own settings.
//
// Settings are layered with koanf, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. <project>/.claude/skillhook.toml, when present
//  3. SKILLHOOK_<SECTION>_<KEY> environment variables
//  4. command-line overrides
//
// The rule file itself is not a setting; see pkg/rules.
package config
