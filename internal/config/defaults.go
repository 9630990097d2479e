package config

// Defaults returns the built-in settings applied beneath every other
// configuration source.
func Defaults() Settings {
	return Settings{
		RootDir:      ".opencode",
		ShowProgress: true,
		LogLevel:     "warn",
	}
}

// DefaultConfigTemplate is a fully commented config file that documents all
// available options. Written by users who want a starting point.
const DefaultConfigTemplate = `# notekit configuration
# Project config lives at .notekit/config.yml, user config at
# ~/.config/notekit/config.yml. Environment variables (NOTEKIT_*) win.

root_dir: .opencode     # Installation root, relative to the project root
no_color: false         # Disable colored output
show_progress: true     # Show a spinner while installing (TTY only)
log_level: warn         # debug | info | warn | error
log_file: ""            # Optional JSON log file (empty = stderr)
`
