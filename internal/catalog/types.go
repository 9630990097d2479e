// Package catalog provides the bundled note command catalog: the embedded
// markdown templates, frontmatter parsing, and structural validation of
// command definitions before anything is written to disk.
package catalog

// Version is the catalog schema version shipped with this build. It is
// recorded in the installation state and compared on subsequent runs to
// detect available updates.
const Version = "1.0.0"

// Agent identifies which OpenCode agent a command runs under.
type Agent string

const (
	AgentGeneral Agent = "general"
	AgentPlan    Agent = "plan"
	AgentBuild   Agent = "build"
	AgentExplore Agent = "explore"
)

// ValidAgent reports whether a is one of the known agent names.
func ValidAgent(a Agent) bool {
	switch a {
	case AgentGeneral, AgentPlan, AgentBuild, AgentExplore:
		return true
	}
	return false
}

// Definition is one bundled command template. Definitions are constructed
// once at process start from the embedded catalog and never mutated.
type Definition struct {
	// Name is the command identifier and the installed filename stem.
	Name string
	// Description is shown by the host when listing commands.
	Description string
	// Template is the opaque command body, frontmatter stripped.
	Template string
	// Agent is the optional agent the command is bound to.
	Agent Agent
	// Model optionally pins a model; free-form, passed through unvalidated.
	Model string
}

// frontmatter is the YAML header carried by each embedded template.
type frontmatter struct {
	Description string `yaml:"description"`
	Agent       string `yaml:"agent"`
	Model       string `yaml:"model"`
}
