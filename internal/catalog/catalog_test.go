package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllTemplates(t *testing.T) {
	defs, err := Load()
	require.NoError(t, err)

	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	assert.Equal(t, []string{
		"daily-note",
		"inbox-capture",
		"meeting-note",
		"reading-log",
		"weekly-review",
	}, names, "catalog order follows template filenames")
}

func TestLoad_DefinitionsAreComplete(t *testing.T) {
	defs, err := Load()
	require.NoError(t, err)

	for _, def := range defs {
		res := Validate(def)
		assert.True(t, res.Valid, "bundled template %s must validate: %v", def.Name, res.Errors)
		assert.NotEmpty(t, def.Template, "template %s should have a body", def.Name)
	}
}

func TestLoad_FrontmatterFields(t *testing.T) {
	defs, err := Load()
	require.NoError(t, err)

	byName := make(map[string]Definition, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}

	daily := byName["daily-note"]
	assert.Equal(t, AgentGeneral, daily.Agent)
	assert.Empty(t, daily.Model)

	inbox := byName["inbox-capture"]
	assert.Equal(t, "anthropic/claude-haiku-4-5", inbox.Model)

	weekly := byName["weekly-review"]
	assert.Equal(t, AgentPlan, weekly.Agent)
}

func TestSplitFrontmatter(t *testing.T) {
	tests := map[string]struct {
		content  string
		wantMeta string
		wantBody string
		wantErr  bool
	}{
		"well formed": {
			content:  "---\ndescription: x\n---\nbody\n",
			wantMeta: "description: x\n",
			wantBody: "body\n",
		},
		"empty body": {
			content:  "---\ndescription: x\n---\n",
			wantMeta: "description: x\n",
			wantBody: "",
		},
		"missing opening delimiter": {
			content: "description: x\n---\nbody\n",
			wantErr: true,
		},
		"unterminated block": {
			content: "---\ndescription: x\nbody\n",
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			meta, body, err := splitFrontmatter([]byte(tc.content))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantMeta, string(meta))
			assert.Equal(t, tc.wantBody, string(body))
		})
	}
}
