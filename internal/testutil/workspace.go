package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleWorkspace is a workspace file exercising every section of the format.
const SampleWorkspace = `
dashboard_url = "https://app.example.com"

[project]
ref = "abcd1234"
name = "Demo"
region = "eu-west-1"

[organization]
slug = "acme"
name = "Acme Inc"

[flags]
branching = true
gis = false

[[branches]]
name = "main"
ref = "abcd1234"
default = true

[[branches]]
name = "feature-x"
ref = "efgh5678"
status = "ACTIVE_HEALTHY"

[[docs]]
title = "Auth quickstart"
url = "https://docs.example.com/guides/auth"
summary = "Sign users in with email and password"

[[docs]]
title = "Storage uploads"
url = "https://docs.example.com/guides/storage"
summary = "Resumable uploads for large files"

[[sections]]
name = "Team"
priority = 2

[[sections.commands]]
id = "wiki"
name = "Team wiki"
route = "https://wiki.example.com"

[[sections.commands]]
id = "oncall"
name = "On-call rota"
value = "pager schedule"
route = "https://wiki.example.com/oncall"
hidden = true
`

// WriteWorkspace writes contents to a workspace.toml inside dir and returns
// its path. An empty dir uses a fresh temporary directory.
func WriteWorkspace(t *testing.T, dir, contents string) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	path := filepath.Join(dir, "workspace.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write workspace: %v", err)
	}
	return path
}
