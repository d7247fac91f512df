package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTree writes files (relative path -> content) below a fresh temporary
// directory and returns that directory. Intermediate directories are created.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
	return root
}

// UIScenarioFiles is the layout of UIScenario as descriptor files: four HCL
// modules and one YAML module, spread over a source tree.
func UIScenarioFiles() map[string]string {
	return map[string]string{
		"Runtime/Core/core.module.hcl": `
module "Core" {
  public_include_paths  = ["Public"]
  private_include_paths = ["Private"]
}
`,
		"Runtime/Engine/engine.module.hcl": `
module "Engine" {
  public_include_paths  = ["Public"]
  private_include_paths = ["Private"]
  public_dependencies   = ["Core"]
}
`,
		"Runtime/UI/ui.module.hcl": `
module "UI" {
  pch_mode              = "use_explicit_or_shared_pch"
  public_include_paths  = ["Public"]
  private_include_paths = ["Private"]
  public_dependencies   = ["Core", "Engine"]
  private_dependencies  = ["RenderCore", "RHI"]
}
`,
		"Runtime/RenderCore/render_core.module.hcl": `
module "RenderCore" {
  public_include_paths  = ["Public"]
  private_include_paths = ["Private"]
}
`,
		"Runtime/RHI/rhi.module.yaml": `
modules:
  - name: RHI
    public_include_paths: [Public]
    private_include_paths: [Private]
`,
	}
}
