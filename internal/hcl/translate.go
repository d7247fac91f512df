package hcl

import (
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"

	"github.com/specialistvlad/modgraph/internal/config"
)

// decodeModule evaluates one module block and converts it into the
// format-agnostic record.
func decodeModule(raw *rawModule, filename, fileDir string) (*config.Module, hcl.Diagnostics) {
	// module_dir depends on the directory attribute, so that attribute is
	// evaluated first with the file directory as module_dir.
	var dir directoryOnly
	if diags := gohcl.DecodeBody(raw.Body, evalContext(fileDir), &dir); diags.HasErrors() {
		return nil, diags
	}
	moduleDir := resolveDir(fileDir, dir.Directory)

	var body moduleBody
	if diags := gohcl.DecodeBody(raw.Body, evalContext(moduleDir), &body); diags.HasErrors() {
		return nil, diags
	}

	m := &config.Module{
		Name:                raw.Name,
		Directory:           filepath.ToSlash(moduleDir),
		Source:              filename,
		PublicIncludePaths:  body.PublicIncludePaths,
		PrivateIncludePaths: body.PrivateIncludePaths,
		PublicDependencies:  body.PublicDependencies,
		PrivateDependencies: body.PrivateDependencies,
		DynamicDependencies: body.DynamicDependencies,
	}
	if body.PCHMode != nil {
		m.PCHMode = *body.PCHMode
	}
	return m, nil
}

func resolveDir(fileDir string, declared *string) string {
	if declared == nil || *declared == "" {
		return fileDir
	}
	if filepath.IsAbs(*declared) {
		return filepath.Clean(*declared)
	}
	return filepath.Join(fileDir, *declared)
}
