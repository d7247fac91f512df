package hcl

import (
	"path"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// pathJoinFunc joins its arguments with forward slashes.
var pathJoinFunc = function.New(&function.Spec{
	Description: "Joins path elements with forward slashes and cleans the result.",
	VarParam: &function.Parameter{
		Name: "elems",
		Type: cty.String,
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, filepath.ToSlash(arg.AsString()))
		}
		return cty.StringVal(path.Join(parts...)), nil
	},
})

// evalContext builds the expression context for blocks declared in moduleDir.
func evalContext(moduleDir string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"module_dir": cty.StringVal(filepath.ToSlash(moduleDir)),
		},
		Functions: map[string]function.Function{
			"path_join": pathJoinFunc,
			"concat":    stdlib.ConcatFunc,
			"distinct":  stdlib.DistinctFunc,
			"format":    stdlib.FormatFunc,
		},
	}
}
