package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a descriptor file. Unknown
// top-level blocks or attributes are decode errors.
type fileRoot struct {
	Modules []*rawModule `hcl:"module,block"`
}

// rawModule defers decoding of the block body until the module directory,
// and with it the evaluation context, is known.
type rawModule struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// moduleBody is the HCL-specific schema of a module block's attributes.
type moduleBody struct {
	Directory *string `hcl:"directory,optional"`
	PCHMode   *string `hcl:"pch_mode,optional"`

	PublicIncludePaths  []string `hcl:"public_include_paths,optional"`
	PrivateIncludePaths []string `hcl:"private_include_paths,optional"`

	PublicDependencies  []string `hcl:"public_dependencies,optional"`
	PrivateDependencies []string `hcl:"private_dependencies,optional"`
	DynamicDependencies []string `hcl:"dynamic_dependencies,optional"`
}

// directoryOnly reads just the directory attribute.
type directoryOnly struct {
	Directory *string  `hcl:"directory,optional"`
	Remain    hcl.Body `hcl:",remain"`
}
