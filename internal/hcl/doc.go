// Package hcl provides the HCL implementation of the config.Loader interface.
//
// A descriptor file holds one or more module blocks:
//
//	module "UI" {
//	  pch_mode              = "use_explicit_or_shared_pch"
//	  public_include_paths  = [path_join(module_dir, "Source/Public"), "Source/Classes"]
//	  private_include_paths = ["Source/Private"]
//	  public_dependencies   = ["Core", "CoreUObject", "Engine"]
//	  private_dependencies  = ["RenderCore", "RHI"]
//	}
//
// Expressions are evaluated against a small context: the variable
// module_dir holds the absolute module directory, and the functions
// path_join, concat, distinct and format are available. Relative include
// paths are resolved against module_dir after decoding.
package hcl
