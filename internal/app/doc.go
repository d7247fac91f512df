// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the resolution lifecycle, decoupled from any
// specific entrypoint like a CLI.
//
// A run is strictly sequential apart from descriptor parsing:
//
//	discover -> register -> build graph -> resolve -> emit -> write
//
// Each stage either completes or returns one attributable error. The App
// logs a summary of every stage at Info and records the run in its metrics
// registry, which the caller may export with WriteMetrics.
package app
