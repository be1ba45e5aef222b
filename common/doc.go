// Package common provides shared constants, types, utilities, and interfaces
// used throughout the RGB Manager application.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: Application-wide constants like tick intervals, file names, and UI dimensions
//   - Errors: Sentinel errors for consistent error handling across packages
//   - Interfaces: Abstractions for the effect backend, notifications, and logging
//   - Logger: Leveled logging with optional file output and rotation
//   - Utils: Common utility functions for paths and identifier generation
//
// # Usage
//
// Import the package to access shared functionality:
//
//	import "github.com/yllada/rgb-manager/common"
//
//	// Use constants
//	interval := common.TickInterval
//
//	// Use logger
//	common.LogInfo("Applying profile %s", profileName)
//
//	// Check errors
//	if errors.Is(err, common.ErrManagerUnavailable) {
//	    // Fall back to UI-only mode
//	}
//
// # Design Principles
//
// This package follows several design principles:
//
//   - Single Responsibility: Each file handles one concern
//   - Interface Segregation: Small, focused interfaces
//   - Dependency Inversion: High-level modules depend on abstractions
package common
