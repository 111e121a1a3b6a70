// Package core contains the business logic for the local rank tracking API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Location, ScanResult, RankRecord, etc.)
// - scan: Cached fetch-and-classify scan pipeline with fallback generation
// - rank: Batch rank-tracking orchestration over locations and keywords
// - report: Summary and detail views built on top of scan results
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, search)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "localrank-app-api/core/interfaces"
//	    "localrank-app-api/core/scan"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	scanService := scan.NewService(deps, searchClient, scan.Options{})
//
//	// Scan one location
//	result, err := scanService.Scan(ctx, location, "中醫診所")
package core
