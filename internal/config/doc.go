// Package config provides configuration management for toolbox.
//
// Configuration is loaded from multiple sources and merged in a specific
// order, with later sources overriding earlier ones.
//
// # Configuration Layers
//
//  1. Default Configuration (built into the binary)
//     - Points at a tool service on http://localhost:8001
//
//  2. User Configuration (~/.config/toolbox/config.yaml)
//     - Personal settings shared by every project
//
//  3. Project Configuration (./.toolbox/config.yaml)
//     - Settings for the current directory
//
//  4. Environment: TOOLBOX_BACKEND_URL replaces service.baseURL
//
// A single file passed with --config replaces layers 2 and 3.
//
// # Configuration Structure
//
//	service:
//	  baseURL: "https://tools.example.com"
//	  basePath: "/api"
//	  timeout: 30s
//	  headers:
//	    Authorization: "Bearer ..."
//
//	dispatch:
//	  discardStaleResponses: false
//
//	ui:
//	  downloadDir: "~/Downloads"
//
// # Stale Responses
//
// Re-triggering a tool does not cancel the request already in flight. With
// discardStaleResponses false (the default) whichever response arrives last
// is shown; with true only the response to the latest trigger is shown.
package config
