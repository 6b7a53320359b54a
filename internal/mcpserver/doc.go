// Package mcpserver exposes the tool catalogue over the Model Context
// Protocol.
//
// Every catalogue tool becomes one MCP tool named by its id. The input
// schema is derived from the tool's fields:
//
//   - number and range fields become numbers with minimum and maximum
//   - checkboxes become booleans
//   - single selects become string enums
//   - everything else is a string
//
// A call seeds the field defaults, overlays the arguments and runs the tool
// through a fresh lifecycle controller, so results and error texts are
// exactly what the dashboard would show. Images embedded as data URIs are
// returned as image content; hosted images are returned as their URL.
//
// The server speaks stdio by default and SSE when started with ServeSSE.
package mcpserver
