// Package domain maps MCP tool calls onto icon registry queries.
//
// Handlers only read from the registry, so one registry can back any number
// of concurrent sessions.
package domain
