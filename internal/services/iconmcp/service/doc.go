// Package service wires the icon registry tools to an MCP transport.
package service
