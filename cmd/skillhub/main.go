// Package main is the entry point for the skillhub CLI.
//
// skillhub manages a directory of agent skill files and the MCP server
// entries of desktop AI clients. Every command loads the settings record
// first, so defaults such as the skills root and the MCP config path come
// from settings.json unless given on the command line.
package main

func main() {
	Execute()
}
