// Package parser turns raw input lines into canonical command verbs and
// their arguments.
package parser

import "strings"

// commands maps each canonical verb to its accepted aliases.
var commands = map[string][]string{
	"help":      {"h", "?", "commands"},
	"quit":      {"exit", "q"},
	"look":      {"l", "examine", "inspect"},
	"go":        {"g", "move", "travel"},
	"inventory": {"inv", "i", "items"},
	"take":      {"get", "grab"},
	"choose":    {"pick", "select"},
	"talk":      {"t", "speak", "chat"},
	"use":       {"u", "utilize", "apply"},
}

var aliasMap = func() map[string]string {
	m := make(map[string]string)
	for command, aliases := range commands {
		m[command] = command
		for _, alias := range aliases {
			m[alias] = command
		}
	}
	return m
}()

// Parse tokenizes a raw input line: lowercase, whitespace-trimmed, split on
// whitespace. The first word is normalized through the alias table when it
// is a known verb; otherwise it is returned as typed so the caller can echo
// it back. Empty input yields ("", nil).
func Parse(line string) (verb string, args []string) {
	words := strings.Fields(strings.ToLower(line))
	if len(words) == 0 {
		return "", nil
	}
	verb = words[0]
	if canonical, ok := aliasMap[verb]; ok {
		verb = canonical
	}
	return verb, words[1:]
}

// Known reports whether verb is a canonical command.
func Known(verb string) bool {
	_, ok := commands[verb]
	return ok
}
