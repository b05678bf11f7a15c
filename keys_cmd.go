package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gitlab.com/tinyland/lab/wtop/display/tui"
)

// runKeysCommand prints the keybinding registry, optionally filtered to
// one mode, as a table or JSON. Returns the process exit code.
func runKeysCommand(mode, format string) int {
	reg := tui.DefaultRegistry()

	if mode != "" {
		filtered := reg.ByMode(tui.KeyMode(mode))
		if len(filtered) == 0 {
			fmt.Fprintf(os.Stderr, "wtop: no bindings for mode %q (modes: tui, dashboard)\n", mode)
			return 1
		}
		reg = &tui.KeyRegistry{Entries: filtered}
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(reg.FormatJSON(), "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "wtop: encoding keybindings: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
	case "table":
		fmt.Print(reg.FormatTable())
	default:
		fmt.Fprintf(os.Stderr, "wtop: unknown keys format %q (formats: table, json)\n", format)
		return 1
	}
	return 0
}
