package cli

import (
	"context"
	"fmt"
)

// exportEntries writes one entry ("export <id>") or every entry of the
// active user ("export all") to PDF.
func (a *App) exportEntries(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: export <id|all>")
		return
	}

	if args[0] == "all" {
		all, err := a.entries.GetAllEntries(ctx)
		if err != nil {
			fmt.Printf("Failed to load entries: %v\n", err)
			return
		}
		if len(all) == 0 {
			fmt.Println("No entries to export.")
			return
		}
		path, err := a.exporter.ExportEntries(all, nil, nil)
		if err != nil {
			fmt.Printf("Export failed: %v\n", err)
			return
		}
		fmt.Printf("Exported %d entries to %s\n", len(all), path)
		return
	}

	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: export <id|all>")
		return
	}

	entry, err := a.entries.GetEntryByID(ctx, id)
	if err != nil {
		fmt.Printf("Failed to load entry: %v\n", err)
		return
	}
	if entry == nil {
		fmt.Println("No such entry.")
		return
	}

	path, err := a.exporter.ExportEntry(entry)
	if err != nil {
		fmt.Printf("Export failed: %v\n", err)
		return
	}
	fmt.Printf("Exported to %s\n", path)
}
