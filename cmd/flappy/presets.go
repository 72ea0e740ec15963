package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows the difficulty presets and the physics each one sets.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Name", "Gravity (px/s²)", "Scroll speed (px/s)", "Gap (px)", "Description"})
	for _, p := range config.Presets() {
		name := string(p.Name)
		if p.Name == config.DifficultyMedium {
			name += " (default)"
		}
		t.AppendRow(table.Row{name, p.Gravity, p.ScrollSpeed, p.GapHeight, p.Description})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.AppendFooter(table.Row{"", "", "", "", "flappy play --difficulty <name>"})

	t.Render()
}
