// Package ui formats run statistics for the interactive renderers.
package ui

import (
	"strconv"
	"strings"
)

// Stat is a labelled value shown in a status line or HUD panel.
type Stat struct {
	Label string
	Value string
}

// FrameStats describes a frame for display.
func FrameStats(generation, population, length int) []Stat {
	return []Stat{
		{Label: "Generation", Value: strconv.Itoa(generation)},
		{Label: "Population", Value: strconv.Itoa(population)},
		{Label: "World", Value: strconv.Itoa(length) + "x" + strconv.Itoa(length)},
	}
}

// Line joins stats into a single status line.
func Line(title string, stats []Stat) string {
	var b strings.Builder
	b.WriteString(title)
	for _, s := range stats {
		if b.Len() > 0 {
			b.WriteString("  ")
		}
		b.WriteString(strings.ToLower(s.Label))
		b.WriteByte(' ')
		b.WriteString(s.Value)
	}
	return b.String()
}
