// Command layoutdump reads annotation intervals from a JSON file and
// prints the vertical bands the layout engine assigns them. Useful for
// inspecting merge and stacking behavior outside the UI.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"annotator/internal/layout"
)

type inputInterval struct {
	Tag   string  `json:"tag"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

func main() {
	path := flag.String("file", "", "Path to a JSON array of {tag,start,end} intervals")
	height := flag.Float64("height", 120, "Total vertical extent to pack into")
	flag.Parse()

	if *path == "" {
		fmt.Println("Usage: layoutdump -file <intervals.json> [-height 120]")
		os.Exit(1)
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
		os.Exit(1)
	}
	var items []inputInterval
	if err := json.Unmarshal(data, &items); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse input: %v\n", err)
		os.Exit(1)
	}

	in := make([]layout.Interval, len(items))
	for i, it := range items {
		in[i] = layout.Interval{Start: it.Start, End: it.End, Tag: it.Tag, Seq: i}
	}

	placed := layout.Stack(in, *height)
	fmt.Printf("%d intervals in, %d after merge\n", len(in), len(placed))
	for _, p := range placed {
		fmt.Printf("  [%8.2f, %8.2f] %-10s band y=%.2f h=%.2f\n",
			p.Start, p.End, p.Tag, p.Y, p.Height)
	}
}
