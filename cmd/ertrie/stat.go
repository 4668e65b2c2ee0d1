package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/revelaction/ertrie/stat"
)

func statCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "stat",
		Usage: "statistics of the trained trie and the examples",
		Action: func(c *cli.Context) error {
			return statCommand(e, e.ui)
		},
	}
}

func statCommand(e *env, ui UI) error {
	t, lib, _, err := e.trie()
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(t)
	hdl.AggregateExamples(lib)
	stats := hdl.Get()

	switch e.format {
	case "json":
		enc := json.NewEncoder(ui.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	case "yaml":
		return yaml.NewEncoder(ui.Out).Encode(stats)
	}

	fmt.Fprintf(ui.Out, "Num examples %d, num tokens per example %d\n", stats.Examples, stats.TokensPerExampleMean)
	fmt.Fprintf(ui.Out, "Roots %d, nodes %d, templates %d (%d internal), max depth %d\n", stats.Roots, stats.Nodes, stats.Leaves, stats.InternalLeaves, stats.MaxDepth)

	tags := make([]string, 0, len(stats.TagCount))
	for tag := range stats.TagCount {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if stats.TagCount[tags[i]] != stats.TagCount[tags[j]] {
			return stats.TagCount[tags[i]] > stats.TagCount[tags[j]]
		}
		return tags[i] < tags[j]
	})
	for _, tag := range tags {
		fmt.Fprintf(ui.Out, "  %-6s %d\n", tag, stats.TagCount[tag])
	}
	return nil
}
