// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd009-technology-stack R4.3-R4.8.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/repomap/internal/lang"
	"github.com/petar-djukic/repomap/pkg/repomap"
)

// newMapCmd creates the "map" command.
func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Render a repository map",
		Long:  "Map scans the repository, ranks definitions by how the focus files reference them, and prints the best selection that fits the token budget.",
		RunE:  runMap,
	}

	cmd.Flags().StringSliceP("focus", "f", nil, "Focus files steering the ranking (repeatable)")
	cmd.Flags().Bool("stats", false, "Print token and tag counts to stderr")

	return cmd
}

// runMap renders and prints the map.
func runMap(cmd *cobra.Command, args []string) error {
	focus, _ := cmd.Flags().GetStringSlice("focus")
	stats, _ := cmd.Flags().GetBool("stats")

	mapper, err := repomap.New(repomap.Config{
		Root:      viper.GetString("root"),
		MapTokens: viper.GetInt("map-tokens"),
		CachePath: viper.GetString("cache"),
		Languages: viper.GetStringSlice("languages"),
		Verbose:   viper.GetBool("verbose"),
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	defer mapper.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	candidates, err := mapper.Files()
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	result, err := mapper.GetMap(ctx, candidates, focus, viper.GetInt("map-tokens"))
	if err != nil {
		return fmt.Errorf("rendering map: %w", err)
	}

	fmt.Print(result.Map)

	for _, w := range mapper.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if stats {
		fmt.Fprintf(os.Stderr, "%d tokens, %d tags across %d of %d files\n",
			result.Tokens, result.TagCount, result.FileCount, result.TotalFiles)
	}
	return nil
}

// newLanguagesCmd creates the "languages" command.
func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(strings.Join(lang.Names(), "\n"))
		},
	}
}
