// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command repomap is a test CLI for the repomap library.
// Implements: prd009-technology-stack R4.1-R4.10;
//
//	docs/ARCHITECTURE § Project Structure.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "repomap",
		Short: "Token-budgeted repository maps",
		Long:  "repomap extracts definitions and references from a repository, ranks them by reference structure, and renders the most relevant slice within a token budget.",
	}

	// Global flags.
	rootCmd.PersistentFlags().String("root", ".", "Repository root directory")
	rootCmd.PersistentFlags().Int("map-tokens", 1024, "Token budget for the map")
	rootCmd.PersistentFlags().String("cache", "", "Persistent tag cache path (empty = in-memory)")
	rootCmd.PersistentFlags().StringSlice("languages", nil, "Restrict to these languages (empty = all)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log scan and cache activity")

	// Bind flags to viper.
	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("map-tokens", rootCmd.PersistentFlags().Lookup("map-tokens"))
	viper.BindPFlag("cache", rootCmd.PersistentFlags().Lookup("cache"))
	viper.BindPFlag("languages", rootCmd.PersistentFlags().Lookup("languages"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Env vars: REPOMAP_ROOT, REPOMAP_MAP_TOKENS, etc.
	viper.SetEnvPrefix("REPOMAP")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".repomap")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newMapCmd())
	rootCmd.AddCommand(newLanguagesCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print repomap version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("repomap %s\n", version)
		},
	}
}
