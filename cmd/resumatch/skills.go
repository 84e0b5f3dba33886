package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skill catalog",
	Long:  "Reads the config and prints the skills checked during an analysis, in match order.",
	RunE:  runSkills,
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-4s %s\n", "#", "Skill")
	fmt.Println(strings.Repeat("─", 30))
	for i, s := range cfg.Skills.Skills() {
		fmt.Printf("%-4d %s\n", i+1, s)
	}

	fmt.Printf("\nTotal: %d skills\n", cfg.Skills.Len())
	return nil
}
