package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/config"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/rules"
)

type RulesCommand struct{}

func (c *RulesCommand) Name() string {
	return "rules"
}

func (c *RulesCommand) Description() string {
	return "Validate a ruleset file and print the effective values (check [path])"
}

func (c *RulesCommand) Run(args []string) error {
	if len(args) < 1 || args[0] != "check" {
		return fmt.Errorf("usage: rules check [path]")
	}

	path := config.ConfigPathRules
	if env := os.Getenv("RULES_PATH"); env != "" {
		path = env
	}
	if len(args) > 1 {
		path = args[1]
	}

	PrintHeader(fmt.Sprintf("Checking %s", path))
	r, err := rules.LoadFile(path)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to render ruleset: %w", err)
	}
	fmt.Print(string(out))

	if r == rules.Default() {
		PrintInfo("Ruleset matches the built-in defaults")
	}
	PrintSuccess("Ruleset is valid")
	return nil
}
