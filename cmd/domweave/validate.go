package main

import (
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the binding schema",
		Long: `Load and validate the binding schema without generating anything.

Checks version compatibility, required fields, duplicate tags and
attribute keys, duplicate or non-exported Go identifiers, attribute
kinds, and element namespaces.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate()
		},
	}

	return cmd
}

func runValidate() error {
	cfg, err := loadProject()
	if err != nil {
		return err
	}

	s, sourceName, err := loadSchema(cfg)
	if err != nil {
		return err
	}

	info("Schema:     %s (version %d)", sourceName, s.Version)
	info("Elements:   %d", len(s.Elements))
	info("Attributes: %d", len(s.Attributes))
	info("Events:     %d", len(s.Events))
	success("Schema is valid")
	return nil
}
