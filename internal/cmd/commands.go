package cmd

import (
	"github.com/mitchellh/cli"

	"github.com/kest-labs/kest-admin/internal/cmd/base"
	"github.com/kest-labs/kest-admin/internal/cmd/commands/audit"
	"github.com/kest-labs/kest-admin/internal/cmd/commands/category"
	"github.com/kest-labs/kest-admin/internal/cmd/commands/env"
	"github.com/kest-labs/kest-admin/internal/cmd/commands/example"
	"github.com/kest-labs/kest-admin/internal/cmd/commands/health"
	"github.com/kest-labs/kest-admin/internal/cmd/commands/open"
	"github.com/kest-labs/kest-admin/internal/cmd/commands/project"
	"github.com/kest-labs/kest-admin/internal/cmd/commands/schema"
	"github.com/kest-labs/kest-admin/internal/cmd/commands/spec"
	"github.com/kest-labs/kest-admin/internal/cmd/commands/testcase"
	"github.com/kest-labs/kest-admin/internal/cmd/commands/version"
)

// Commands is the mapping of all available kest-admin commands.
var Commands map[string]cli.CommandFactory

func initCommands(b *base.Command) {
	Commands = map[string]cli.CommandFactory{
		"audit": func() (cli.Command, error) {
			return &audit.Command{Command: b}, nil
		},
		"audit list": func() (cli.Command, error) {
			return &audit.ListCommand{Command: b}, nil
		},
		"category": func() (cli.Command, error) {
			return &category.Command{Command: b}, nil
		},
		"category create": func() (cli.Command, error) {
			return &category.CreateCommand{Command: b}, nil
		},
		"category delete": func() (cli.Command, error) {
			return &category.DeleteCommand{Command: b}, nil
		},
		"category list": func() (cli.Command, error) {
			return &category.ListCommand{Command: b}, nil
		},
		"category sort": func() (cli.Command, error) {
			return &category.SortCommand{Command: b}, nil
		},
		"category tree": func() (cli.Command, error) {
			return &category.TreeCommand{Command: b}, nil
		},
		"env": func() (cli.Command, error) {
			return &env.Command{Command: b}, nil
		},
		"env list": func() (cli.Command, error) {
			return &env.ListCommand{Command: b}, nil
		},
		"example": func() (cli.Command, error) {
			return &example.Command{Command: b}, nil
		},
		"example draft": func() (cli.Command, error) {
			return &example.DraftCommand{Command: b}, nil
		},
		"example save": func() (cli.Command, error) {
			return &example.SaveCommand{Command: b}, nil
		},
		"health": func() (cli.Command, error) {
			return &health.Command{Command: b}, nil
		},
		"open": func() (cli.Command, error) {
			return &open.Command{Command: b}, nil
		},
		"project": func() (cli.Command, error) {
			return &project.Command{Command: b}, nil
		},
		"project list": func() (cli.Command, error) {
			return &project.ListCommand{Command: b}, nil
		},
		"schema": func() (cli.Command, error) {
			return &schema.Command{Command: b}, nil
		},
		"schema example": func() (cli.Command, error) {
			return &schema.ExampleCommand{Command: b}, nil
		},
		"spec": func() (cli.Command, error) {
			return &spec.Command{Command: b}, nil
		},
		"spec list": func() (cli.Command, error) {
			return &spec.ListCommand{Command: b}, nil
		},
		"spec show": func() (cli.Command, error) {
			return &spec.ShowCommand{Command: b}, nil
		},
		"testcase": func() (cli.Command, error) {
			return &testcase.Command{Command: b}, nil
		},
		"testcase list": func() (cli.Command, error) {
			return &testcase.ListCommand{Command: b}, nil
		},
		"testcase run": func() (cli.Command, error) {
			return &testcase.RunCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
