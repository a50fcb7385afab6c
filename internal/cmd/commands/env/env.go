package env

import (
	"flag"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/kest-labs/kest-admin/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect project environments"
}

func (c *Command) Help() string {
	return `Usage: kest-admin env <subcommand> [options]

  This command groups subcommands for working with environments.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	flagProject int64
}

func (c *ListCommand) Synopsis() string {
	return "List the environments of a project"
}

func (c *ListCommand) Help() string {
	return `Usage: kest-admin env list -project=<id> [options]

  List the environments (base URL, variables, headers) of a project.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("env list", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.Int64Var(&c.flagProject, "project", 0, "(Required) Project ID.")

	return f
}

func (c *ListCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagProject == 0 {
		ui.Error("project flag is required")
		return 1
	}

	cfg, client := c.Setup()
	if client == nil {
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	envs, err := client.ListEnvironments(ctx, c.flagProject)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	if err := c.Render(cfg, envs); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
