package spec

import (
	"flag"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/kest-labs/kest-admin/internal/cmd/base"
	"github.com/kest-labs/kest-admin/pkg/kest"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect API specs"
}

func (c *Command) Help() string {
	return `Usage: kest-admin spec <subcommand> [options]

  This command groups subcommands for reading API specs.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	flagProject int64
	flagVersion string
	flagPage    int
	flagPerPage int
	flagSearch  string
}

func (c *ListCommand) Synopsis() string {
	return "List the API specs of a project"
}

func (c *ListCommand) Help() string {
	return `Usage: kest-admin spec list -project=<id> [options]

  List the API specs of a project.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("spec list", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.Int64Var(&c.flagProject, "project", 0, "(Required) Project ID.")
	f.StringVar(&c.flagVersion, "version", "", "Only list specs of this API version.")
	f.IntVar(&c.flagPage, "page", 1, "Page number.")
	f.IntVar(&c.flagPerPage, "per-page", 20, "Specs per page.")
	f.StringVar(&c.flagSearch, "search", "", "Only list specs matching this text.")

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

	page, err := client.ListAPISpecs(ctx, c.flagProject, kest.APISpecListOptions{
		ListOptions: kest.ListOptions{Page: c.flagPage, PerPage: c.flagPerPage, Search: c.flagSearch},
		Version:     c.flagVersion,
	})
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	if err := c.Render(cfg, page); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

type ShowCommand struct {
	*base.Command

	flagProject  int64
	flagID       int64
	flagExamples bool
}

func (c *ShowCommand) Synopsis() string {
	return "Show an API spec"
}

func (c *ShowCommand) Help() string {
	return `Usage: kest-admin spec show -project=<id> -id=<spec id> [options]

  Show one API spec with its parameters, request body and responses.` +
		c.Flags().Help()
}

func (c *ShowCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("spec show", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.Int64Var(&c.flagProject, "project", 0, "(Required) Project ID.")
	f.Int64Var(&c.flagID, "id", 0, "(Required) API spec ID.")
	f.BoolVar(&c.flagExamples, "examples", false, "Include stored examples.")

	return f
}

func (c *ShowCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagProject == 0 || c.flagID == 0 {
		ui.Error("project and id flags are required")
		return 1
	}

	cfg, client := c.Setup()
	if client == nil {
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	get := client.GetAPISpec
	if c.flagExamples {
		get = client.GetAPISpecWithExamples
	}
	spec, err := get(ctx, c.flagProject, c.flagID)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	if err := c.Render(cfg, spec); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
