package project

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
	return "Inspect Kest projects"
}

func (c *Command) Help() string {
	return `Usage: kest-admin project <subcommand> [options]

  This command groups subcommands for working with projects.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	flagPage     int
	flagPerPage  int
	flagSearch   string
	flagPlatform string
}

func (c *ListCommand) Synopsis() string {
	return "List projects"
}

func (c *ListCommand) Help() string {
	return `Usage: kest-admin project list [options]

  List the projects visible to the configured API token.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("project list", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.IntVar(&c.flagPage, "page", 1, "Page number.")
	f.IntVar(&c.flagPerPage, "per-page", 20, "Projects per page.")
	f.StringVar(&c.flagSearch, "search", "", "Only list projects matching this text.")
	f.StringVar(&c.flagPlatform, "platform", "", "Only list projects for this platform.")

	return f
}

func (c *ListCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cfg, client := c.Setup()
	if client == nil {
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	page, err := client.ListProjects(ctx, kest.ProjectListOptions{
		ListOptions: kest.ListOptions{Page: c.flagPage, PerPage: c.flagPerPage, Search: c.flagSearch},
		Platform:    c.flagPlatform,
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
