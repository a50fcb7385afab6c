package category

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
	return "Manage API categories"
}

func (c *Command) Help() string {
	return `Usage: kest-admin category <subcommand> [options]

  This command groups subcommands for managing the category hierarchy of a
  project's API specs.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	flagProject int64
	flagCount   bool
	flagPage    int
	flagPerPage int
	flagSearch  string
}

func (c *ListCommand) Synopsis() string {
	return "List the categories of a project"
}

func (c *ListCommand) Help() string {
	return `Usage: kest-admin category list -project=<id> [options]

  List the categories of a project as a flat page.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("category list", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.Int64Var(&c.flagProject, "project", 0, "(Required) Project ID.")
	f.BoolVar(&c.flagCount, "count", false, "Include the number of test cases per category.")
	f.IntVar(&c.flagPage, "page", 0, "Page number.")
	f.IntVar(&c.flagPerPage, "per-page", 0, "Categories per page.")
	f.StringVar(&c.flagSearch, "search", "", "Only list categories matching this text.")

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

	page, err := client.ListCategories(ctx, c.flagProject, kest.CategoryListOptions{
		ListOptions:  kest.ListOptions{Page: c.flagPage, PerPage: c.flagPerPage, Search: c.flagSearch},
		IncludeCount: c.flagCount,
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
