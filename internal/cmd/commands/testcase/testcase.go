package testcase

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
	return "List and run test cases"
}

func (c *Command) Help() string {
	return `Usage: kest-admin testcase <subcommand> [options]

  This command groups subcommands for working with stored test cases.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	flagProject  int64
	flagSpec     int64
	flagCategory int64
	flagEnv      string
	flagStatus   string
	flagSearch   string
	flagPage     int
	flagPerPage  int
}

func (c *ListCommand) Synopsis() string {
	return "List the test cases of a project"
}

func (c *ListCommand) Help() string {
	return `Usage: kest-admin testcase list -project=<id> [options]

  List the test cases of a project.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("testcase list", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.Int64Var(&c.flagProject, "project", 0, "(Required) Project ID.")
	f.Int64Var(&c.flagSpec, "spec", 0, "Only list test cases of this API spec.")
	f.Int64Var(&c.flagCategory, "category", 0, "Only list test cases in this category.")
	f.StringVar(&c.flagEnv, "env", "", "Only list test cases bound to this environment.")
	f.StringVar(&c.flagStatus, "status", "", "Only list test cases with this status.")
	f.StringVar(&c.flagSearch, "search", "", "Only list test cases matching this text.")
	f.IntVar(&c.flagPage, "page", 1, "Page number.")
	f.IntVar(&c.flagPerPage, "per-page", 20, "Test cases per page.")

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

	page, err := client.ListTestCases(ctx, c.flagProject, kest.TestCaseListOptions{
		ListOptions: kest.ListOptions{Page: c.flagPage, PerPage: c.flagPerPage, Search: c.flagSearch},
		APISpecID:   c.flagSpec,
		CategoryID:  c.flagCategory,
		Env:         c.flagEnv,
		Status:      c.flagStatus,
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

type RunCommand struct {
	*base.Command

	flagProject int64
	flagID      int64
	flagEnv     string
}

func (c *RunCommand) Synopsis() string {
	return "Run a test case on the backend"
}

func (c *RunCommand) Help() string {
	return `Usage: kest-admin testcase run -project=<id> -id=<test case id> [options]

  Ask the backend to run a test case and print the result. The exit code
  is 2 when the run reports a failed status.` +
		c.Flags().Help()
}

func (c *RunCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("testcase run", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.Int64Var(&c.flagProject, "project", 0, "(Required) Project ID.")
	f.Int64Var(&c.flagID, "id", 0, "(Required) Test case ID.")
	f.StringVar(&c.flagEnv, "env", "", "Environment to run against. Defaults to the test case's own.")

	return f
}

func (c *RunCommand) Run(args []string) int {
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

	result, err := client.RunTestCase(ctx, c.flagProject, c.flagID, c.flagEnv)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	if err := c.Render(cfg, result); err != nil {
		ui.Error(err.Error())
		return 1
	}

	if result.Status == "failed" || result.Status == "error" {
		ui.Warn(fmt.Sprintf("Test case %d %s", c.flagID, result.Status))
		return 2
	}
	return 0
}
