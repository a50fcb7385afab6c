package health

import (
	"flag"
	"fmt"

	"github.com/kest-labs/kest-admin/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Check that the Kest backend is reachable"
}

func (c *Command) Help() string {
	return `Usage: kest-admin health [options]

  Call the backend health endpoint and report the result.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("health", flag.ContinueOnError))
	c.AddCommonFlags(f)
	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	_, client := c.Setup()
	if client == nil {
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	if err := client.Health(ctx); err != nil {
		ui.Error(err.Error())
		return 1
	}
	ui.Info(fmt.Sprintf("Kest backend at %s is healthy", client.BaseURL()))
	return 0
}
