package category

import (
	"flag"
	"fmt"

	"github.com/kest-labs/kest-admin/internal/cmd/base"
)

type DeleteCommand struct {
	*base.Command

	flagProject int64
	flagID      int64
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a category"
}

func (c *DeleteCommand) Help() string {
	return `Usage: kest-admin category delete -project=<id> -id=<category id>

  Delete a category.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("category delete", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.Int64Var(&c.flagProject, "project", 0, "(Required) Project ID.")
	f.Int64Var(&c.flagID, "id", 0, "(Required) Category ID.")

	return f
}

func (c *DeleteCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagProject == 0 || c.flagID == 0 {
		ui.Error("project and id flags are required")
		return 1
	}

	_, client := c.Setup()
	if client == nil {
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	if err := client.DeleteCategory(ctx, c.flagProject, c.flagID); err != nil {
		ui.Error(err.Error())
		return 1
	}
	ui.Info(fmt.Sprintf("Deleted category %d", c.flagID))
	return 0
}
