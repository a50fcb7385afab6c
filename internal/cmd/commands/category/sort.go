package category

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/kest-labs/kest-admin/internal/cmd/base"
)

type SortCommand struct {
	*base.Command

	flagProject int64
}

func (c *SortCommand) Synopsis() string {
	return "Reorder categories"
}

func (c *SortCommand) Help() string {
	return `Usage: kest-admin category sort -project=<id> <category id>...

  Set the display order of categories. IDs may be given as separate
  arguments or comma separated.` +
		c.Flags().Help()
}

func (c *SortCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("category sort", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.Int64Var(&c.flagProject, "project", 0, "(Required) Project ID.")

	return f
}

func (c *SortCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagProject == 0 {
		ui.Error("project flag is required")
		return 1
	}

	ids, err := parseIDs(flags.Args())
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	if len(ids) == 0 {
		ui.Error("at least one category ID is required")
		return 1
	}

	_, client := c.Setup()
	if client == nil {
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	if err := client.SortCategories(ctx, c.flagProject, ids); err != nil {
		ui.Error(err.Error())
		return 1
	}
	ui.Info(fmt.Sprintf("Reordered %d categories", len(ids)))
	return 0
}

func parseIDs(args []string) ([]int64, error) {
	var ids []int64
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("invalid category ID %q", part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
