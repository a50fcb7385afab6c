package category

import (
	"flag"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/kest-labs/kest-admin/internal/cmd/base"
	"github.com/kest-labs/kest-admin/pkg/kest"
)

type CreateCommand struct {
	*base.Command

	flagProject     int64
	flagName        string
	flagParent      int64
	flagDescription string
	flagColor       string
	flagIcon        string
	flagSortOrder   int
}

func (c *CreateCommand) Synopsis() string {
	return "Create a category"
}

func (c *CreateCommand) Help() string {
	return `Usage: kest-admin category create -project=<id> -name=<name> [options]

  Create a category, optionally nested under a parent. Icon names are
  normalized to kebab-case ("FolderOpen" becomes "folder-open").` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("category create", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.Int64Var(&c.flagProject, "project", 0, "(Required) Project ID.")
	f.StringVar(&c.flagName, "name", "", "(Required) Category name.")
	f.Int64Var(&c.flagParent, "parent", 0, "Parent category ID. Omit for a top-level category.")
	f.StringVar(&c.flagDescription, "description", "", "Category description.")
	f.StringVar(&c.flagColor, "color", "", "Hex color such as #3b82f6.")
	f.StringVar(&c.flagIcon, "icon", "", "Icon name.")
	f.IntVar(&c.flagSortOrder, "sort-order", -1, "Position among siblings. Omit to append.")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagProject == 0 {
		ui.Error("project flag is required")
		return 1
	}

	req := kest.CategoryRequest{
		Name:        strings.TrimSpace(c.flagName),
		Description: c.flagDescription,
		Color:       c.flagColor,
		Icon:        NormalizeIcon(c.flagIcon),
	}
	if c.flagParent != 0 {
		req.ParentID = &c.flagParent
	}
	if c.flagSortOrder >= 0 {
		req.SortOrder = &c.flagSortOrder
	}
	if err := req.Validate(true); err != nil {
		ui.Error(fmt.Sprintf("invalid category: %v", err))
		return 1
	}

	cfg, client := c.Setup()
	if client == nil {
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	cat, err := client.CreateCategory(ctx, c.flagProject, req)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	if err := c.Render(cfg, cat); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

// NormalizeIcon turns an icon name in any casing into kebab-case.
func NormalizeIcon(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strcase.ToKebab(name)
}
