package category

import (
	"flag"
	"fmt"
	"strings"

	"github.com/kest-labs/kest-admin/internal/cmd/base"
	"github.com/kest-labs/kest-admin/pkg/category"
)

type TreeCommand struct {
	*base.Command

	flagProject int64
}

func (c *TreeCommand) Synopsis() string {
	return "Show the category hierarchy of a project"
}

func (c *TreeCommand) Help() string {
	return `Usage: kest-admin category tree -project=<id> [options]

  Fetch every category of a project and print them as a tree. Categories
  whose parent is unknown are shown at the top level. With -output the
  forest is printed as nested JSON or YAML instead.` +
		c.Flags().Help()
}

func (c *TreeCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("category tree", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.Int64Var(&c.flagProject, "project", 0, "(Required) Project ID.")

	return f
}

func (c *TreeCommand) Run(args []string) int {
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

	forest, err := client.CategoryTree(ctx, c.flagProject)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	if c.OutputFlag() != "" {
		if err := c.Render(cfg, forest); err != nil {
			ui.Error(err.Error())
			return 1
		}
		return 0
	}

	if len(forest) == 0 {
		ui.Info("No categories")
		return 0
	}
	ui.Output(Outline(forest))
	return 0
}

// Outline renders the forest as indented lines, two spaces per level.
func Outline(forest []*category.TreeNode) string {
	var lines []string
	category.Walk(forest, func(n *category.TreeNode, depth int) bool {
		line := fmt.Sprintf("%s%s (#%d)", strings.Repeat("  ", depth), n.Name, n.ID)
		if n.TestCasesCount != nil {
			line += fmt.Sprintf(" [%d test cases]", *n.TestCasesCount)
		}
		lines = append(lines, line)
		return true
	})
	return strings.Join(lines, "\n")
}
