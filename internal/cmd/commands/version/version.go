package version

import (
	"github.com/kest-labs/kest-admin/internal/cmd/base"
	"github.com/kest-labs/kest-admin/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version of kest-admin"
}

func (c *Command) Help() string {
	return `Usage: kest-admin version

  Print the version of kest-admin.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.String())
	return 0
}
