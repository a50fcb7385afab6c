package audit

import (
	"flag"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mitchellh/cli"

	"github.com/kest-labs/kest-admin/internal/cmd/base"
	"github.com/kest-labs/kest-admin/pkg/kest"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect the audit log"
}

func (c *Command) Help() string {
	return `Usage: kest-admin audit <subcommand> [options]

  This command groups subcommands for reading the backend audit log.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	flagSince    string
	flagUntil    string
	flagAction   string
	flagResource string
	flagUser     int64
	flagPage     int
	flagPerPage  int
}

func (c *ListCommand) Synopsis() string {
	return "List audited requests"
}

func (c *ListCommand) Help() string {
	return `Usage: kest-admin audit list [options]

  List audited backend requests, newest first. Times accept most common
  formats, for example "2026-01-02", "2026-01-02 15:04" or an RFC 3339
  timestamp. Times without a zone are local.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("audit list", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.StringVar(&c.flagSince, "since", "", "Only list entries at or after this time.")
	f.StringVar(&c.flagUntil, "until", "", "Only list entries at or before this time.")
	f.StringVar(&c.flagAction, "action", "", "Only list entries with this action.")
	f.StringVar(&c.flagResource, "resource", "", "Only list entries for this resource type.")
	f.Int64Var(&c.flagUser, "user", 0, "Only list entries by this user ID.")
	f.IntVar(&c.flagPage, "page", 1, "Page number.")
	f.IntVar(&c.flagPerPage, "per-page", 20, "Entries per page.")

	return f
}

func (c *ListCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	since, err := parseTime("since", c.flagSince)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	until, err := parseTime("until", c.flagUntil)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	cfg, client := c.Setup()
	if client == nil {
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	page, err := client.ListAuditLogs(ctx, kest.AuditLogListOptions{
		ListOptions: kest.ListOptions{Page: c.flagPage, PerPage: c.flagPerPage},
		Action:      c.flagAction,
		Resource:    c.flagResource,
		UserID:      c.flagUser,
		Since:       since,
		Until:       until,
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

func parseTime(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := dateparse.ParseIn(value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing %s time %q: %w", name, value, err)
	}
	return t, nil
}
