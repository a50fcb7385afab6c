package open

import (
	"flag"
	"fmt"
	"net/url"
	"strings"

	"github.com/kest-labs/kest-admin/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagProject int64
	flagSpec    int64
	flagPrint   bool
}

func (c *Command) Synopsis() string {
	return "Open a project in the Kest web UI"
}

func (c *Command) Help() string {
	return `Usage: kest-admin open -project=<id> [options]

  Open a project, or one of its API specs, in the default browser. The web
  UI address comes from web_url in the config file.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("open", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.Int64Var(&c.flagProject, "project", 0, "(Required) Project ID.")
	f.Int64Var(&c.flagSpec, "spec", 0, "API spec ID to open within the project.")
	f.BoolVar(&c.flagPrint, "print", false, "Print the URL instead of opening it.")

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagProject == 0 {
		ui.Error("project flag is required")
		return 1
	}

	cfg, err := c.Config()
	if err != nil {
		ui.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}

	target, err := ProjectURL(cfg.WebURL, c.flagProject, c.flagSpec)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	if c.flagPrint || c.OpenURL == nil {
		ui.Output(target)
		return 0
	}

	c.Log.Debug("opening browser", "url", target)
	if err := c.OpenURL(target); err != nil {
		ui.Error(fmt.Sprintf("error opening browser: %v", err))
		ui.Output(target)
		return 1
	}
	return 0
}

// ProjectURL returns the web UI address of a project, or of one of its API
// specs when specID is non-zero.
func ProjectURL(webURL string, projectID, specID int64) (string, error) {
	u, err := url.Parse(strings.TrimRight(webURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid web_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("web_url must use http or https scheme, got: %s", u.Scheme)
	}

	u.Path = fmt.Sprintf("%s/projects/%d", u.Path, projectID)
	if specID != 0 {
		u.Path += fmt.Sprintf("/api-specs/%d", specID)
	}
	return u.String(), nil
}
