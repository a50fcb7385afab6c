package example

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mitchellh/cli"
	"gopkg.in/yaml.v3"

	"github.com/kest-labs/kest-admin/internal/cmd/base"
	"github.com/kest-labs/kest-admin/pkg/example"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Draft and store API examples"
}

func (c *Command) Help() string {
	return `Usage: kest-admin example <subcommand> [options]

  This command groups subcommands for drafting request/response examples
  from an API spec's schemas and storing them on the spec.

  A typical flow drafts an example to a file, edits it, then saves it:

      $ kest-admin example draft -project=1 -spec=5 -out=draft.yaml
      $ kest-admin example save -project=1 -spec=5 -file=draft.yaml`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type DraftCommand struct {
	*base.Command

	flagProject int64
	flagSpec    int64
	flagOut     string
}

func (c *DraftCommand) Synopsis() string {
	return "Draft an example from an API spec"
}

func (c *DraftCommand) Help() string {
	return `Usage: kest-admin example draft -project=<id> -spec=<spec id> [options]

  Fetch an API spec and draft an example for it. Bodies are synthesized
  from the request schema and from the schema of the first 2xx response.` +
		c.Flags().Help()
}

func (c *DraftCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("example draft", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.Int64Var(&c.flagProject, "project", 0, "(Required) Project ID.")
	f.Int64Var(&c.flagSpec, "spec", 0, "(Required) API spec ID.")
	f.StringVar(&c.flagOut, "out", "",
		"Write the draft to this file instead of printing it. The format\n"+
			"follows the extension: .yaml or .yml for YAML, JSON otherwise.")

	return f
}

func (c *DraftCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagProject == 0 || c.flagSpec == 0 {
		ui.Error("project and spec flags are required")
		return 1
	}

	cfg, client := c.Setup()
	if client == nil {
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	spec, err := client.GetAPISpec(ctx, c.flagProject, c.flagSpec)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	draft := example.NewDraft(spec, cfg.Synthesizer())
	c.Log.Debug("drafted example", "api_spec_id", spec.ID, "status", draft.Status)

	if c.flagOut == "" {
		if err := c.Render(cfg, draft); err != nil {
			ui.Error(err.Error())
			return 1
		}
		return 0
	}

	out, err := base.Format(formatFor(c.flagOut), draft)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	if err := c.WriteFile(c.flagOut, []byte(out+"\n")); err != nil {
		ui.Error(err.Error())
		return 1
	}
	ui.Info(fmt.Sprintf("Wrote draft to %s", c.flagOut))
	return 0
}

type SaveCommand struct {
	*base.Command

	flagProject int64
	flagSpec    int64
	flagFile    string
}

func (c *SaveCommand) Synopsis() string {
	return "Store an edited example on an API spec"
}

func (c *SaveCommand) Help() string {
	return `Usage: kest-admin example save -project=<id> -spec=<spec id> -file=<path>

  Read an example draft, check it and store it on the API spec. The status
  must be between 100 and 599, path and method must be set, and every
  header and body field must be empty or valid JSON.` +
		c.Flags().Help()
}

func (c *SaveCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("example save", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.Int64Var(&c.flagProject, "project", 0, "(Required) Project ID.")
	f.Int64Var(&c.flagSpec, "spec", 0, "(Required) API spec ID.")
	f.StringVar(&c.flagFile, "file", "", "(Required) Draft file in JSON or YAML.")

	return f
}

func (c *SaveCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagProject == 0 || c.flagSpec == 0 || c.flagFile == "" {
		ui.Error("project, spec and file flags are required")
		return 1
	}

	data, err := c.ReadFile(c.flagFile)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	sub, err := decodeSubmission(c.flagFile, data)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	req, err := sub.Build()
	if err != nil {
		ui.Error(fmt.Sprintf("invalid example: %v", err))
		return 1
	}

	cfg, client := c.Setup()
	if client == nil {
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	stored, err := client.AddExample(ctx, c.flagProject, c.flagSpec, req)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	if err := c.Render(cfg, stored); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

func formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

func decodeSubmission(path string, data []byte) (example.Submission, error) {
	var sub example.Submission
	var err error
	if formatFor(path) == "yaml" {
		err = yaml.Unmarshal(data, &sub)
	} else {
		err = json.Unmarshal(data, &sub)
	}
	if err != nil {
		return example.Submission{}, fmt.Errorf("error decoding %q: %w", path, err)
	}
	return sub, nil
}
