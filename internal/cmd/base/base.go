package base

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/kest-labs/kest-admin/internal/config"
	"github.com/kest-labs/kest-admin/pkg/kest"
)

// Command is embedded by every kest-admin command. It carries the process
// environment (logger, terminal, filesystem, browser) and the flags shared
// by all commands.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
	Fs  afero.Fs

	// OpenURL opens a URL in the user's browser.
	OpenURL func(url string) error

	flagConfig string
	flagOutput string
}

// AddCommonFlags registers -config and -output on f.
func (c *Command) AddCommonFlags(f *FlagSet) {
	f.StringVar(
		&c.flagConfig, "config", "",
		fmt.Sprintf("Path to the kest-admin HCL config file. Defaults to $%s.", config.EnvConfig),
	)
	f.StringVar(
		&c.flagOutput, "output", "",
		"Output format: json or yaml. Defaults to the config file setting.",
	)
}

// OutputFlag returns the -output value as given on the command line.
func (c *Command) OutputFlag() string {
	return c.flagOutput
}

// Config loads the config file named by -config or $KEST_CONFIG and applies
// its log level to the command logger.
func (c *Command) Config() (*config.Config, error) {
	path := c.flagConfig
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if level := hclog.LevelFromString(cfg.LogLevel); level != hclog.NoLevel {
		c.Log.SetLevel(level)
	}
	return cfg, nil
}

// Client builds a backend client from cfg.
func (c *Command) Client(cfg *config.Config) (*kest.Client, error) {
	clientCfg := cfg.ClientConfig()
	if clientCfg.AuthToken == "" {
		return nil, fmt.Errorf("no API token configured: set api.auth_token or $%s", config.EnvAPIToken)
	}
	return kest.NewClient(clientCfg, c.Log)
}

// Setup loads the config and builds the client. Errors are reported on the
// UI; a nil client means the command should exit 1.
func (c *Command) Setup() (*config.Config, *kest.Client) {
	cfg, err := c.Config()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading config: %v", err))
		return nil, nil
	}

	client, err := c.Client(cfg)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error initializing API client: %v", err))
		return nil, nil
	}
	return cfg, client
}

// Context returns a context canceled on interrupt.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// Render writes v to the UI in the -output format, falling back to the
// config file's output setting.
func (c *Command) Render(cfg *config.Config, v any) error {
	format := c.flagOutput
	if format == "" && cfg != nil {
		format = cfg.Output
	}

	out, err := Format(format, v)
	if err != nil {
		return err
	}
	c.UI.Output(out)
	return nil
}

// ReadFile reads a file from the command filesystem.
func (c *Command) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(c.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return data, nil
}

// WriteFile writes a file to the command filesystem.
func (c *Command) WriteFile(path string, data []byte) error {
	if err := afero.WriteFile(c.Fs, path, data, 0o644); err != nil {
		return fmt.Errorf("error writing %q: %w", path, err)
	}
	return nil
}
