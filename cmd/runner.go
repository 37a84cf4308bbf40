package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/clickupx/internal/shared"
	"github.com/desertthunder/clickupx/pkg/clickup"
	"github.com/urfave/cli/v3"
)

const defaultConfigPath = "config.toml"

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	client     *clickup.Client
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Client     *clickup.Client
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		client:     opts.Client,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		configCommand, authCommand, timeCommand, taskCommand, listCommand, folderCommand, spaceCommand,
		commentCommand, checklistCommand, goalCommand, tagCommand, memberCommand, teamCommand,
		hierarchyCommand, timerCommand, apiCommand, exportCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// globalFlags are defined on the root command and visible to every subcommand.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   defaultConfigPath,
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (debug, info, warn, error); overrides log.level",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
	}
}

// Configure loads the config file named by --config (when it exists) and applies the log level.
//
// It runs before every command. Without a config file the current config is kept and only the
// environment override is applied.
func (r *Runner) Configure(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")
	if path == "" {
		path = defaultConfigPath
	}
	r.configPath = path

	if _, err := os.Stat(path); err == nil {
		config, err := shared.LoadConfig(path)
		if err != nil {
			return ctx, err
		}
		r.config = config
		r.client = nil
		r.logger.Debug("config loaded", "path", path)
	} else {
		r.config.ApplyEnv()
	}

	level := cmd.String("log-level")
	if level == "" {
		level = r.config.Log.Level
	}
	ll, err := shared.ParseLevel(level)
	if err != nil {
		return ctx, err
	}
	shared.SetLogLevel(r.logger, ll)

	return ctx, nil
}

// api returns the ClickUp client, building it from the config on first use.
func (r *Runner) api() (*clickup.Client, error) {
	if r.client != nil {
		return r.client, nil
	}
	if r.config == nil || !r.config.HasToken() {
		return nil, fmt.Errorf("%w: set clickup.token in %s, export %s or run 'clickupx auth login'",
			shared.ErrNotAuthenticated, r.configPathOrDefault(), shared.TokenEnv)
	}

	cfg := r.config.ClickUp
	client, err := clickup.New(cfg.Token,
		clickup.WithBaseURL(cfg.APIURL),
		clickup.WithTokenType(cfg.TokenType),
		clickup.WithHTTPClient(r.httpClient),
		clickup.WithLogger(r.logger),
		clickup.WithDefaults(clickup.Defaults{
			Team:  cfg.DefaultTeam,
			Space: cfg.DefaultSpace,
			List:  cfg.DefaultList,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrInvalidConfig, err)
	}
	r.client = client
	return client, nil
}

// SetLogger replaces the logger, dropping a client that still logs to the old one.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
	r.client = nil
}

func (r *Runner) configPathOrDefault() string {
	if r.configPath == "" {
		return defaultConfigPath
	}
	return r.configPath
}

// apiError maps a client failure onto the CLI sentinel errors, keeping the original in the chain.
func apiError(err error) error {
	if err == nil {
		return nil
	}

	var ce *clickup.ClientError
	if !errors.As(err, &ce) {
		return fmt.Errorf("%w: %w", shared.ErrAPIRequest, err)
	}

	switch {
	case ce.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", shared.ErrNotAuthenticated, err)
	case ce.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %w", shared.ErrNotFound, err)
	case ce.Code == clickup.CodeInvalidArgument, ce.Code == clickup.CodePriorityOutOfRange,
		ce.Code == clickup.CodeInvalidOrderBy, ce.Code == clickup.CodeTimeConversion:
		return fmt.Errorf("%w: %w", shared.ErrInvalidArgument, err)
	default:
		return fmt.Errorf("%w: %w", shared.ErrAPIRequest, err)
	}
}

// requireArg returns the named positional argument, or fallback when it is empty.
func requireArg(cmd *cli.Command, name, fallback string) (string, error) {
	v := strings.TrimSpace(cmd.StringArg(name))
	if v == "" {
		v = fallback
	}
	if v == "" {
		return "", fmt.Errorf("%w: %s", shared.ErrMissingArgument, name)
	}
	return v, nil
}

// render writes v as JSON when --json is set and calls plain otherwise.
func (r *Runner) render(cmd *cli.Command, v any, plain func() error) error {
	if cmd.Bool("json") {
		return r.writeJSON(v, true)
	}
	return plain()
}

// done reports a mutation that returns no record.
func (r *Runner) done(cmd *cli.Command, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{"ok": true, "message": msg}, true)
	}
	return r.writePlain("✓ %s\n", msg)
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
