package cli

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mcp-kit/create-mcp-server-kit/internal/branding"
	"github.com/mcp-kit/create-mcp-server-kit/internal/config"
	"github.com/mcp-kit/create-mcp-server-kit/internal/logging"
	"github.com/mcp-kit/create-mcp-server-kit/internal/runtime"
	"github.com/mcp-kit/create-mcp-server-kit/internal/scaffold"
	"github.com/mcp-kit/create-mcp-server-kit/internal/templates"
)

// BuildInfo is injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Invocation is everything one run of the tool reads from its process.
// Zero-valued fields fall back to the real process state.
type Invocation struct {
	Args       []string
	Cwd        string
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	FS         afero.Fs
	Runner     runtime.Runner
	ConfigPath string
	Build      BuildInfo
}

// Execute runs the tool against the real process and returns the exit code.
func Execute(version, commit, date string) int {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	return Run(context.Background(), Invocation{
		Args:   os.Args[1:],
		Cwd:    cwd,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Build:  BuildInfo{Version: version, Commit: commit, Date: date},
	})
}

// Run executes one invocation. It is the single place where fatal errors
// are printed and mapped to an exit code.
func Run(ctx context.Context, inv Invocation) int {
	inv = withDefaults(inv)
	reporter := NewReporter(inv.Stdout, inv.Stderr)

	cmd := newRootCmd(inv, reporter)
	cmd.SetArgs(inv.Args)
	cmd.SetIn(inv.Stdin)
	cmd.SetOut(inv.Stdout)
	cmd.SetErr(inv.Stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return reporter.Fatal(err)
	}
	return 0
}

func withDefaults(inv Invocation) Invocation {
	// cobra falls back to os.Args when given nil.
	if inv.Args == nil {
		inv.Args = []string{}
	}
	if inv.Stdin == nil {
		inv.Stdin = os.Stdin
	}
	if inv.Stdout == nil {
		inv.Stdout = os.Stdout
	}
	if inv.Stderr == nil {
		inv.Stderr = os.Stderr
	}
	if inv.FS == nil {
		inv.FS = afero.NewOsFs()
	}
	if inv.ConfigPath == "" {
		inv.ConfigPath = config.FilePath()
	}
	if inv.Build.Version == "" {
		inv.Build.Version = "dev"
	}
	return inv
}

func newRootCmd(inv Invocation, reporter *Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   branding.CLIName() + " <dir> [options]",
		Short: branding.Tagline(),
		// Flags are parsed by ParseArgs so that the tool's exact flag
		// semantics apply.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd.Context(), inv, reporter, args)
		},
	}
}

func runRoot(ctx context.Context, inv Invocation, reporter *Reporter, args []string) error {
	settings, cfgErr := config.Load(inv.ConfigPath)
	if cfgErr != nil {
		reporter.Warn(cfgErr.Error())
	}

	logger := logging.New(inv.Stderr, settings.LogLevel, colorDisabled(inv.Stderr))
	logger.Debug().
		Str("version", inv.Build.Version).
		Str("commit", inv.Build.Commit).
		Str("config", inv.ConfigPath).
		Msg("Starting")

	opts, err := ParseArgs(args, defaultOptions(settings))
	if err != nil {
		return err
	}

	reg := templates.New(settings.TemplatesDir)
	env := scaffold.Env{
		Cwd:       inv.Cwd,
		Out:       reporter,
		FS:        inv.FS,
		Runner:    runner(inv, logger),
		Templates: reg,
		Logger:    logger,
		Version:   inv.Build.Version,
		HelpText: func() string {
			return HelpText(inv.Build.Version, settings.Template, reg)
		},
	}

	_, err = scaffold.Run(ctx, env, opts)
	return err
}

// defaultOptions seeds the parser with the user's settings; flags win.
func defaultOptions(s config.Settings) scaffold.Options {
	opts := scaffold.DefaultOptions()
	opts.Template = s.Template
	opts.Install = s.Install
	opts.Git = s.Git
	if s.PackageManager != "" {
		pm := s.PackageManager
		opts.PackageManager = &pm
	}
	return opts
}

func runner(inv Invocation, logger zerolog.Logger) runtime.Runner {
	if inv.Runner != nil {
		return inv.Runner
	}
	r := runtime.NewExecRunner(logger)
	r.Stdin = inv.Stdin
	r.Stdout = inv.Stdout
	r.Stderr = inv.Stderr
	return r
}
