package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mcp-kit/create-mcp-server-kit/internal/branding"
	"github.com/mcp-kit/create-mcp-server-kit/internal/config"
	"github.com/mcp-kit/create-mcp-server-kit/internal/logging"
	"github.com/mcp-kit/create-mcp-server-kit/internal/manifest"
	"github.com/mcp-kit/create-mcp-server-kit/internal/pkgmgr"
	"github.com/mcp-kit/create-mcp-server-kit/internal/platform"
	"github.com/mcp-kit/create-mcp-server-kit/internal/runtime"
	"github.com/mcp-kit/create-mcp-server-kit/internal/templates"
)

const packageJSONFile = "package.json"

var printer = message.NewPrinter(language.English)

// Options is one invocation's parsed command line. Pointer fields are nil
// when the flag was not given.
type Options struct {
	Dir            string
	Template       string
	Install        bool
	Git            bool
	PackageManager *string
	Name           *string
	Description    *string
	Force          bool
	Help           bool
	Version        bool
}

// DefaultOptions returns the options used when no flags are given.
func DefaultOptions() Options {
	return Options{
		Template: config.DefaultTemplate,
		Install:  true,
		Git:      true,
	}
}

// Reporter receives user-facing output.
type Reporter interface {
	// Println writes a line to the normal output stream.
	Println(a ...any)
	// Warn writes a non-fatal warning to the error stream.
	Warn(msg string)
}

// Env is the execution context of one generation. Nothing in this package
// reads the process working directory or standard streams directly.
type Env struct {
	Cwd       string
	Out       Reporter
	FS        afero.Fs
	Runner    runtime.Runner
	Templates *templates.Registry
	Logger    zerolog.Logger
	Version   string
	HelpText  func() string
}

// Result holds the outcome of a generation.
type Result struct {
	OutputDir   string
	PackageName string
	Template    string
	Files       []string
	Warnings    []string
}

// Run executes one invocation: version or help display, or a full
// generation. Fatal failures are returned as *Error; the caller prints them
// and exits with ExitCode(err). Result is nil when nothing was generated.
func Run(ctx context.Context, env Env, opts Options) (*Result, error) {
	if opts.Version {
		env.Out.Println(env.Version)
		return nil, nil
	}
	if opts.Help || opts.Dir == "" {
		env.Out.Println(env.HelpText())
		return nil, nil
	}

	log := logging.Component(env.Logger, "scaffold")
	done := logging.LogOperationStart(log, "generate")
	defer done()

	tmpl, err := resolveTemplate(env, opts.Template)
	if err != nil {
		return nil, err
	}

	if opts.Description != nil {
		if tok, found := ContainsToken(*opts.Description); found {
			return nil, Usagef("Description must not contain the placeholder %s", tok)
		}
	}

	pm, err := resolvePackageManager(opts)
	if err != nil {
		return nil, err
	}

	targetDir, err := absTarget(env.Cwd, opts.Dir)
	if err != nil {
		return nil, err
	}
	if err := prepareTarget(env.FS, targetDir, opts.Force); err != nil {
		return nil, err
	}

	nameInput := filepath.Base(targetDir)
	if opts.Name != nil {
		nameInput = *opts.Name
	}
	pkgName := PackageName(nameInput)
	description := branding.DefaultDescription()
	if opts.Description != nil {
		description = *opts.Description
	}

	log.Debug().
		Str("template", tmpl.Name).
		Str("source", tmpl.Source).
		Str("target", targetDir).
		Str("package", pkgName).
		Msg("Copying template")

	files, err := CopyTemplateDir(tmpl.FS, ".", env.FS, targetDir, NewTokenMap(pkgName, description))
	if err != nil {
		return nil, &Error{Kind: KindIO, Cause: err}
	}

	result := &Result{
		OutputDir:   targetDir,
		PackageName: pkgName,
		Template:    tmpl.Name,
		Files:       files,
	}

	for _, w := range checkPackageJSON(env.FS, targetDir) {
		env.Out.Warn(w)
		result.Warnings = append(result.Warnings, w)
	}

	env.Out.Println("\nCreated MCP server in: " + targetDir)
	env.Out.Println("- template: " + tmpl.Name)
	env.Out.Println("- package:  " + pkgName)
	env.Out.Println(printer.Sprintf("- files:    %d", len(files)))

	if opts.Git {
		res := env.Runner.Run(ctx, "git", []string{"init"}, targetDir)
		if !res.OK {
			log.Debug().Err(res.Err).Int("status", res.Status).Msg("git init failed")
			w := "git init failed (git not installed?), continuing."
			env.Out.Warn(w)
			result.Warnings = append(result.Warnings, w)
		}
	}

	if opts.Install {
		cmd, args := pm.InstallCommand()
		env.Out.Println(fmt.Sprintf("\nInstalling dependencies (%s)...", pm.Name))
		res := env.Runner.Run(ctx, cmd, args, targetDir)
		if !res.OK {
			return result, installError(res)
		}
	}

	printNextSteps(env.Out, opts, pm, tmpl.Manifest)
	return result, nil
}

func resolveTemplate(env Env, name string) (*templates.Template, error) {
	if name == "" {
		name = config.DefaultTemplate
	}

	tmpl, err := env.Templates.Lookup(name)
	if err != nil {
		var unknown *templates.UnknownError
		if errors.As(err, &unknown) {
			return nil, &Error{Kind: KindPrecondition, Message: unknown.Error(), Cause: err}
		}
		return nil, &Error{Kind: KindPrecondition, Message: fmt.Sprintf("Template %s is unusable: %v", name, err), Cause: err}
	}

	if err := tmpl.CheckCompatible(env.Version); err != nil {
		return nil, &Error{Kind: KindPrecondition, Message: err.Error(), Cause: err}
	}
	return tmpl, nil
}

// resolvePackageManager validates --pm up front so an unsupported name
// fails before anything is written. With install disabled the manager only
// shapes the next-steps hints, and an unknown name falls back to the default.
func resolvePackageManager(opts Options) (pkgmgr.Manager, error) {
	name := ""
	if opts.PackageManager != nil {
		name = *opts.PackageManager
	}

	pm, err := pkgmgr.Resolve(name)
	if err == nil {
		return pm, nil
	}
	if !opts.Install {
		return pkgmgr.Manager{Name: pkgmgr.Default}, nil
	}
	return pkgmgr.Manager{}, &Error{Kind: KindUsage, Message: err.Error(), Cause: err}
}

func absTarget(cwd, dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir), nil
	}
	if cwd == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", &Error{Kind: KindIO, Message: fmt.Sprintf("Resolving target directory: %v", err), Cause: err}
		}
		return abs, nil
	}
	return filepath.Join(cwd, dir), nil
}

// prepareTarget creates targetDir, or checks that an existing one may be
// written into.
func prepareTarget(fsys afero.Fs, targetDir string, force bool) error {
	info, err := fsys.Stat(targetDir)
	if errors.Is(err, os.ErrNotExist) {
		if err := fsys.MkdirAll(targetDir, platform.DirPerm); err != nil {
			return &Error{Kind: KindIO, Message: fmt.Sprintf("Creating target directory: %v", err), Cause: err}
		}
		return nil
	}
	if err != nil {
		return &Error{Kind: KindIO, Cause: err}
	}

	if !info.IsDir() {
		return Preconditionf("Target path is not a directory: %s", targetDir)
	}
	if force {
		return nil
	}

	empty, err := afero.IsEmpty(fsys, targetDir)
	if err != nil {
		return &Error{Kind: KindIO, Cause: err}
	}
	if !empty {
		return Preconditionf("Target directory is not empty: %s\nUse --force to write anyway, or choose another directory.", targetDir)
	}
	return nil
}

// checkPackageJSON validates the generated package.json and returns any
// problems as warnings.
func checkPackageJSON(fsys afero.Fs, targetDir string) []string {
	file := filepath.Join(targetDir, packageJSONFile)
	data, err := afero.ReadFile(fsys, file)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return []string{fmt.Sprintf("Could not read %s: %v", packageJSONFile, err)}
	}

	res, err := manifest.ValidatePackageJSON(data)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate %s: %v", packageJSONFile, err)}
	}

	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, packageJSONFile+": "+issue.String())
	}
	return warnings
}

func installError(res runtime.Result) *Error {
	if res.Err != nil {
		return &Error{
			Kind:    KindProcess,
			Message: "Install failed: " + res.Err.Error(),
			Cause:   res.Err,
			Code:    res.Status,
		}
	}
	return &Error{
		Kind:    KindProcess,
		Message: fmt.Sprintf("Install failed (exit code %d).", res.Status),
		Code:    res.Status,
	}
}

func printNextSteps(out Reporter, opts Options, pm pkgmgr.Manager, m *manifest.TemplateManifest) {
	out.Println("\nDone.")
	out.Println("\nNext steps:")
	out.Println("  cd " + opts.Dir)
	if !opts.Install {
		out.Println("  " + pm.InstallLine())
	}
	if m == nil {
		return
	}
	for _, script := range m.NextSteps {
		out.Println("  " + pm.RunScript(script))
	}
	if m.Tip != "" {
		out.Println("\nTip: " + m.Tip)
	}
}
