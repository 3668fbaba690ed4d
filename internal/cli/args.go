package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/mcp-kit/create-mcp-server-kit/internal/branding"
	"github.com/mcp-kit/create-mcp-server-kit/internal/scaffold"
)

// Flag names.
const (
	flagHelp        = "help"
	flagVersion     = "version"
	flagTemplate    = "template"
	flagPM          = "pm"
	flagName        = "name"
	flagDescription = "description"
	flagInstall     = "install"
	flagNoInstall   = "no-install"
	flagGit         = "git"
	flagNoGit       = "no-git"
	flagForce       = "force"
)

// toggleValue is one half of a --x/--no-x pair. Both halves write the same
// destination, so whichever appears last wins.
type toggleValue struct {
	dst *bool
	on  bool // value stored when the flag is given without =false
}

func (t *toggleValue) String() string { return strconv.FormatBool(*t.dst == t.on) }

func (t *toggleValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*t.dst = v == t.on
	return nil
}

func (t *toggleValue) Type() string { return "bool" }

func addToggle(fs *pflag.FlagSet, dst *bool, on, off, usage string) {
	fs.Var(&toggleValue{dst: dst, on: true}, on, usage)
	fs.Lookup(on).NoOptDefVal = "true"
	fs.Var(&toggleValue{dst: dst, on: false}, off, "Skip "+usage)
	fs.Lookup(off).NoOptDefVal = "true"
}

// ParseArgs turns the raw arguments (without the program name) into
// Options, starting from defaults. Value flags consume the next token
// whatever it looks like; a value flag at the end of the list is an error.
func ParseArgs(args []string, defaults scaffold.Options) (scaffold.Options, error) {
	opts := defaults

	fs := pflag.NewFlagSet(branding.CLIName(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SetInterspersed(true)
	fs.SortFlags = false

	var pm, name, description string
	fs.BoolVarP(&opts.Help, flagHelp, "h", opts.Help, "Show help")
	fs.BoolVarP(&opts.Version, flagVersion, "v", opts.Version, "Show version")
	fs.StringVar(&opts.Template, flagTemplate, opts.Template, "Template name")
	fs.StringVar(&pm, flagPM, "", "Package manager to use for install")
	fs.StringVar(&name, flagName, "", "Override generated package name")
	fs.StringVar(&description, flagDescription, "", "Override generated description")
	addToggle(fs, &opts.Install, flagInstall, flagNoInstall, "dependency install")
	addToggle(fs, &opts.Git, flagGit, flagNoGit, "git init")
	fs.BoolVar(&opts.Force, flagForce, opts.Force, "Write into a non-empty directory")

	if err := fs.Parse(args); err != nil {
		return opts, usageError(err)
	}

	// "--" ends pflag's flag parsing; here it is just another unknown flag.
	if fs.ArgsLenAtDash() >= 0 {
		return opts, scaffold.Usagef("Unknown flag: --")
	}

	positional := fs.Args()
	for _, a := range positional {
		if strings.HasPrefix(a, "-") {
			return opts, scaffold.Usagef("Unknown flag: %s", a)
		}
	}
	if len(positional) > 1 {
		return opts, scaffold.Usagef("Too many positional arguments: %s", strings.Join(positional, " "))
	}
	if len(positional) == 1 {
		opts.Dir = positional[0]
	}

	if fs.Changed(flagPM) {
		opts.PackageManager = &pm
	}
	if fs.Changed(flagName) {
		opts.Name = &name
	}
	if fs.Changed(flagDescription) {
		opts.Description = &description
	}

	return opts, nil
}

// usageError rewrites pflag's parse errors in the tool's own wording.
func usageError(err error) error {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "unknown flag: "):
		return scaffold.Usagef("Unknown flag: %s", strings.TrimPrefix(msg, "unknown flag: "))
	case strings.HasPrefix(msg, "unknown shorthand flag: "):
		// unknown shorthand flag: 'x' in -xyz
		if i := strings.LastIndex(msg, " in "); i >= 0 {
			return scaffold.Usagef("Unknown flag: %s", msg[i+len(" in "):])
		}
	case strings.HasPrefix(msg, "flag needs an argument: "):
		return scaffold.Usagef("Missing value for %s", flagNameFromNeedsArg(strings.TrimPrefix(msg, "flag needs an argument: ")))
	}
	return &scaffold.Error{Kind: scaffold.KindUsage, Message: capitalize(msg), Cause: err}
}

// flagNameFromNeedsArg extracts the flag from "--name" or "'n' in -n".
func flagNameFromNeedsArg(s string) string {
	if i := strings.LastIndex(s, " in "); i >= 0 {
		return s[i+len(" in "):]
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
