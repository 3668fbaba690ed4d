package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/mcp-kit/create-mcp-server-kit/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyTemplate       = "template"
	KeyPackageManager = "package_manager"
	KeyGit            = "git"
	KeyInstall        = "install"
	KeyLogLevel       = "log_level"
	KeyTemplatesDir   = "templates_dir"
)

// DefaultTemplate is the template used when neither config nor flags name one.
const DefaultTemplate = "ts-stdio"

// Settings holds the resolved user defaults.
type Settings struct {
	Template       string
	PackageManager string
	Git            bool
	Install        bool
	LogLevel       string
	TemplatesDir   string
}

// Defaults returns the settings used when no config file or env var is present.
func Defaults() Settings {
	return Settings{
		Template: DefaultTemplate,
		Git:      true,
		Install:  true,
		LogLevel: "warn",
	}
}

// Dir returns the directory holding the config file.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, branding.ConfigDir())
}

// FilePath returns the config file path. The <PREFIX>_CONFIG env var
// overrides the XDG location.
func FilePath() string {
	if v := os.Getenv(branding.EnvVar("CONFIG")); v != "" {
		return v
	}
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads settings from path (a missing file is not an error) and from
// the environment. On a read or parse error the defaults are returned
// together with the error so callers can warn and continue.
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault(KeyTemplate, d.Template)
	v.SetDefault(KeyPackageManager, d.PackageManager)
	v.SetDefault(KeyGit, d.Git)
	v.SetDefault(KeyInstall, d.Install)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyTemplatesDir, d.TemplatesDir)

	var loadErr error
	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		loadErr = fmt.Errorf("reading config file %s: %w", path, err)
	}

	s := Settings{
		Template:       strings.TrimSpace(v.GetString(KeyTemplate)),
		PackageManager: strings.TrimSpace(v.GetString(KeyPackageManager)),
		Git:            v.GetBool(KeyGit),
		Install:        v.GetBool(KeyInstall),
		LogLevel:       v.GetString(KeyLogLevel),
		TemplatesDir:   strings.TrimSpace(v.GetString(KeyTemplatesDir)),
	}
	if s.Template == "" {
		s.Template = DefaultTemplate
	}
	if loadErr != nil {
		// Env vars are still honored; only the file contents are dropped.
		return s, loadErr
	}
	return s, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
