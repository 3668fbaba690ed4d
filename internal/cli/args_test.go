package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-kit/create-mcp-server-kit/internal/scaffold"
)

func TestParseArgs(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name string
		args []string
		want func(o *scaffold.Options)
	}{
		{
			name: "no args",
			args: nil,
			want: func(o *scaffold.Options) {},
		},
		{
			name: "target only",
			args: []string{"my-mcp-server"},
			want: func(o *scaffold.Options) { o.Dir = "my-mcp-server" },
		},
		{
			name: "help and version",
			args: []string{"-h", "--version"},
			want: func(o *scaffold.Options) {
				o.Help = true
				o.Version = true
			},
		},
		{
			name: "value flags",
			args: []string{"--template", "ts-stdio", "dir", "--pm", "pnpm", "--name", "My Name", "--description", "Hello"},
			want: func(o *scaffold.Options) {
				o.Dir = "dir"
				o.Template = "ts-stdio"
				o.PackageManager = str("pnpm")
				o.Name = str("My Name")
				o.Description = str("Hello")
			},
		},
		{
			name: "value flag consumes a dash token",
			args: []string{"dir", "--description", "--force"},
			want: func(o *scaffold.Options) {
				o.Dir = "dir"
				o.Description = str("--force")
			},
		},
		{
			name: "empty value is kept",
			args: []string{"dir", "--name", ""},
			want: func(o *scaffold.Options) {
				o.Dir = "dir"
				o.Name = str("")
			},
		},
		{
			name: "joined value",
			args: []string{"dir", "--pm=yarn"},
			want: func(o *scaffold.Options) {
				o.Dir = "dir"
				o.PackageManager = str("yarn")
			},
		},
		{
			name: "negative toggles",
			args: []string{"dir", "--no-install", "--no-git", "--force"},
			want: func(o *scaffold.Options) {
				o.Dir = "dir"
				o.Install = false
				o.Git = false
				o.Force = true
			},
		},
		{
			name: "last toggle wins",
			args: []string{"--no-install", "--install", "--git", "--no-git", "dir"},
			want: func(o *scaffold.Options) {
				o.Dir = "dir"
				o.Install = true
				o.Git = false
			},
		},
		{
			name: "positional after flags",
			args: []string{"--no-git", "dir"},
			want: func(o *scaffold.Options) {
				o.Dir = "dir"
				o.Git = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := scaffold.DefaultOptions()
			tt.want(&want)

			got, err := ParseArgs(tt.args, scaffold.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"unknown long flag", []string{"dir", "--bogus"}, "Unknown flag: --bogus"},
		{"unknown short flag", []string{"-x"}, "Unknown flag: -x"},
		{"lone dash", []string{"-"}, "Unknown flag: -"},
		{"double dash", []string{"dir", "--"}, "Unknown flag: --"},
		{"too many positionals", []string{"a", "b"}, "Too many positional arguments: a b"},
		{"three positionals", []string{"a", "--force", "b", "c"}, "Too many positional arguments: a b c"},
		{"missing template value", []string{"dir", "--template"}, "Missing value for --template"},
		{"missing pm value", []string{"--pm"}, "Missing value for --pm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args, scaffold.DefaultOptions())
			require.Error(t, err)
			assert.Equal(t, tt.msg, err.Error())
			assert.True(t, scaffold.IsKind(err, scaffold.KindUsage))
		})
	}
}

func TestParseArgsInvalidToggleValue(t *testing.T) {
	_, err := ParseArgs([]string{"dir", "--install=maybe"}, scaffold.DefaultOptions())
	require.Error(t, err)
	assert.True(t, scaffold.IsKind(err, scaffold.KindUsage))
}

func TestParseArgsSeedsDefaults(t *testing.T) {
	pm := "bun"
	defaults := scaffold.DefaultOptions()
	defaults.Template = "custom"
	defaults.Install = false
	defaults.PackageManager = &pm

	got, err := ParseArgs([]string{"dir"}, defaults)
	require.NoError(t, err)
	assert.Equal(t, "custom", got.Template)
	assert.False(t, got.Install)
	require.NotNil(t, got.PackageManager)
	assert.Equal(t, "bun", *got.PackageManager)

	got, err = ParseArgs([]string{"dir", "--install", "--pm", "npm", "--template", "ts-stdio"}, defaults)
	require.NoError(t, err)
	assert.Equal(t, "ts-stdio", got.Template)
	assert.True(t, got.Install)
	assert.Equal(t, "npm", *got.PackageManager)
}
