package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpaste-cli/rpaste/upload"
)

func TestFlagsToArgs(t *testing.T) {
	c := &cobra.Command{Use: "rpaste"}
	registerFlags(c.Flags())

	require.NoError(t, c.ParseFlags([]string{
		"-c", "/tmp/config.toml",
		"-s", "https://paste.example",
		"-a", "token",
		"-o",
		"-e", "10min",
		"-n", "renamed.txt",
		"-p",
		"-d",
		"a.txt", "b.txt",
	}))

	expected := upload.Args{
		ConfigPath: "/tmp/config.toml",
		Server:     "https://paste.example",
		Auth:       "token",
		Oneshot:    true,
		Expire:     "10min",
		Filename:   "renamed.txt",
		Prettify:   true,
		Delete:     true,
		Files:      []string{"a.txt", "b.txt"},
	}
	assert.Equal(t, expected, newArgs(c.Flags().Args()))
}

func TestRootVersionFlag(t *testing.T) {
	rootCmd.InitDefaultVersionFlag()
	f := rootCmd.Flags().Lookup("version")
	require.NotNil(t, f)
	assert.Equal(t, "v", f.Shorthand)

	sv := rootCmd.Flags().Lookup("server-version")
	require.NotNil(t, sv)
	assert.Equal(t, "V", sv.Shorthand)
}
