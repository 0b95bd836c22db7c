package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	for _, name := range []string{"CASEFILE_DATA", "CASEFILE_OUTPUT"} {
		old, had := os.LookupEnv(name)
		require.NoError(t, os.Unsetenv(name))
		if had {
			t.Cleanup(func() { os.Setenv(name, old) })
		}
	}
}

func setConfigEnv(t *testing.T, name, value string) {
	require.NoError(t, os.Setenv(name, value))
	t.Cleanup(func() { os.Unsetenv(name) })
}

func TestCommandParamsRead(t *testing.T) {
	clearConfigEnv(t)
	var params commandParams

	ok := params.Read([]string{"casefile", "-data", "x.txt", "-debug"})

	require.True(t, ok)
	assert.Equal(t, "casefile", params.program)
	assert.Equal(t, "x.txt", params.data)
	assert.True(t, params.debug)
	assert.False(t, params.debugAll)
	assert.False(t, params.filters.IsDefined())
}

func TestCommandParamsRequireData(t *testing.T) {
	clearConfigEnv(t)
	var params commandParams

	assert.False(t, params.Read([]string{"casefile"}))
}

func TestCommandParamsListNeedsNoData(t *testing.T) {
	clearConfigEnv(t)
	var params commandParams

	require.True(t, params.Read([]string{"casefile", "-list"}))
	assert.True(t, params.list)
}

func TestCommandParamsFilterFlagsAreRepeatable(t *testing.T) {
	clearConfigEnv(t)
	var params commandParams

	ok := params.Read([]string{"casefile", "-data", "x.txt",
		"-run", "^read", "-run", "^write", "-skip", "Slow$"})

	require.True(t, ok)
	assert.True(t, params.filters.Match("readBasic"))
	assert.True(t, params.filters.Match("writeBasic"))
	assert.False(t, params.filters.Match("other"))
	assert.False(t, params.filters.Match("readSlow"))
}

func TestCommandParamsDataFromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	setConfigEnv(t, "CASEFILE_DATA", "env.txt")
	var params commandParams

	require.True(t, params.Read([]string{"casefile"}))
	assert.Equal(t, "env.txt", params.data)
}

func TestCommandParamsConfigFileFillsGaps(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(
		"data: from-config.txt\noutput: report.txt\ndebug: true\ntests:\n  - caseNumber\n  - multiLine\n"), 0600))
	var params commandParams

	require.True(t, params.Read([]string{"casefile", "-config", path}))

	assert.Equal(t, "from-config.txt", params.data)
	assert.Equal(t, "report.txt", params.output)
	assert.True(t, params.debug)
	// The tests list becomes exact-match filters.
	assert.True(t, params.filters.Match("caseNumber"))
	assert.True(t, params.filters.Match("multiLine"))
	assert.False(t, params.filters.Match("caseNumberX"))
}

func TestCommandParamsFlagsWinOverConfigFile(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("data: from-config.txt\ntests:\n  - caseNumber\n"), 0600))
	var params commandParams

	ok := params.Read([]string{"casefile", "-config", path, "-data", "from-flag.txt", "-run", "^multi"})

	require.True(t, ok)
	assert.Equal(t, "from-flag.txt", params.data)
	assert.True(t, params.filters.Match("multiLine"))
	assert.False(t, params.filters.Match("caseNumber"))
}

func TestCommandParamsRejectBadConfigFile(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("data: [unclosed"), 0600))
	var params commandParams

	assert.False(t, params.Read([]string{"casefile", "-config", path, "-data", "x.txt"}))
}

func TestCommandBuilderQuotesOnlyWhereNeeded(t *testing.T) {
	var b commandBuilder
	b.add("casefile", "-data", "my data.txt", "-run", "^caseNumber$")

	assert.Equal(t, `casefile -data 'my data.txt' -run '^caseNumber$'`, b.String())
}
