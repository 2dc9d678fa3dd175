package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const sitesJSON = `[
	{"id":"s1","name":"Ntinda Road","status":"active"},
	{"id":"s2","name":"Jinja","status":"inactive"},
	{"id":"s3","name":"Entebbe","status":"active"},
	{"id":"s4","name":null,"status":"active"}
]`

func writeSites(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "sites.json")
	require.NoError(t, os.WriteFile(path, []byte(sitesJSON), 0o644))
	return path
}

func execute(t *testing.T, args ...string) string {
	cmd := newViewCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestViewCmd(t *testing.T) {
	path := writeSites(t)

	t.Run("table output", func(t *testing.T) {
		out := execute(t, "--file", path, "--columns", "name:Name,status:Status", "--page-size", "2")
		assert.Contains(t, out, "Ntinda Road")
		assert.Contains(t, out, "Showing 1 to 2 of 4 results")
		assert.Contains(t, out, "[1] 2")
	})

	t.Run("search filter sort as json", func(t *testing.T) {
		out := execute(t, "--file", path, "--columns", "name,status",
			"--filter", `{"status":"active"}`, "--sort", "name", "--desc",
			"--format", "json", "--scope", "live")
		result := gjson.Parse(strings.TrimSpace(out))
		names := []string{}
		for _, r := range result.Array() {
			names = append(names, r.Get("name").String())
		}
		assert.Equal(t, []string{"Ntinda Road", "Entebbe", ""}, names)
	})

	t.Run("selection and state", func(t *testing.T) {
		out := execute(t, "--file", path, "--columns", "name", "--select", "s1,s3",
			"--search", "ntinda", "--format", "csv", "--scope", "selected", "--show-state")
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "name", lines[0])
		assert.Equal(t, "Ntinda Road", lines[1])
		assert.Equal(t, "ntinda", gjson.Get(lines[2], "search").String())
	})

	t.Run("filters restored from state", func(t *testing.T) {
		out := execute(t, "--file", path, "--columns", "name",
			"--state", `{"filters":{"status":"inactive"}}`, "--format", "csv", "--scope", "live")
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Equal(t, []string{"name", "Jinja"}, lines)
	})
}
