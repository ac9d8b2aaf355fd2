package main

import (
	"bytes"
	"strings"
	"testing"

	"skillhub/internal/mcpconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteData(t *testing.T) {
	v := map[string]string{"command": "a<b"}

	var buf bytes.Buffer
	require.NoError(t, writeData(&buf, "json", v))
	assert.Equal(t, "{\n  \"command\": \"a<b\"\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, writeData(&buf, "yaml", v))
	assert.Equal(t, "command: a<b\n", buf.String())

	assert.Error(t, writeData(&buf, "toml", v))
}

func TestCheckFormat(t *testing.T) {
	assert.NoError(t, checkFormat("json", "text", "json"))
	err := checkFormat("xml", "text", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text, json")
}

func TestReadContent(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "argument", args: []string{"path", "inline"}, want: "inline"},
		{name: "dash reads stdin", args: []string{"path", "-"}, want: "from stdin"},
		{name: "absent reads stdin", args: []string{"path"}, want: "from stdin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readContent(tt.args, 1, strings.NewReader("from stdin"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEnv(t *testing.T) {
	env, err := parseEnv(nil)
	require.NoError(t, err)
	assert.Nil(t, env)

	env, err = parseEnv([]string{"A=1", "B=x=y", "EMPTY="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "1", "B": "x=y", "EMPTY": ""}, env)

	for _, bad := range []string{"NOVALUE", "=1"} {
		_, err := parseEnv([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestLocationStatus(t *testing.T) {
	tests := []struct {
		loc  mcpconfig.Location
		want string
	}{
		{loc: mcpconfig.Location{}, want: "missing"},
		{loc: mcpconfig.Location{Exists: true, Error: "bad json"}, want: "unreadable"},
		{loc: mcpconfig.Location{Exists: true, Servers: 1}, want: "1 server"},
		{loc: mcpconfig.Location{Exists: true, Servers: 3}, want: "3 servers"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, locationStatus(tt.loc))
	}
}
