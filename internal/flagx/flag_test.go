package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	storeFlags := []string{"-l", "-s"}
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-l", "listen.db", "-w", "widget.sock"},
			allowed: storeFlags,
			want:    []string{"-l", "listen.db"},
		},
		{
			name:    "equals form",
			args:    []string{"-s=group/shared.db", "-k", "Info_Widget"},
			allowed: storeFlags,
			want:    []string{"-s=group/shared.db"},
		},
		{
			name:    "order preserved across owners",
			args:    []string{"-s=shared.db", "-k", "Info_Widget", "-l", "local.db"},
			allowed: storeFlags,
			want:    []string{"-s=shared.db", "-l", "local.db"},
		},
		{
			name:    "foreign flags and positionals dropped",
			args:    []string{"-k", "Info_Widget", "-log=debug", "stats"},
			allowed: storeFlags,
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-l"},
			allowed: storeFlags,
			want:    []string{"-l"},
		},
		{
			name:    "dash token is not taken as value",
			args:    []string{"-l", "-s=shared.db"},
			allowed: storeFlags,
			want:    []string{"-l", "-s=shared.db"},
		},
		{
			name:    "equals value may start with a dash",
			args:    []string{"-w=-odd.sock"},
			allowed: []string{"-w"},
			want:    []string{"-w=-odd.sock"},
		},
		{
			name:    "repeated flag kept",
			args:    []string{"-t", "250ms", "-t", "1s"},
			allowed: []string{"-t"},
			want:    []string{"-t", "250ms", "-t", "1s"},
		},
		{
			name:    "empty",
			args:    nil,
			allowed: storeFlags,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestFilterArgs_BoolFlags(t *testing.T) {
	got := FilterArgs([]string{"-headless", "add", "-l", "x.db", "-v=true"}, []string{"-l"}, "-headless", "-v")
	assert.Equal(t, []string{"-headless", "-l", "x.db", "-v=true"}, got)
}

func TestConfigFileFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/path/short.json"}, "/path/short.json"},
		{"long", []string{"-config", "/path/long.json"}, "/path/long.json"},
		{"equals", []string{"-config=/path/eq.json", "-l", "db"}, "/path/eq.json"},
		{"absent", []string{"-x", "1", "-y", "2"}, ""},
		{"last wins", []string{"-c", "/path/1.json", "-config", "/path/2.json"}, "/path/2.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFileFlag(tt.args))
		})
	}
}
