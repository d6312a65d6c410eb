package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "separate value",
			args:  []string{"-c", "conf.json", "-a", "localhost"},
			names: []string{"c"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "inline value with double dash",
			args:  []string{"--config=alt.json", "-a", "localhost"},
			names: []string{"config"},
			want:  []string{"--config=alt.json"},
		},
		{
			name:  "dashes in names are ignored",
			args:  []string{"-s", "secret"},
			names: []string{"-s"},
			want:  []string{"-s", "secret"},
		},
		{
			name:  "unknown flags and positionals dropped",
			args:  []string{"-x", "1", "--y=2", "positional"},
			names: []string{"c"},
			want:  []string{},
		},
		{
			name:  "flag without value at end",
			args:  []string{"-c"},
			names: []string{"c"},
			want:  []string{"-c"},
		},
		{
			name:  "next flag is not a value",
			args:  []string{"-c", "-w", "12"},
			names: []string{"c", "w"},
			want:  []string{"-c", "-w", "12"},
		},
		{
			name:  "repeated flag keeps order",
			args:  []string{"-c", "one.json", "-c", "two.json"},
			names: []string{"c"},
			want:  []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:  "bare dashes ignored",
			args:  []string{"--", "-"},
			names: []string{"c"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.names))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "/path/short.json", ConfigFile([]string{"-c", "/path/short.json"}))
	assert.Equal(t, "/path/long.json", ConfigFile([]string{"-a", ":1", "-config", "/path/long.json"}))
	assert.Equal(t, "/path/2.json", ConfigFile([]string{"-c", "/path/1.json", "-config=/path/2.json"}))
	assert.Empty(t, ConfigFile([]string{"-x", "1"}))
	assert.Empty(t, ConfigFile(nil))
}
