package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "flag followed by another flag",
			args:         []string{"-d", "-s", "secret"},
			allowedFlags: []string{"-d", "-s"},
			want:         []string{"-d", "-s", "secret"},
		},
		{
			name:         "several server flags in order",
			args:         []string{"-a", ":50051", "-w", ":8080", "-k", "bolt"},
			allowedFlags: []string{"-a", "-w", "-k"},
			want:         []string{"-a", ":50051", "-w", ":8080", "-k", "bolt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "a.json", ConfigFile([]string{"-c", "a.json", "-d", "dsn"}))
	assert.Equal(t, "b.json", ConfigFile([]string{"-a", ":1", "-config", "b.json"}))
	assert.Equal(t, "c.json", ConfigFile([]string{"--config=c.json"}))
	assert.Equal(t, "", ConfigFile([]string{"-a", ":1"}))
	assert.Equal(t, "", ConfigFile(nil))
}
