package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-masscan/config"
	"go-masscan/config/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTarget(t *testing.T) {
	tests := []struct {
		target string
		want   bool
	}{
		{"10.0.0.1", true},
		{"10.0.0.0/24", true},
		{"10.0.0.1-10.0.0.100", true},
		{"10.0.0.1 - 10.0.0.100", true},
		{"2001:db8::1", true},
		{"2001:db8::/64", true},
		{"10.0.0.1-2001:db8::1", false},
		{"10.0.0.1-", false},
		{"example.com", false},
		{"10.0.0.256", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTarget(tt.target))
		})
	}
}

func TestTaskBuilder_Target(t *testing.T) {
	builder := NewTaskBuilder(&config.AppConfig{Target: " 10.0.0.1, 10.0.1.0/24 ,,10.0.2.1-10.0.2.9"})
	assert.Equal(t, constant.EngineInit, builder.Status)

	ranges, err := builder.Run()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1,10.0.1.0/24,10.0.2.1-10.0.2.9", ranges)
	assert.Equal(t, constant.EngineStop, builder.Status)
}

func TestTaskBuilder_IllegalTarget(t *testing.T) {
	_, err := NewTaskBuilder(&config.AppConfig{Target: "10.0.0.1,example.com"}).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "example.com")
}

func TestTaskBuilder_InputFile(t *testing.T) {
	input := filepath.Join(t.TempDir(), "targets.txt")
	content := strings.Join([]string{
		"# office",
		"192.168.1.0/24",
		"",
		"not-an-ip",
		"  10.0.0.1  ",
		"172.16.0.1-172.16.0.50",
	}, "\n")
	require.NoError(t, os.WriteFile(input, []byte(content), 0644))

	ranges, err := NewTaskBuilder(&config.AppConfig{InputFile: input}).Run()
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.0/24,10.0.0.1,172.16.0.1-172.16.0.50", ranges)
}

func TestTaskBuilder_InputFileMissing(t *testing.T) {
	_, err := NewTaskBuilder(&config.AppConfig{InputFile: filepath.Join(t.TempDir(), "missing.txt")}).Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestTaskBuilder_NoTargets(t *testing.T) {
	input := filepath.Join(t.TempDir(), "targets.txt")
	require.NoError(t, os.WriteFile(input, []byte("# nothing here\n\n"), 0644))

	_, err := NewTaskBuilder(&config.AppConfig{InputFile: input}).Run()
	assert.EqualError(t, err, "no target to scan")

	_, err = NewTaskBuilder(&config.AppConfig{}).Run()
	assert.Error(t, err)
}
