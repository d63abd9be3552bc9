package tui

import (
	"testing"
	"time"

	"agioctl/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOptions_KeepIndexOrder(t *testing.T) {
	labels := []string{"[129] EECS 485 Fall 2021", "[109] EECS 485 Spring 2021"}

	opts := selectOptions(labels)
	require.Len(t, opts, 2)
	for i, opt := range opts {
		assert.Equal(t, labels[i], opt.Key)
		assert.Equal(t, i, opt.Value)
	}
}

func TestRequireText(t *testing.T) {
	assert.Error(t, requireText(""))
	assert.Error(t, requireText("   "))
	assert.NoError(t, requireText("awdeorio"))
}

func TestValidateHex(t *testing.T) {
	assert.NoError(t, validateHex("#00274C"))
	assert.Error(t, validateHex("00274C"))
	assert.Error(t, validateHex("#fff"))
}

func TestSetAccent(t *testing.T) {
	t.Cleanup(func() { SetAccent("") })

	SetAccent("205")
	assert.Equal(t, "205", accentColor)
	assert.NotNil(t, GetTheme())

	SetAccent("")
	assert.Equal(t, DefaultAccent, accentColor)
}

func TestDescribe(t *testing.T) {
	cfg := config.Default()
	cfg.Timeout = 10 * time.Second

	out := describe(cfg)
	assert.Contains(t, out, "Base URL: https://autograder.io/\n")
	assert.Contains(t, out, "Timeout: 10s\n")
	assert.Contains(t, out, "Group Prompt: select\n")
	assert.Contains(t, out, "Accent Color: default\n")
}
