package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_KeepsOnlyAllowedFlags(t *testing.T) {
	args := []string{"-d", "local.db", "-x", "junk", "--config=conf.json", "-t", "12"}

	got := FilterArgs(args, []string{"-d", "--config"})

	assert.Equal(t, []string{"-d", "local.db", "--config=conf.json"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	got := FilterArgs([]string{"-d", "-t", "12"}, []string{"-d"})
	assert.Equal(t, []string{"-d"}, got)
}

func TestFilterArgs_EmptyInput(t *testing.T) {
	got := FilterArgs(nil, []string{"-d"})
	assert.Empty(t, got)
}
