package main

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigErrorIsLogged(t *testing.T) {
	if os.Getenv("RUN_COMMAND_MAIN") == "1" {
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestConfigErrorIsLogged$")
	cmd.Env = append(os.Environ(), "RUN_COMMAND_MAIN=1", "TABLE_TIMEZONE=Not/AZone")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected non-zero exit, got %v", err)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(out), "Failed to load configuration")
	assert.Contains(t, string(out), "Not/AZone")
}
