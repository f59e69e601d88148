package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intel/aipc-devkit-install/pkg/devkiterrors"
)

func TestValidateCmd(t *testing.T) {
	t.Parallel()

	t.Run("valid arguments", func(t *testing.T) {
		t.Parallel()

		stdout, stderr, err := execute(t, "validate", "C:/devkit", "/opt/devkit")
		require.NoError(t, err)
		assert.Equal(t,
			"[AI-PC-DevKit] valid path: C:/devkit\n[AI-PC-DevKit] valid path: /opt/devkit\n",
			stdout,
		)
		assert.Empty(t, stderr)
	})

	t.Run("empty argument", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "validate", "C:/devkit", "")
		require.ErrorIs(t, err, devkiterrors.ErrInvalidPath)
		assert.Equal(t,
			"[AI-PC-DevKit] valid path: C:/devkit\n[AI-PC-DevKit] invalid path: \"\"\n",
			stdout,
		)
	})

	t.Run("no candidates", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "validate")
		require.ErrorIs(t, err, devkiterrors.ErrInvalidArguments)
		assert.Empty(t, stdout)
	})

	t.Run("config paths", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "paths:\n  - C:/devkit\n  - \"\"\n  - 42\n  - null\n")

		stdout, _, err := execute(t, "validate", "--config", path, "D:/devkit")
		require.ErrorIs(t, err, devkiterrors.ErrInvalidPath)
		assert.Contains(t, err.Error(), "3 errors occurred")
		assert.Equal(t, "[AI-PC-DevKit] valid path: D:/devkit\n"+
			"[AI-PC-DevKit] valid path: C:/devkit\n"+
			"[AI-PC-DevKit] invalid path: \"\"\n"+
			"[AI-PC-DevKit] invalid path: 42\n"+
			"[AI-PC-DevKit] invalid path: <nil>\n",
			stdout,
		)
	})

	t.Run("config paths only", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "paths: [C:/devkit]\n")

		stdout, _, err := execute(t, "validate", "--config", path)
		require.NoError(t, err)
		assert.Equal(t, "[AI-PC-DevKit] valid path: C:/devkit\n", stdout)
	})
}

func TestValidateCmd_DebugLog(t *testing.T) {
	stdout, stderr, err := execute(t, "validate", "--log_level=debug", "--log_format=logfmt", "C:/devkit")
	require.NoError(t, err)
	assert.Equal(t, "[AI-PC-DevKit] valid path: C:/devkit\n", stdout)
	assert.Contains(t, stderr, "msg=\"validated path\"")
	assert.Contains(t, stderr, "valid=true")
}
