package migrate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/walteh/gsmigrate/pkg/config"
	"github.com/walteh/gsmigrate/pkg/status"
)

func init() {
	// Keep console assertions byte-stable
	color.NoColor = true
}

// testContext returns a context carrying a test-scoped logger
func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return logger.WithContext(context.Background())
}

// newTestOptions builds Options over a temp script directory and returns
// the console buffer the status lines land in
func newTestOptions(t *testing.T, ctx context.Context, cfg *config.Config) (Options, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	return Options{
		Config: cfg,
		Status: status.NewUserLogger(ctx, buf, nil),
	}, buf
}

// writeScript writes a script file into the config's directory
func writeScript(t *testing.T, cfg *config.Config, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(cfg.Path(name), []byte(content), 0o644))
}

// readScript reads a script file back from the config's directory
func readScript(t *testing.T, cfg *config.Config, name string) string {
	t.Helper()
	data, err := os.ReadFile(cfg.Path(name))
	require.NoError(t, err)
	return string(data)
}

// fileExists reports whether a script file exists
func fileExists(t *testing.T, cfg *config.Config, name string) bool {
	t.Helper()
	_, err := os.Stat(cfg.Path(name))
	if err == nil {
		return true
	}
	require.True(t, os.IsNotExist(err))
	return false
}

// tempConfig returns the default config rooted in a fresh temp dir
func tempConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Dir = t.TempDir()
	return cfg
}

func TestOptions_Validate(t *testing.T) {
	ctx := testContext(t)

	_, err := NewCombineOperation(Options{})
	require.Error(t, err)

	_, err = NewRemoveFacadeOperation(Options{Config: config.Default()})
	require.Error(t, err)

	opts, _ := newTestOptions(t, ctx, tempConfig(t))
	opts.Config = nil
	_, err = NewUpdateRefsOperation(opts)
	require.Error(t, err)

	_, err = NewRestoreFacadeOperation(Options{Status: status.NewUserLogger(ctx, &bytes.Buffer{}, nil)})
	require.Error(t, err)
}

func TestOperationNames(t *testing.T) {
	ctx := testContext(t)
	opts, _ := newTestOptions(t, ctx, tempConfig(t))

	for _, tc := range []struct {
		want string
		make func(Options) (Operation, error)
	}{
		{"combine", NewCombineOperation},
		{"remove-facade", NewRemoveFacadeOperation},
		{"restore-facade", NewRestoreFacadeOperation},
		{"update-refs", NewUpdateRefsOperation},
	} {
		op, err := tc.make(opts)
		require.NoError(t, err)
		require.Equal(t, tc.want, op.Name())
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	ctx := testContext(t)
	err := writeFile(ctx, filepath.Join(t.TempDir(), "missing", "nested.gs"), []byte("x"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "writing")
}
