package migrate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/gsmigrate/pkg/config"
)

func TestRestoreFacadeOperation_Execute(t *testing.T) {
	ctx := testContext(t)
	cfg := tempConfig(t)
	opts, _ := newTestOptions(t, ctx, cfg)

	writeScript(t, cfg, cfg.FacadeFile,
		"// facade header\ninclude stuff\n"+config.Marker+"\nOLD_EXPORTS")

	op, err := NewRestoreFacadeOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(ctx))

	got := readScript(t, cfg, cfg.FacadeFile)
	assert.True(t, strings.HasPrefix(got, "// facade header\ninclude stuff\n"))
	assert.Equal(t, "// facade header\ninclude stuff\n"+config.ExportBlock(config.DefaultExports), got)
	assert.True(t, strings.HasSuffix(got, "  retrieveFedPolicy: MacroeconomicFactors.retrieveFedPolicy\n});\n"))
	assert.NotContains(t, got, "OLD_EXPORTS")
}

// The regenerated tail is identical regardless of what followed the
// marker before, so restoring twice converges.
func TestRestoreFacadeOperation_Execute_Converges(t *testing.T) {
	ctx := testContext(t)
	cfg := tempConfig(t)
	opts, _ := newTestOptions(t, ctx, cfg)

	writeScript(t, cfg, cfg.FacadeFile, "HEADER\n"+config.Marker+"\nanything at all")

	op, err := NewRestoreFacadeOperation(opts)
	require.NoError(t, err)

	require.NoError(t, op.Execute(ctx))
	first := readScript(t, cfg, cfg.FacadeFile)

	require.NoError(t, op.Execute(ctx))
	second := readScript(t, cfg, cfg.FacadeFile)

	assert.Equal(t, first, second)
}

func TestRestoreFacadeOperation_Execute_MissingFacade(t *testing.T) {
	ctx := testContext(t)
	cfg := tempConfig(t)
	opts, _ := newTestOptions(t, ctx, cfg)

	op, err := NewRestoreFacadeOperation(opts)
	require.NoError(t, err)

	err = op.Execute(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}
