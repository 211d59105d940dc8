package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func init() {
	color.NoColor = true
}

func TestDefaultFileFormatter_FormatUpdated(t *testing.T) {
	f := NewDefaultFileFormatter()
	assert.Equal(t, "Updated: Code.gs", f.FormatUpdated("Code.gs"))
}

func TestDefaultFileFormatter_FormatError(t *testing.T) {
	f := NewDefaultFileFormatter()
	assert.Equal(t, "Error: boom", f.FormatError(errors.New("boom")))
	assert.Empty(t, f.FormatError(nil))
}
