package events

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/chance"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

func TestDefaultCatalogue(t *testing.T) {
	cat := Default()

	assert.Len(t, cat.Events, 14)
	assert.Len(t, cat.Targets, 7)
	assert.Len(t, cat.CrashReasons, 6)
	assert.Contains(t, cat.Targets, "vase.exe")
	assert.Contains(t, cat.CrashReasons, "HAIRBALL_OVERFLOW_EXCEPTION")
	assert.Equal(t, `Sat on keyboard: "asdfjkl;"`, cat.Events[10].Message)
	assert.Equal(t, types.SeverityError, cat.Events[13].Severity)
}

func TestEmitUntargeted(t *testing.T) {
	src := chance.NewScript().Ints(7)

	msg, sev := Default().Emit(src)

	assert.Equal(t, "Found optimal sunbeam position", msg)
	assert.Equal(t, types.SeveritySuccess, sev)
}

func TestEmitTargeted(t *testing.T) {
	src := chance.NewScript().Ints(2, 1)

	msg, sev := Default().Emit(src)

	assert.Equal(t, "Cat crashed keyboard.dll", msg)
	assert.Equal(t, types.SeverityError, sev)
}

func TestLoadCustom(t *testing.T) {
	doc := `
targets: [sofa.obj]
crash_reasons: [NAP_TIMEOUT]
events:
  - message: "Shredded {target}"
    severity: error
`
	cat, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	msg, _ := cat.Emit(chance.NewScript())
	assert.Equal(t, "Shredded sofa.obj", msg)
	assert.Equal(t, "NAP_TIMEOUT", cat.CrashReason(chance.NewScript()))
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no events", "targets: [a]\ncrash_reasons: [B]\n"},
		{"no targets", "crash_reasons: [B]\nevents:\n  - {message: m, severity: info}\n"},
		{"no reasons", "targets: [a]\nevents:\n  - {message: m, severity: info}\n"},
		{"bad severity", "targets: [a]\ncrash_reasons: [B]\nevents:\n  - {message: m, severity: fatal}\n"},
		{"blank message", "targets: [a]\ncrash_reasons: [B]\nevents:\n  - {message: ' ', severity: info}\n"},
		{"not yaml", "targets: [a\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}

	_, err := Load(strings.NewReader("targets: [a]\ncrash_reasons: [B]\n"))
	assert.ErrorIs(t, err, ErrEmptyCatalogue)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("/nonexistent/catalogue.yaml")
	assert.Error(t, err)
}
