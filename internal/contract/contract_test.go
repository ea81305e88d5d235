package contract

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testdataDir(t *testing.T, name string) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	return dir
}

func TestInspect_CreatureIsSealed(t *testing.T) {
	// The module itself: Creature must be closed to exactly four variants.
	report, err := Inspect(context.Background(), filepath.Join("..", ".."), "Creature", testLogger())
	require.NoError(t, err)

	assert.Equal(t, "github.com/olehluchkiv/creatures/internal/creature", report.PkgPath)
	assert.True(t, report.Sealed, "Creature must declare an unexported method")
	assert.Equal(t, []string{"Bird", "Fish", "Kangaroo", "Snake"}, report.Names())
	for _, impl := range report.Implementations {
		assert.True(t, impl.ViaPointer, impl.Name)
		assert.NotEmpty(t, impl.SourceFile)
	}
}

func TestInspect_OpenInterface(t *testing.T) {
	report, err := Inspect(context.Background(), testdataDir(t, "open_contract"), "Mover", testLogger())
	require.NoError(t, err)

	assert.False(t, report.Sealed)
	assert.Equal(t, []string{"Move"}, report.Methods)
	require.Equal(t, []string{"Bat", "Dog"}, report.Names())
	assert.True(t, report.Implementations[0].ViaPointer)
	assert.False(t, report.Implementations[1].ViaPointer)
	assert.Equal(t, "animals.go", report.Implementations[1].SourceFile)
}

func TestInspect_SealedExcludesPartialImplementations(t *testing.T) {
	report, err := Inspect(context.Background(), testdataDir(t, "sealed_contract"), "Animal", testLogger())
	require.NoError(t, err)

	assert.True(t, report.Sealed)
	assert.Equal(t, []string{"Otter"}, report.Names())
}

func TestInspect_NotFound(t *testing.T) {
	_, err := Inspect(context.Background(), testdataDir(t, "open_contract"), "Flyer", testLogger())
	require.ErrorIs(t, err, ErrInterfaceNotFound)
}
