package preview_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func errMeta(t *testing.T, err error) map[string]any {
	t.Helper()
	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	return zErr.Metadata()
}
