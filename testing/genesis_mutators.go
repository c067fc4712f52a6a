package testing

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"
)

// GenesisMutator modifies the raw genesis file content
type GenesisMutator func([]byte) []byte

// SetFilmDAOParam sets a film dao property in genesis. Amino encodes the uint64
// values as strings.
func SetFilmDAOParam(t *testing.T, jsonName string, value uint64) GenesisMutator {
	return func(genesis []byte) []byte {
		t.Helper()
		state, err := sjson.SetBytes(genesis, "app_state.filmdao.params."+jsonName, strconv.FormatUint(value, 10))
		require.NoError(t, err)
		return state
	}
}

// RemoveFilmDAOAuditor removes the dao administrator from genesis
func RemoveFilmDAOAuditor(t *testing.T) GenesisMutator {
	return func(genesis []byte) []byte {
		t.Helper()
		state, err := sjson.DeleteBytes(genesis, "app_state.filmdao.auditor")
		require.NoError(t, err)
		return state
	}
}
