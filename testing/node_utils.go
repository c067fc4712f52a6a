package testing

import (
	"path/filepath"
	"testing"

	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/privval"
)

// loadValidatorPubKey loads the node consensus pub key from disk
func loadValidatorPubKey(t *testing.T, sut *SystemUnderTest) cryptotypes.PubKey {
	keyFile := filepath.Join(workDir, sut.nodeHome(), "config", "priv_validator_key.json")
	filePV := privval.LoadFilePVEmptyState(keyFile, "")
	pubKey, err := filePV.GetPubKey()
	require.NoError(t, err)
	valPubKey, err := cryptocodec.FromTmPubKeyInterface(pubKey)
	require.NoError(t, err)
	return valPubKey
}
