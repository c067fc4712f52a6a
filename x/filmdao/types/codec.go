package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// ModuleCdc encodes the module state, genesis and the amino json of messages
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}
