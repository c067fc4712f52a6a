package cli

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/rand"

	"github.com/cinedao/cinedao/x/filmdao/keeper"
	"github.com/cinedao/cinedao/x/filmdao/types"
)

func TestParseFilmParams(t *testing.T) {
	addr := sdk.AccAddress(rand.Bytes(20))
	specs := map[string]struct {
		args   []string
		exp    keeper.QueryFilmParams
		expErr bool
	}{
		"film id": {
			args: []string{"7"},
			exp:  keeper.QueryFilmParams{FilmID: 7},
		},
		"film id and address": {
			args: []string{"7", addr.String()},
			exp:  keeper.QueryFilmParams{FilmID: 7, Address: addr},
		},
		"invalid id": {
			args:   []string{"seven"},
			expErr: true,
		},
		"negative id": {
			args:   []string{"-1"},
			expErr: true,
		},
		"invalid address": {
			args:   []string{"7", "not-an-address"},
			expErr: true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			got, gotErr := parseFilmParams(spec.args)
			if spec.expErr {
				require.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.exp, got)
		})
	}
}

func TestProposalKindFromString(t *testing.T) {
	specs := map[string]struct {
		src    string
		exp    types.ProposalKind
		expErr bool
	}{
		"property":    {src: "property", exp: types.ProposalKindProperty},
		"auditor":     {src: "auditor", exp: types.ProposalKindAuditor},
		"reward fund": {src: "reward_fund", exp: types.ProposalKindRewardFund},
		"film":        {src: "film", exp: types.ProposalKindFilm},
		"undefined":   {src: "undefined", expErr: true},
		"unknown":     {src: "foo", expErr: true},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			got, gotErr := proposalKindFromString(spec.src)
			if spec.expErr {
				require.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.exp, got)
		})
	}
}

func TestGetQueryCmdRegistersCommands(t *testing.T) {
	cmd := GetQueryCmd()
	for _, use := range []string{"params", "property", "proposal-at", "film", "tier-supply", "nft-owner"} {
		sub, _, err := cmd.Find([]string{use})
		require.NoError(t, err, use)
		assert.Equal(t, use, sub.Name())
	}
	tierCmd, _, err := cmd.Find([]string{"tier-tokens"})
	require.NoError(t, err)
	tier, err := tierCmd.Flags().GetUint64(FlagTier)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), tier)
}
