package simulation

// DONTCOVER

import (
	"fmt"
	"math/rand"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/cosmos/cosmos-sdk/x/simulation"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

const day = 24 * 60 * 60

// GenVotePeriod randomized vote period in seconds
func GenVotePeriod(r *rand.Rand) uint64 {
	return uint64(simtypes.RandIntBetween(r, 60, 30*day))
}

// GenQuorumPercent randomized quorum between 1% and 60%
func GenQuorumPercent(r *rand.Rand) uint64 {
	return uint64(types.NewPercent(uint64(simtypes.RandIntBetween(r, 1, 61))))
}

// GenMinVoteCount randomized minimum number of voters
func GenMinVoteCount(r *rand.Rand) uint64 {
	return uint64(simtypes.RandIntBetween(r, 1, 10))
}

// RandomizedGenState generates a random GenesisState for the film dao. The first
// simulation account is the auditor.
func RandomizedGenState(simState *module.SimulationState) {
	params := types.DefaultParams()
	simState.AppParams.GetOrGenerate(simState.Cdc, string(types.KeyFilmVotePeriod), &params.FilmVotePeriod, simState.Rand,
		func(r *rand.Rand) { params.FilmVotePeriod = GenVotePeriod(r) })
	simState.AppParams.GetOrGenerate(simState.Cdc, string(types.KeyPropertyVotePeriod), &params.PropertyVotePeriod, simState.Rand,
		func(r *rand.Rand) { params.PropertyVotePeriod = GenVotePeriod(r) })
	simState.AppParams.GetOrGenerate(simState.Cdc, string(types.KeyQuorumPercent), &params.QuorumPercent, simState.Rand,
		func(r *rand.Rand) { params.QuorumPercent = GenQuorumPercent(r) })
	simState.AppParams.GetOrGenerate(simState.Cdc, string(types.KeyMinVoteCount), &params.MinVoteCount, simState.Rand,
		func(r *rand.Rand) { params.MinVoteCount = GenMinVoteCount(r) })
	params.StakingDenom = sdk.DefaultBondDenom

	genState := types.DefaultGenesisState()
	genState.Params = params
	if len(simState.Accounts) != 0 {
		genState.Auditor = simState.Accounts[0].Address
	}
	fmt.Printf("Selected randomly generated film dao parameters:\n%s\n", params)
	simState.GenState[types.ModuleName] = types.ModuleCdc.MustMarshalJSON(genState)
}

// ParamChanges defines the parameters that can be modified by param change proposals
// on the simulation
func ParamChanges(r *rand.Rand) []simtypes.ParamChange {
	return []simtypes.ParamChange{
		simulation.NewSimParamChange(types.ModuleName, string(types.KeyFilmVotePeriod),
			func(r *rand.Rand) string {
				return fmt.Sprintf("\"%d\"", GenVotePeriod(r))
			},
		),
		simulation.NewSimParamChange(types.ModuleName, string(types.KeyQuorumPercent),
			func(r *rand.Rand) string {
				return fmt.Sprintf("\"%d\"", GenQuorumPercent(r))
			},
		),
		simulation.NewSimParamChange(types.ModuleName, string(types.KeyMinVoteCount),
			func(r *rand.Rand) string {
				return fmt.Sprintf("\"%d\"", GenMinVoteCount(r))
			},
		),
	}
}
