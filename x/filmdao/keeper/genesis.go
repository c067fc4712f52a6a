package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// InitGenesis restores the module state. Secondary indexes are rebuilt from the primary records.
func InitGenesis(ctx sdk.Context, keeper Keeper, data types.GenesisState) error {
	if err := types.ValidateGenesis(data); err != nil {
		return sdkerrors.Wrap(err, "film dao genesis")
	}
	keeper.setParams(ctx, data.Params)
	keeper.setAuditor(ctx, data.Auditor)
	if data.BaseURI != (types.BaseURI{}) {
		keeper.save(ctx, types.BaseURIKey, &data.BaseURI)
	}
	keeper.setRewardPool(ctx, data.RewardPool)
	for _, a := range data.DepositAssets {
		keeper.setDepositAsset(ctx, a)
	}
	for _, s := range data.Stakers {
		keeper.setStaker(ctx, s)
	}
	for _, p := range data.Proposals {
		keeper.setProposal(ctx, p)
		keeper.indexProposal(ctx, p)
	}
	for _, v := range data.Votes {
		keeper.setVote(ctx, v)
	}
	for _, f := range data.Films {
		keeper.setFilm(ctx, f)
	}
	for i := range data.Deposits {
		d := data.Deposits[i]
		keeper.save(ctx, types.GetDepositKey(d.FilmID, d.Seq), &d)
	}
	for _, ud := range data.UserDeposits {
		keeper.setUserDeposit(ctx, ud)
	}
	for _, m := range data.MintInfos {
		keeper.setMintInfo(ctx, m)
	}
	collections := make(map[uint64]types.Collection, len(data.Collections))
	for _, c := range data.Collections {
		keeper.setCollection(ctx, c)
		collections[c.ID] = c
	}
	owners := make(map[[2]uint64]sdk.AccAddress, len(data.Tokens))
	for _, t := range data.Tokens {
		keeper.setTokenOwner(ctx, t)
		owners[[2]uint64{t.CollectionID, t.TokenID}] = t.Owner
		if c := collections[t.CollectionID]; c.Kind == types.CollectionKindFilmNFT {
			ctx.KVStore(keeper.storeKey).Set(types.GetUserTokenKey(c.FilmID, t.Owner, t.TokenID), []byte{1})
		}
	}
	for _, t := range data.Tiers {
		keeper.setTier(ctx, t)
		for _, tokenID := range t.IssuedTokenIDs {
			owner, ok := owners[[2]uint64{t.CollectionID, tokenID}]
			if !ok {
				return types.ErrInvalidGenesis.Wrapf("film %d tier %d: token %d has no owner", t.FilmID, t.Index, tokenID)
			}
			ctx.KVStore(keeper.storeKey).Set(types.GetTierHolderKey(t.FilmID, owner), sdk.Uint64ToBigEndian(t.Index))
		}
	}
	for _, seq := range data.Sequences {
		keeper.setSequence(ctx, seq)
	}
	return nil
}

// ExportGenesis returns the complete module state
func ExportGenesis(ctx sdk.Context, keeper Keeper) types.GenesisState {
	genState := types.GenesisState{
		Params:     keeper.GetParams(ctx),
		Auditor:    keeper.GetAuditor(ctx),
		BaseURI:    keeper.GetBaseURI(ctx),
		RewardPool: keeper.GetRewardPool(ctx),
	}
	keeper.IterateDepositAssets(ctx, func(a types.DepositAsset) bool {
		genState.DepositAssets = append(genState.DepositAssets, a)
		return false
	})
	keeper.IterateStakers(ctx, func(s types.Staker) bool {
		genState.Stakers = append(genState.Stakers, s)
		return false
	})
	keeper.IterateProposals(ctx, func(p types.Proposal) bool {
		genState.Proposals = append(genState.Proposals, p)
		keeper.IterateVotes(ctx, p.ID, func(v types.VoteRecord) bool {
			genState.Votes = append(genState.Votes, v)
			return false
		})
		return false
	})
	keeper.IterateFilms(ctx, func(f types.Film) bool {
		genState.Films = append(genState.Films, f)
		genState.Deposits = append(genState.Deposits, keeper.GetDeposits(ctx, f.ID)...)
		keeper.IterateUserDeposits(ctx, f.ID, func(ud types.UserDeposit) bool {
			genState.UserDeposits = append(genState.UserDeposits, ud)
			return false
		})
		genState.Tiers = append(genState.Tiers, keeper.GetTiers(ctx, f.ID)...)
		return false
	})
	keeper.IterateMintInfos(ctx, func(m types.MintInfo) bool {
		genState.MintInfos = append(genState.MintInfos, m)
		return false
	})
	keeper.IterateCollections(ctx, func(c types.Collection) bool {
		genState.Collections = append(genState.Collections, c)
		keeper.IterateTokens(ctx, c.ID, func(t types.TokenOwner) bool {
			genState.Tokens = append(genState.Tokens, t)
			return false
		})
		return false
	})
	keeper.iterateSequences(ctx, func(seq types.Sequence) bool {
		genState.Sequences = append(genState.Sequences, seq)
		return false
	})
	return genState
}
