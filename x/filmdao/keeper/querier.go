package keeper

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// query endpoints supported by the film dao querier
const (
	QueryParams       = "params"
	QueryProperty     = "property"
	QueryAuditor      = "auditor"
	QueryBaseURI      = "base_uri"
	QueryRewardPool   = "reward_pool"
	QueryStaker       = "staker"
	QueryReward       = "reward"
	QueryProposal     = "proposal"
	QueryProposalAt   = "proposal_at"
	QueryVotes        = "votes"
	QueryFilm         = "film"
	QueryFilmStatus   = "film_status"
	QueryDeposits     = "deposits"
	QueryUserDeposit  = "user_deposit"
	QueryTiers        = "tiers"
	QueryTierSupply   = "tier_supply"
	QueryTierTokens   = "tier_tokens"
	QueryTierOfHolder = "tier_of_holder"
	QueryNFTOwner     = "nft_owner"
	QueryMintInfo     = "mint_info"
	QueryUserTokens   = "user_tokens"
	QueryCollection   = "collection"
)

// QueryAddressParams selects data of an account
type QueryAddressParams struct {
	Address sdk.AccAddress `json:"address"`
}

// QueryPropertyParams selects a governable property
type QueryPropertyParams struct {
	Flag types.PropertyFlag `json:"flag"`
}

// QueryProposalAtParams selects a proposal by its governance track position
type QueryProposalAtParams struct {
	Kind  types.ProposalKind `json:"kind"`
	Flag  uint64             `json:"flag"`
	Index uint64             `json:"index"`
}

// QueryIDParams selects a proposal, film or collection by id
type QueryIDParams struct {
	ID uint64 `json:"id"`
}

// QueryFilmParams selects film data, optionally scoped to a tier, token or account
type QueryFilmParams struct {
	FilmID  uint64         `json:"film_id"`
	Tier    uint64         `json:"tier,omitempty"`
	TokenID uint64         `json:"token_id,omitempty"`
	Address sdk.AccAddress `json:"address,omitempty"`
}

// QueryTierOfHolderResponse is the tier a holder received a token in
type QueryTierOfHolderResponse struct {
	Tier  uint64 `json:"tier"`
	Found bool   `json:"found"`
}

// NewQuerier creates a new querier
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		if len(path) == 0 {
			return nil, sdkerrors.Wrap(sdkerrors.ErrUnknownRequest, "empty query path")
		}
		var (
			rsp interface{}
			err error
		)
		switch path[0] {
		case QueryParams:
			rsp = k.GetParams(ctx)
		case QueryProperty:
			var params QueryPropertyParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			rsp, err = k.GetPropertyValue(ctx, params.Flag)
		case QueryAuditor:
			rsp = k.GetAuditor(ctx)
		case QueryBaseURI:
			rsp = k.GetBaseURI(ctx)
		case QueryRewardPool:
			rsp = k.GetRewardPool(ctx)
		case QueryStaker:
			var params QueryAddressParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			s, found := k.GetStaker(ctx, params.Address)
			if !found {
				return nil, types.ErrNotStaker
			}
			rsp = s
		case QueryReward:
			var params QueryAddressParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			rsp = k.CalcReward(ctx, params.Address)
		case QueryProposal:
			var params QueryIDParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			rsp, err = k.GetProposal(ctx, params.ID)
		case QueryProposalAt:
			var params QueryProposalAtParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			rsp, err = k.GetProposalByIndex(ctx, params.Kind, params.Flag, params.Index)
		case QueryVotes:
			var params QueryIDParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			votes := make([]types.VoteRecord, 0)
			k.IterateVotes(ctx, params.ID, func(v types.VoteRecord) bool {
				votes = append(votes, v)
				return false
			})
			rsp = votes
		case QueryFilm:
			var params QueryFilmParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			rsp, err = k.GetFilm(ctx, params.FilmID)
		case QueryFilmStatus:
			var params QueryFilmParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			rsp, err = k.GetFilmStatus(ctx, params.FilmID)
		case QueryDeposits:
			var params QueryFilmParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			rsp = k.GetDeposits(ctx, params.FilmID)
		case QueryUserDeposit:
			var params QueryFilmParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			rsp = k.GetUserDeposit(ctx, params.FilmID, params.Address)
		case QueryTiers:
			var params QueryFilmParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			rsp = k.GetTiers(ctx, params.FilmID)
		case QueryTierSupply:
			var params QueryFilmParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			rsp, err = k.GetTotalSupply(ctx, params.FilmID, params.Tier)
		case QueryTierTokens:
			var params QueryFilmParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			rsp, err = k.GetTierTokenIDList(ctx, params.FilmID, params.Tier)
		case QueryTierOfHolder:
			var params QueryFilmParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			tier, found := k.GetTierOfHolder(ctx, params.FilmID, params.Address)
			rsp = QueryTierOfHolderResponse{Tier: tier, Found: found}
		case QueryNFTOwner:
			var params QueryFilmParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			rsp, err = k.GetNFTOwner(ctx, params.FilmID, params.TokenID, params.Tier)
		case QueryMintInfo:
			var params QueryFilmParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			rsp, err = k.GetMintInfo(ctx, params.FilmID)
		case QueryUserTokens:
			var params QueryFilmParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			rsp = k.GetUserTokenIDList(ctx, params.FilmID, params.Address)
		case QueryCollection:
			var params QueryIDParams
			if err := decode(legacyQuerierCdc, req, &params); err != nil {
				return nil, err
			}
			rsp, err = k.GetCollection(ctx, params.ID)
		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unknown %s query endpoint: %s", types.ModuleName, path[0])
		}
		if err != nil {
			return nil, err
		}
		bz, err := codec.MarshalJSONIndent(legacyQuerierCdc, rsp)
		if err != nil {
			return nil, sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
		}
		return bz, nil
	}
}

func decode(cdc *codec.LegacyAmino, req abci.RequestQuery, ptr interface{}) error {
	if err := cdc.UnmarshalJSON(req.Data, ptr); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}
	return nil
}
