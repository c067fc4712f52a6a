package filmdao

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cinedao/cinedao/x/filmdao/keeper"
	"github.com/cinedao/cinedao/x/filmdao/types"
)

// NewHandler returns the legacy msg router handler that dispatches messages to the keeper
func NewHandler(k keeper.Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case *types.MsgStakeVAB:
			return handleAmount(ctx, msg.Staker, msg.Amount, k.StakeVAB)
		case *types.MsgUnstakeVAB:
			return handleAmount(ctx, msg.Staker, msg.Amount, k.UnstakeVAB)
		case *types.MsgDepositVAB:
			return handleAmount(ctx, msg.Staker, msg.Amount, k.DepositVAB)
		case *types.MsgWithdrawVotingDeposit:
			return handleAmount(ctx, msg.Staker, msg.Amount, k.WithdrawVotingDeposit)
		case *types.MsgAddRewardToPool:
			return handleAmount(ctx, msg.Funder, msg.Amount, k.AddRewardToPool)
		case *types.MsgInitializePool:
			return handleAmount(ctx, msg.Auditor, msg.Amount, k.InitializePool)
		case *types.MsgClaimReward:
			staker, err := sdk.AccAddressFromBech32(msg.Staker)
			if err != nil {
				return nil, err
			}
			reward, err := k.ClaimReward(ctx, staker)
			return result(ctx, reward, err)
		case *types.MsgWithdrawAllFunds:
			return handleWithdrawAllFunds(ctx, k, msg)
		case *types.MsgSubmitProposal:
			return handleSubmitProposal(ctx, k, msg)
		case *types.MsgVote:
			return handleVote(ctx, k, msg)
		case *types.MsgFinalizeProposal:
			return handleFinalizeProposal(ctx, k, msg)
		case *types.MsgReplaceAuditor:
			replaced, err := k.ReplaceAuditor(ctx, msg.Index)
			return result(ctx, replaced, err)
		case *types.MsgProposalFilmCreate:
			studio, err := sdk.AccAddressFromBech32(msg.Studio)
			if err != nil {
				return nil, err
			}
			filmID, err := k.ProposalFilmCreate(ctx, studio, types.FundType(msg.FundType), msg.NoVote)
			return result(ctx, filmID, err)
		case *types.MsgProposalFilmUpdate:
			return handleProposalFilmUpdate(ctx, k, msg)
		case *types.MsgVoteToFilms:
			return handleVoteToFilms(ctx, k, msg)
		case *types.MsgApproveFilms:
			approved, err := k.ApproveFilms(ctx, msg.FilmIDs)
			return result(ctx, approved, err)
		case *types.MsgDepositToFilm:
			return handleDepositToFilm(ctx, k, msg)
		case *types.MsgWithdrawFunding:
			depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
			if err != nil {
				return nil, err
			}
			refund, err := k.WithdrawFunding(ctx, depositor, msg.FilmID)
			return result(ctx, refund, err)
		case *types.MsgFundProcess:
			studio, err := sdk.AccAddressFromBech32(msg.Studio)
			if err != nil {
				return nil, err
			}
			raised, err := k.FundProcess(ctx, studio, msg.FilmID)
			return result(ctx, raised, err)
		case *types.MsgDeployFilmNFTContract:
			studio, err := sdk.AccAddressFromBech32(msg.Studio)
			if err != nil {
				return nil, err
			}
			collectionID, err := k.DeployFilmNFTContract(ctx, studio, msg.FilmID, msg.Name, msg.Symbol)
			return result(ctx, collectionID, err)
		case *types.MsgSetMintInfo:
			return handleSetMintInfo(ctx, k, msg)
		case *types.MsgMint:
			return handleMint(ctx, k, msg)
		case *types.MsgMintToBatch:
			return handleMintToBatch(ctx, k, msg)
		case *types.MsgSetTierInfo:
			return handleSetTierInfo(ctx, k, msg)
		case *types.MsgDeployTierNFTContract:
			studio, err := sdk.AccAddressFromBech32(msg.Studio)
			if err != nil {
				return nil, err
			}
			collectionID, err := k.DeployTierNFTContract(ctx, studio, msg.FilmID, msg.Tier, msg.Name, msg.Symbol)
			return result(ctx, collectionID, err)
		case *types.MsgMintTierNft:
			caller, err := sdk.AccAddressFromBech32(msg.Sender)
			if err != nil {
				return nil, err
			}
			token, err := k.MintTierNft(ctx, caller, msg.FilmID)
			return result(ctx, token, err)
		case *types.MsgSetBaseURI:
			auditor, err := sdk.AccAddressFromBech32(msg.Auditor)
			if err != nil {
				return nil, err
			}
			return result(ctx, nil, k.SetBaseURI(ctx, auditor, msg.BaseURI, msg.CollectionURI))
		case *types.MsgAddDepositAsset:
			auditor, err := sdk.AccAddressFromBech32(msg.Auditor)
			if err != nil {
				return nil, err
			}
			return result(ctx, nil, k.AddDepositAsset(ctx, auditor, msg.Denom, msg.Decimals))
		case *types.MsgUpdatePropertyForTesting:
			auditor, err := sdk.AccAddressFromBech32(msg.Auditor)
			if err != nil {
				return nil, err
			}
			return result(ctx, nil, k.UpdatePropertyForTesting(ctx, auditor, msg.Value, types.PropertyFlag(msg.Flag)))
		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
		}
	}
}

// result wraps the amino json of data and the emitted events. A nil data is omitted.
func result(ctx sdk.Context, data interface{}, err error) (*sdk.Result, error) {
	if err != nil {
		return nil, err
	}
	res := &sdk.Result{Events: ctx.EventManager().ABCIEvents()}
	if data != nil {
		bz, err := types.ModuleCdc.MarshalJSON(data)
		if err != nil {
			return nil, sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
		}
		res.Data = bz
	}
	return res, nil
}

func handleAmount(ctx sdk.Context, addr, amount string, op func(sdk.Context, sdk.AccAddress, sdk.Int) error) (*sdk.Result, error) {
	sender, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		return nil, err
	}
	amt, err := types.ParseAmount("amount", amount)
	if err != nil {
		return nil, err
	}
	return result(ctx, nil, op(ctx, sender, amt))
}

func handleWithdrawAllFunds(ctx sdk.Context, k keeper.Keeper, msg *types.MsgWithdrawAllFunds) (*sdk.Result, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, err
	}
	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, err
	}
	withdrawn, err := k.WithdrawAllFunds(ctx, sender, recipient)
	return result(ctx, withdrawn, err)
}

func handleSubmitProposal(ctx sdk.Context, k keeper.Keeper, msg *types.MsgSubmitProposal) (*sdk.Result, error) {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, err
	}
	var p types.Proposal
	switch kind := types.ProposalKind(msg.Kind); kind {
	case types.ProposalKindProperty:
		p, err = k.ProposalProperty(ctx, creator, types.PropertyFlag(msg.Flag), msg.Value, msg.Title, msg.Description)
	case types.ProposalKindAuditor, types.ProposalKindRewardFund:
		target, addrErr := sdk.AccAddressFromBech32(msg.Target)
		if addrErr != nil {
			return nil, types.ErrInvalidAddress.Wrapf("target: %s", addrErr)
		}
		if kind == types.ProposalKindAuditor {
			p, err = k.ProposalAuditor(ctx, creator, target, msg.Title, msg.Description)
		} else {
			p, err = k.ProposalRewardFund(ctx, creator, target, msg.Title, msg.Description)
		}
	default:
		return nil, types.ErrInvalidKind.Wrapf("%d", msg.Kind)
	}
	return result(ctx, p, err)
}

func handleVote(ctx sdk.Context, k keeper.Keeper, msg *types.MsgVote) (*sdk.Result, error) {
	voter, err := sdk.AccAddressFromBech32(msg.Voter)
	if err != nil {
		return nil, err
	}
	choice := types.VoteChoice(msg.Choice)
	switch types.ProposalKind(msg.Kind) {
	case types.ProposalKindProperty:
		err = k.VoteToProperty(ctx, voter, msg.Index, types.PropertyFlag(msg.Flag), choice)
	case types.ProposalKindAuditor:
		err = k.VoteToAgent(ctx, voter, msg.Index, choice)
	case types.ProposalKindRewardFund:
		err = k.VoteToRewardFund(ctx, voter, msg.Index, choice)
	default:
		return nil, types.ErrInvalidKind.Wrapf("%d", msg.Kind)
	}
	return result(ctx, nil, err)
}

func handleFinalizeProposal(ctx sdk.Context, k keeper.Keeper, msg *types.MsgFinalizeProposal) (*sdk.Result, error) {
	var (
		approved bool
		err      error
	)
	switch types.ProposalKind(msg.Kind) {
	case types.ProposalKindProperty:
		approved, err = k.UpdateProperty(ctx, msg.Index, types.PropertyFlag(msg.Flag))
	case types.ProposalKindAuditor:
		approved, err = k.FinalizeAuditorVote(ctx, msg.Index)
	case types.ProposalKindRewardFund:
		approved, err = k.SetRewardFundAddress(ctx, msg.Index)
	default:
		return nil, types.ErrInvalidKind.Wrapf("%d", msg.Kind)
	}
	return result(ctx, approved, err)
}

func handleProposalFilmUpdate(ctx sdk.Context, k keeper.Keeper, msg *types.MsgProposalFilmUpdate) (*sdk.Result, error) {
	studio, err := sdk.AccAddressFromBech32(msg.Studio)
	if err != nil {
		return nil, err
	}
	terms, err := msg.Terms()
	if err != nil {
		return nil, err
	}
	return result(ctx, nil, k.ProposalFilmUpdate(ctx, studio, msg.FilmID, terms))
}

func handleVoteToFilms(ctx sdk.Context, k keeper.Keeper, msg *types.MsgVoteToFilms) (*sdk.Result, error) {
	voter, err := sdk.AccAddressFromBech32(msg.Voter)
	if err != nil {
		return nil, err
	}
	choices := make([]types.VoteChoice, len(msg.Choices))
	for i, c := range msg.Choices {
		choices[i] = types.VoteChoice(c)
	}
	return result(ctx, nil, k.VoteToFilms(ctx, voter, msg.FilmIDs, choices))
}

func handleDepositToFilm(ctx sdk.Context, k keeper.Keeper, msg *types.MsgDepositToFilm) (*sdk.Result, error) {
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, err
	}
	amount, err := types.ParseAmount("amount", msg.Amount)
	if err != nil {
		return nil, err
	}
	normalized, err := k.DepositToFilm(ctx, depositor, msg.FilmID, amount, msg.Denom)
	return result(ctx, normalized, err)
}

func handleSetMintInfo(ctx sdk.Context, k keeper.Keeper, msg *types.MsgSetMintInfo) (*sdk.Result, error) {
	studio, err := sdk.AccAddressFromBech32(msg.Studio)
	if err != nil {
		return nil, err
	}
	price, err := types.ParseAmount("mint price", msg.MintPrice)
	if err != nil {
		return nil, err
	}
	err = k.SetMintInfo(ctx, studio, msg.FilmID, msg.Tier, msg.MaxMintAmount, price,
		types.Percent(msg.FeePercent), types.Percent(msg.RevenuePercent))
	return result(ctx, nil, err)
}

func handleMint(ctx sdk.Context, k keeper.Keeper, msg *types.MsgMint) (*sdk.Result, error) {
	caller, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, err
	}
	payTo, err := sdk.AccAddressFromBech32(msg.PayTo)
	if err != nil {
		return nil, err
	}
	tokenID, err := k.Mint(ctx, caller, msg.FilmID, payTo, msg.Denom)
	return result(ctx, tokenID, err)
}

func handleMintToBatch(ctx sdk.Context, k keeper.Keeper, msg *types.MsgMintToBatch) (*sdk.Result, error) {
	caller, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, err
	}
	payees := make([]sdk.AccAddress, len(msg.Payees))
	for i, p := range msg.Payees {
		if payees[i], err = sdk.AccAddressFromBech32(p); err != nil {
			return nil, types.ErrInvalidAddress.Wrapf("payee %d: %s", i, err)
		}
	}
	tokenIDs, err := k.MintToBatch(ctx, caller, msg.FilmIDs, payees, msg.Denom)
	return result(ctx, tokenIDs, err)
}

func handleSetTierInfo(ctx sdk.Context, k keeper.Keeper, msg *types.MsgSetTierInfo) (*sdk.Result, error) {
	studio, err := sdk.AccAddressFromBech32(msg.Studio)
	if err != nil {
		return nil, err
	}
	mins, err := types.ParseAmounts("min amount", msg.MinAmounts)
	if err != nil {
		return nil, err
	}
	maxs, err := types.ParseAmounts("max amount", msg.MaxAmounts)
	if err != nil {
		return nil, err
	}
	return result(ctx, nil, k.SetTierInfo(ctx, studio, msg.FilmID, mins, maxs))
}
