package types

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	TypeMsgStakeVAB                 = "stake_vab"
	TypeMsgUnstakeVAB               = "unstake_vab"
	TypeMsgDepositVAB               = "deposit_vab"
	TypeMsgWithdrawVotingDeposit    = "withdraw_voting_deposit"
	TypeMsgClaimReward              = "claim_reward"
	TypeMsgAddRewardToPool          = "add_reward_to_pool"
	TypeMsgWithdrawAllFunds         = "withdraw_all_funds"
	TypeMsgSubmitProposal           = "submit_proposal"
	TypeMsgVote                     = "vote"
	TypeMsgFinalizeProposal         = "finalize_proposal"
	TypeMsgReplaceAuditor           = "replace_auditor"
	TypeMsgProposalFilmCreate       = "proposal_film_create"
	TypeMsgProposalFilmUpdate       = "proposal_film_update"
	TypeMsgVoteToFilms              = "vote_to_films"
	TypeMsgApproveFilms             = "approve_films"
	TypeMsgDepositToFilm            = "deposit_to_film"
	TypeMsgWithdrawFunding          = "withdraw_funding"
	TypeMsgFundProcess              = "fund_process"
	TypeMsgDeployFilmNFTContract    = "deploy_film_nft_contract"
	TypeMsgSetMintInfo              = "set_mint_info"
	TypeMsgMint                     = "mint"
	TypeMsgMintToBatch              = "mint_to_batch"
	TypeMsgSetTierInfo              = "set_tier_info"
	TypeMsgDeployTierNFTContract    = "deploy_tier_nft_contract"
	TypeMsgMintTierNft              = "mint_tier_nft"
	TypeMsgSetBaseURI               = "set_base_uri"
	TypeMsgInitializePool           = "initialize_pool"
	TypeMsgAddDepositAsset          = "add_deposit_asset"
	TypeMsgUpdatePropertyForTesting = "update_property_for_testing"
)

var (
	_ sdk.Msg = &MsgStakeVAB{}
	_ sdk.Msg = &MsgUnstakeVAB{}
	_ sdk.Msg = &MsgDepositVAB{}
	_ sdk.Msg = &MsgWithdrawVotingDeposit{}
	_ sdk.Msg = &MsgClaimReward{}
	_ sdk.Msg = &MsgAddRewardToPool{}
	_ sdk.Msg = &MsgWithdrawAllFunds{}
	_ sdk.Msg = &MsgSubmitProposal{}
	_ sdk.Msg = &MsgVote{}
	_ sdk.Msg = &MsgFinalizeProposal{}
	_ sdk.Msg = &MsgReplaceAuditor{}
	_ sdk.Msg = &MsgProposalFilmCreate{}
	_ sdk.Msg = &MsgProposalFilmUpdate{}
	_ sdk.Msg = &MsgVoteToFilms{}
	_ sdk.Msg = &MsgApproveFilms{}
	_ sdk.Msg = &MsgDepositToFilm{}
	_ sdk.Msg = &MsgWithdrawFunding{}
	_ sdk.Msg = &MsgFundProcess{}
	_ sdk.Msg = &MsgDeployFilmNFTContract{}
	_ sdk.Msg = &MsgSetMintInfo{}
	_ sdk.Msg = &MsgMint{}
	_ sdk.Msg = &MsgMintToBatch{}
	_ sdk.Msg = &MsgSetTierInfo{}
	_ sdk.Msg = &MsgDeployTierNFTContract{}
	_ sdk.Msg = &MsgMintTierNft{}
	_ sdk.Msg = &MsgSetBaseURI{}
	_ sdk.Msg = &MsgInitializePool{}
	_ sdk.Msg = &MsgAddDepositAsset{}
	_ sdk.Msg = &MsgUpdatePropertyForTesting{}
)

// MsgStakeVAB locks staking tokens as vote weight
type MsgStakeVAB struct {
	Staker string `protobuf:"bytes,1,opt,name=staker,proto3" json:"staker" yaml:"staker"`
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount" yaml:"amount"`
}

func (msg MsgStakeVAB) Route() string { return RouterKey }

func (msg MsgStakeVAB) Type() string { return TypeMsgStakeVAB }

func (msg MsgStakeVAB) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Staker)
}

func (msg MsgStakeVAB) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgStakeVAB) ValidateBasic() error {
	if err := validateAddress("staker", msg.Staker); err != nil {
		return err
	}
	return validateAmount(msg.Amount)
}

// MsgUnstakeVAB releases staked tokens after the lock period
type MsgUnstakeVAB struct {
	Staker string `protobuf:"bytes,1,opt,name=staker,proto3" json:"staker" yaml:"staker"`
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount" yaml:"amount"`
}

func (msg MsgUnstakeVAB) Route() string { return RouterKey }

func (msg MsgUnstakeVAB) Type() string { return TypeMsgUnstakeVAB }

func (msg MsgUnstakeVAB) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Staker)
}

func (msg MsgUnstakeVAB) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgUnstakeVAB) ValidateBasic() error {
	if err := validateAddress("staker", msg.Staker); err != nil {
		return err
	}
	return validateAmount(msg.Amount)
}

// MsgDepositVAB adds a voting deposit to the vote weight of a staker
type MsgDepositVAB struct {
	Staker string `protobuf:"bytes,1,opt,name=staker,proto3" json:"staker" yaml:"staker"`
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount" yaml:"amount"`
}

func (msg MsgDepositVAB) Route() string { return RouterKey }

func (msg MsgDepositVAB) Type() string { return TypeMsgDepositVAB }

func (msg MsgDepositVAB) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Staker)
}

func (msg MsgDepositVAB) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgDepositVAB) ValidateBasic() error {
	if err := validateAddress("staker", msg.Staker); err != nil {
		return err
	}
	return validateAmount(msg.Amount)
}

type MsgWithdrawVotingDeposit struct {
	Staker string `protobuf:"bytes,1,opt,name=staker,proto3" json:"staker" yaml:"staker"`
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount" yaml:"amount"`
}

func (msg MsgWithdrawVotingDeposit) Route() string { return RouterKey }

func (msg MsgWithdrawVotingDeposit) Type() string { return TypeMsgWithdrawVotingDeposit }

func (msg MsgWithdrawVotingDeposit) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Staker)
}

func (msg MsgWithdrawVotingDeposit) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgWithdrawVotingDeposit) ValidateBasic() error {
	if err := validateAddress("staker", msg.Staker); err != nil {
		return err
	}
	return validateAmount(msg.Amount)
}

type MsgClaimReward struct {
	Staker string `protobuf:"bytes,1,opt,name=staker,proto3" json:"staker" yaml:"staker"`
}

func (msg MsgClaimReward) Route() string { return RouterKey }

func (msg MsgClaimReward) Type() string { return TypeMsgClaimReward }

func (msg MsgClaimReward) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Staker)
}

func (msg MsgClaimReward) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgClaimReward) ValidateBasic() error {
	return validateAddress("staker", msg.Staker)
}

// MsgAddRewardToPool tops up the staking reward pool
type MsgAddRewardToPool struct {
	Funder string `protobuf:"bytes,1,opt,name=funder,proto3" json:"funder" yaml:"funder"`
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount" yaml:"amount"`
}

func (msg MsgAddRewardToPool) Route() string { return RouterKey }

func (msg MsgAddRewardToPool) Type() string { return TypeMsgAddRewardToPool }

func (msg MsgAddRewardToPool) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Funder)
}

func (msg MsgAddRewardToPool) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgAddRewardToPool) ValidateBasic() error {
	if err := validateAddress("funder", msg.Funder); err != nil {
		return err
	}
	return validateAmount(msg.Amount)
}

// MsgWithdrawAllFunds empties the reward pool to the recipient
type MsgWithdrawAllFunds struct {
	Sender    string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	Recipient string `protobuf:"bytes,2,opt,name=recipient,proto3" json:"recipient" yaml:"recipient"`
}

func (msg MsgWithdrawAllFunds) Route() string { return RouterKey }

func (msg MsgWithdrawAllFunds) Type() string { return TypeMsgWithdrawAllFunds }

func (msg MsgWithdrawAllFunds) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Sender)
}

func (msg MsgWithdrawAllFunds) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgWithdrawAllFunds) ValidateBasic() error {
	if err := validateAddress("sender", msg.Sender); err != nil {
		return err
	}
	return validateAddress("recipient", msg.Recipient)
}

// MsgSubmitProposal opens a property, auditor or reward fund proposal.
// Target is the auditor candidate or the reward fund address, Flag and Value the property change.
type MsgSubmitProposal struct {
	Creator     string `protobuf:"bytes,1,opt,name=creator,proto3" json:"creator" yaml:"creator"`
	Kind        uint32 `protobuf:"varint,2,opt,name=kind,proto3" json:"kind" yaml:"kind"`
	Flag        uint64 `protobuf:"varint,3,opt,name=flag,proto3" json:"flag" yaml:"flag"`
	Value       uint64 `protobuf:"varint,4,opt,name=value,proto3" json:"value" yaml:"value"`
	Target      string `protobuf:"bytes,5,opt,name=target,proto3" json:"target" yaml:"target"`
	Title       string `protobuf:"bytes,6,opt,name=title,proto3" json:"title" yaml:"title"`
	Description string `protobuf:"bytes,7,opt,name=description,proto3" json:"description" yaml:"description"`
}

func (msg MsgSubmitProposal) Route() string { return RouterKey }

func (msg MsgSubmitProposal) Type() string { return TypeMsgSubmitProposal }

func (msg MsgSubmitProposal) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Creator)
}

func (msg MsgSubmitProposal) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgSubmitProposal) ValidateBasic() error {
	if err := validateAddress("creator", msg.Creator); err != nil {
		return err
	}
	switch ProposalKind(msg.Kind) {
	case ProposalKindProperty:
		if err := PropertyFlag(msg.Flag).ValidateValue(msg.Value); err != nil {
			return err
		}
	case ProposalKindAuditor, ProposalKindRewardFund:
		if err := validateAddress("target", msg.Target); err != nil {
			return err
		}
	default:
		return ErrInvalidKind.Wrapf("%d", msg.Kind)
	}
	return ValidateProposalText(msg.Title, msg.Description)
}

// MsgVote casts a vote on a property, auditor or reward fund proposal
type MsgVote struct {
	Voter  string `protobuf:"bytes,1,opt,name=voter,proto3" json:"voter" yaml:"voter"`
	Kind   uint32 `protobuf:"varint,2,opt,name=kind,proto3" json:"kind" yaml:"kind"`
	Flag   uint64 `protobuf:"varint,3,opt,name=flag,proto3" json:"flag" yaml:"flag"`
	Index  uint64 `protobuf:"varint,4,opt,name=index,proto3" json:"index" yaml:"index"`
	Choice uint32 `protobuf:"varint,5,opt,name=choice,proto3" json:"choice" yaml:"choice"`
}

func (msg MsgVote) Route() string { return RouterKey }

func (msg MsgVote) Type() string { return TypeMsgVote }

func (msg MsgVote) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Voter)
}

func (msg MsgVote) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgVote) ValidateBasic() error {
	if err := validateAddress("voter", msg.Voter); err != nil {
		return err
	}
	if err := validateGovernanceKind(msg.Kind, msg.Flag); err != nil {
		return err
	}
	return VoteChoice(msg.Choice).ValidateBasic()
}

// MsgFinalizeProposal tallies a property, auditor or reward fund proposal after its vote period
type MsgFinalizeProposal struct {
	Sender string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	Kind   uint32 `protobuf:"varint,2,opt,name=kind,proto3" json:"kind" yaml:"kind"`
	Flag   uint64 `protobuf:"varint,3,opt,name=flag,proto3" json:"flag" yaml:"flag"`
	Index  uint64 `protobuf:"varint,4,opt,name=index,proto3" json:"index" yaml:"index"`
}

func (msg MsgFinalizeProposal) Route() string { return RouterKey }

func (msg MsgFinalizeProposal) Type() string { return TypeMsgFinalizeProposal }

func (msg MsgFinalizeProposal) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Sender)
}

func (msg MsgFinalizeProposal) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgFinalizeProposal) ValidateBasic() error {
	if err := validateAddress("sender", msg.Sender); err != nil {
		return err
	}
	return validateGovernanceKind(msg.Kind, msg.Flag)
}

// MsgReplaceAuditor installs an approved auditor candidate after the dispute grace period
type MsgReplaceAuditor struct {
	Sender string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	Index  uint64 `protobuf:"varint,2,opt,name=index,proto3" json:"index" yaml:"index"`
}

func (msg MsgReplaceAuditor) Route() string { return RouterKey }

func (msg MsgReplaceAuditor) Type() string { return TypeMsgReplaceAuditor }

func (msg MsgReplaceAuditor) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Sender)
}

func (msg MsgReplaceAuditor) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgReplaceAuditor) ValidateBasic() error {
	return validateAddress("sender", msg.Sender)
}

// MsgProposalFilmCreate lists a new film of the sender
type MsgProposalFilmCreate struct {
	Studio   string `protobuf:"bytes,1,opt,name=studio,proto3" json:"studio" yaml:"studio"`
	FundType uint32 `protobuf:"varint,2,opt,name=fund_type,json=fundType,proto3" json:"fund_type" yaml:"fund_type"`
	NoVote   bool   `protobuf:"varint,3,opt,name=no_vote,json=noVote,proto3" json:"no_vote" yaml:"no_vote"`
}

func (msg MsgProposalFilmCreate) Route() string { return RouterKey }

func (msg MsgProposalFilmCreate) Type() string { return TypeMsgProposalFilmCreate }

func (msg MsgProposalFilmCreate) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Studio)
}

func (msg MsgProposalFilmCreate) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgProposalFilmCreate) ValidateBasic() error {
	if err := validateAddress("studio", msg.Studio); err != nil {
		return err
	}
	return FundType(msg.FundType).ValidateBasic()
}

// MsgProposalFilmUpdate completes the terms of a listed film
type MsgProposalFilmUpdate struct {
	Studio        string   `protobuf:"bytes,1,opt,name=studio,proto3" json:"studio" yaml:"studio"`
	FilmID        uint64   `protobuf:"varint,2,opt,name=film_id,json=filmId,proto3" json:"film_id" yaml:"film_id"`
	Title         string   `protobuf:"bytes,3,opt,name=title,proto3" json:"title" yaml:"title"`
	Description   string   `protobuf:"bytes,4,opt,name=description,proto3" json:"description" yaml:"description"`
	SharePercents []uint64 `protobuf:"varint,5,rep,packed,name=share_percents,json=sharePercents,proto3" json:"share_percents" yaml:"share_percents"`
	Payees        []string `protobuf:"bytes,6,rep,name=payees,proto3" json:"payees" yaml:"payees"`
	RaiseAmount   string   `protobuf:"bytes,7,opt,name=raise_amount,json=raiseAmount,proto3" json:"raise_amount" yaml:"raise_amount"`
	FundPeriod    uint64   `protobuf:"varint,8,opt,name=fund_period,json=fundPeriod,proto3" json:"fund_period" yaml:"fund_period"`
	EnableClaimer bool     `protobuf:"varint,9,opt,name=enable_claimer,json=enableClaimer,proto3" json:"enable_claimer" yaml:"enable_claimer"`
}

func (msg MsgProposalFilmUpdate) Route() string { return RouterKey }

func (msg MsgProposalFilmUpdate) Type() string { return TypeMsgProposalFilmUpdate }

func (msg MsgProposalFilmUpdate) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Studio)
}

func (msg MsgProposalFilmUpdate) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgProposalFilmUpdate) ValidateBasic() error {
	if err := validateAddress("studio", msg.Studio); err != nil {
		return err
	}
	if msg.FilmID == 0 {
		return ErrFilmNotFound.Wrap("film id")
	}
	terms, err := msg.Terms()
	if err != nil {
		return err
	}
	// the fund type is only known on chain
	return terms.ValidateBasic(FundTypeListing)
}

type MsgVoteToFilms struct {
	Voter   string   `protobuf:"bytes,1,opt,name=voter,proto3" json:"voter" yaml:"voter"`
	FilmIDs []uint64 `protobuf:"varint,2,rep,packed,name=film_ids,json=filmIds,proto3" json:"film_ids" yaml:"film_ids"`
	Choices []uint32 `protobuf:"varint,3,rep,packed,name=choices,proto3" json:"choices" yaml:"choices"`
}

func (msg MsgVoteToFilms) Route() string { return RouterKey }

func (msg MsgVoteToFilms) Type() string { return TypeMsgVoteToFilms }

func (msg MsgVoteToFilms) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Voter)
}

func (msg MsgVoteToFilms) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgVoteToFilms) ValidateBasic() error {
	if err := validateAddress("voter", msg.Voter); err != nil {
		return err
	}
	if err := validateBatch(msg.FilmIDs); err != nil {
		return err
	}
	if len(msg.FilmIDs) != len(msg.Choices) {
		return ErrLengthMismatch.Wrap("film ids and choices")
	}
	for _, c := range msg.Choices {
		if err := VoteChoice(c).ValidateBasic(); err != nil {
			return err
		}
	}
	return nil
}

// MsgApproveFilms tallies the film votes after their vote period
type MsgApproveFilms struct {
	Sender  string   `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	FilmIDs []uint64 `protobuf:"varint,2,rep,packed,name=film_ids,json=filmIds,proto3" json:"film_ids" yaml:"film_ids"`
}

func (msg MsgApproveFilms) Route() string { return RouterKey }

func (msg MsgApproveFilms) Type() string { return TypeMsgApproveFilms }

func (msg MsgApproveFilms) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Sender)
}

func (msg MsgApproveFilms) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgApproveFilms) ValidateBasic() error {
	if err := validateAddress("sender", msg.Sender); err != nil {
		return err
	}
	return validateBatch(msg.FilmIDs)
}

// MsgDepositToFilm backs a funding film with an allowed asset
type MsgDepositToFilm struct {
	Depositor string `protobuf:"bytes,1,opt,name=depositor,proto3" json:"depositor" yaml:"depositor"`
	FilmID    uint64 `protobuf:"varint,2,opt,name=film_id,json=filmId,proto3" json:"film_id" yaml:"film_id"`
	Amount    string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount" yaml:"amount"`
	Denom     string `protobuf:"bytes,4,opt,name=denom,proto3" json:"denom" yaml:"denom"`
}

func (msg MsgDepositToFilm) Route() string { return RouterKey }

func (msg MsgDepositToFilm) Type() string { return TypeMsgDepositToFilm }

func (msg MsgDepositToFilm) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Depositor)
}

func (msg MsgDepositToFilm) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgDepositToFilm) ValidateBasic() error {
	if err := validateAddress("depositor", msg.Depositor); err != nil {
		return err
	}
	if msg.FilmID == 0 {
		return ErrFilmNotFound.Wrap("film id")
	}
	if err := validateAmount(msg.Amount); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrAssetNotAllowed.Wrap(err.Error())
	}
	return nil
}

type MsgWithdrawFunding struct {
	Depositor string `protobuf:"bytes,1,opt,name=depositor,proto3" json:"depositor" yaml:"depositor"`
	FilmID    uint64 `protobuf:"varint,2,opt,name=film_id,json=filmId,proto3" json:"film_id" yaml:"film_id"`
}

func (msg MsgWithdrawFunding) Route() string { return RouterKey }

func (msg MsgWithdrawFunding) Type() string { return TypeMsgWithdrawFunding }

func (msg MsgWithdrawFunding) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Depositor)
}

func (msg MsgWithdrawFunding) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgWithdrawFunding) ValidateBasic() error {
	if err := validateAddress("depositor", msg.Depositor); err != nil {
		return err
	}
	if msg.FilmID == 0 {
		return ErrFilmNotFound.Wrap("film id")
	}
	return nil
}

type MsgFundProcess struct {
	Studio string `protobuf:"bytes,1,opt,name=studio,proto3" json:"studio" yaml:"studio"`
	FilmID uint64 `protobuf:"varint,2,opt,name=film_id,json=filmId,proto3" json:"film_id" yaml:"film_id"`
}

func (msg MsgFundProcess) Route() string { return RouterKey }

func (msg MsgFundProcess) Type() string { return TypeMsgFundProcess }

func (msg MsgFundProcess) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Studio)
}

func (msg MsgFundProcess) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgFundProcess) ValidateBasic() error {
	if err := validateAddress("studio", msg.Studio); err != nil {
		return err
	}
	if msg.FilmID == 0 {
		return ErrFilmNotFound.Wrap("film id")
	}
	return nil
}

type MsgDeployFilmNFTContract struct {
	Studio string `protobuf:"bytes,1,opt,name=studio,proto3" json:"studio" yaml:"studio"`
	FilmID uint64 `protobuf:"varint,2,opt,name=film_id,json=filmId,proto3" json:"film_id" yaml:"film_id"`
	Name   string `protobuf:"bytes,3,opt,name=name,proto3" json:"name" yaml:"name"`
	Symbol string `protobuf:"bytes,4,opt,name=symbol,proto3" json:"symbol" yaml:"symbol"`
}

func (msg MsgDeployFilmNFTContract) Route() string { return RouterKey }

func (msg MsgDeployFilmNFTContract) Type() string { return TypeMsgDeployFilmNFTContract }

func (msg MsgDeployFilmNFTContract) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Studio)
}

func (msg MsgDeployFilmNFTContract) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgDeployFilmNFTContract) ValidateBasic() error {
	if err := validateAddress("studio", msg.Studio); err != nil {
		return err
	}
	if msg.FilmID == 0 {
		return ErrFilmNotFound.Wrap("film id")
	}
	return ValidateCollectionName(msg.Name, msg.Symbol)
}

// MsgSetMintInfo configures the revenue nft sale of a film
type MsgSetMintInfo struct {
	Studio         string `protobuf:"bytes,1,opt,name=studio,proto3" json:"studio" yaml:"studio"`
	FilmID         uint64 `protobuf:"varint,2,opt,name=film_id,json=filmId,proto3" json:"film_id" yaml:"film_id"`
	Tier           uint64 `protobuf:"varint,3,opt,name=tier,proto3" json:"tier" yaml:"tier"`
	MaxMintAmount  uint64 `protobuf:"varint,4,opt,name=max_mint_amount,json=maxMintAmount,proto3" json:"max_mint_amount" yaml:"max_mint_amount"`
	MintPrice      string `protobuf:"bytes,5,opt,name=mint_price,json=mintPrice,proto3" json:"mint_price" yaml:"mint_price"`
	FeePercent     uint64 `protobuf:"varint,6,opt,name=fee_percent,json=feePercent,proto3" json:"fee_percent" yaml:"fee_percent"`
	RevenuePercent uint64 `protobuf:"varint,7,opt,name=revenue_percent,json=revenuePercent,proto3" json:"revenue_percent" yaml:"revenue_percent"`
}

func (msg MsgSetMintInfo) Route() string { return RouterKey }

func (msg MsgSetMintInfo) Type() string { return TypeMsgSetMintInfo }

func (msg MsgSetMintInfo) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Studio)
}

func (msg MsgSetMintInfo) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgSetMintInfo) ValidateBasic() error {
	if err := validateAddress("studio", msg.Studio); err != nil {
		return err
	}
	if msg.FilmID == 0 {
		return ErrFilmNotFound.Wrap("film id")
	}
	price, err := ParseAmount("mint price", msg.MintPrice)
	if err != nil {
		return err
	}
	info := MintInfo{Tier: msg.Tier, MaxMintAmount: msg.MaxMintAmount, MintPrice: price,
		FeePercent: Percent(msg.FeePercent), RevenuePercent: Percent(msg.RevenuePercent)}
	return info.ValidateBasic()
}

// MsgMint buys one revenue nft of a film for the PayTo address
type MsgMint struct {
	Sender string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	FilmID uint64 `protobuf:"varint,2,opt,name=film_id,json=filmId,proto3" json:"film_id" yaml:"film_id"`
	PayTo  string `protobuf:"bytes,3,opt,name=pay_to,json=payTo,proto3" json:"pay_to" yaml:"pay_to"`
	Denom  string `protobuf:"bytes,4,opt,name=denom,proto3" json:"denom" yaml:"denom"`
}

func (msg MsgMint) Route() string { return RouterKey }

func (msg MsgMint) Type() string { return TypeMsgMint }

func (msg MsgMint) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Sender)
}

func (msg MsgMint) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgMint) ValidateBasic() error {
	if err := validateAddress("sender", msg.Sender); err != nil {
		return err
	}
	if msg.FilmID == 0 {
		return ErrFilmNotFound.Wrap("film id")
	}
	if err := validateAddress("pay to", msg.PayTo); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrAssetNotAllowed.Wrap(err.Error())
	}
	return nil
}

type MsgMintToBatch struct {
	Sender  string   `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	FilmIDs []uint64 `protobuf:"varint,2,rep,packed,name=film_ids,json=filmIds,proto3" json:"film_ids" yaml:"film_ids"`
	Payees  []string `protobuf:"bytes,3,rep,name=payees,proto3" json:"payees" yaml:"payees"`
	Denom   string   `protobuf:"bytes,4,opt,name=denom,proto3" json:"denom" yaml:"denom"`
}

func (msg MsgMintToBatch) Route() string { return RouterKey }

func (msg MsgMintToBatch) Type() string { return TypeMsgMintToBatch }

func (msg MsgMintToBatch) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Sender)
}

func (msg MsgMintToBatch) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgMintToBatch) ValidateBasic() error {
	if err := validateAddress("sender", msg.Sender); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrAssetNotAllowed.Wrap(err.Error())
	}
	if err := validateBatch(msg.FilmIDs); err != nil {
		return err
	}
	if len(msg.FilmIDs) != len(msg.Payees) {
		return ErrLengthMismatch.Wrap("film ids and payees")
	}
	for _, p := range msg.Payees {
		if err := validateAddress("payee", p); err != nil {
			return err
		}
	}
	return nil
}

// MsgSetTierInfo sets the investor tier bands of a funding film. A zero max amount opens the top tier.
type MsgSetTierInfo struct {
	Studio     string   `protobuf:"bytes,1,opt,name=studio,proto3" json:"studio" yaml:"studio"`
	FilmID     uint64   `protobuf:"varint,2,opt,name=film_id,json=filmId,proto3" json:"film_id" yaml:"film_id"`
	MinAmounts []string `protobuf:"bytes,3,rep,name=min_amounts,json=minAmounts,proto3" json:"min_amounts" yaml:"min_amounts"`
	MaxAmounts []string `protobuf:"bytes,4,rep,name=max_amounts,json=maxAmounts,proto3" json:"max_amounts" yaml:"max_amounts"`
}

func (msg MsgSetTierInfo) Route() string { return RouterKey }

func (msg MsgSetTierInfo) Type() string { return TypeMsgSetTierInfo }

func (msg MsgSetTierInfo) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Studio)
}

func (msg MsgSetTierInfo) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgSetTierInfo) ValidateBasic() error {
	if err := validateAddress("studio", msg.Studio); err != nil {
		return err
	}
	if msg.FilmID == 0 {
		return ErrFilmNotFound.Wrap("film id")
	}
	mins, err := ParseAmounts("min amount", msg.MinAmounts)
	if err != nil {
		return err
	}
	maxs, err := ParseAmounts("max amount", msg.MaxAmounts)
	if err != nil {
		return err
	}
	_, err = NewTiers(msg.FilmID, mins, maxs)
	return err
}

type MsgDeployTierNFTContract struct {
	Studio string `protobuf:"bytes,1,opt,name=studio,proto3" json:"studio" yaml:"studio"`
	FilmID uint64 `protobuf:"varint,2,opt,name=film_id,json=filmId,proto3" json:"film_id" yaml:"film_id"`
	Tier   uint64 `protobuf:"varint,3,opt,name=tier,proto3" json:"tier" yaml:"tier"`
	Name   string `protobuf:"bytes,4,opt,name=name,proto3" json:"name" yaml:"name"`
	Symbol string `protobuf:"bytes,5,opt,name=symbol,proto3" json:"symbol" yaml:"symbol"`
}

func (msg MsgDeployTierNFTContract) Route() string { return RouterKey }

func (msg MsgDeployTierNFTContract) Type() string { return TypeMsgDeployTierNFTContract }

func (msg MsgDeployTierNFTContract) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Studio)
}

func (msg MsgDeployTierNFTContract) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgDeployTierNFTContract) ValidateBasic() error {
	if err := validateAddress("studio", msg.Studio); err != nil {
		return err
	}
	if msg.FilmID == 0 {
		return ErrFilmNotFound.Wrap("film id")
	}
	return ValidateCollectionName(msg.Name, msg.Symbol)
}

type MsgMintTierNft struct {
	Sender string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	FilmID uint64 `protobuf:"varint,2,opt,name=film_id,json=filmId,proto3" json:"film_id" yaml:"film_id"`
}

func (msg MsgMintTierNft) Route() string { return RouterKey }

func (msg MsgMintTierNft) Type() string { return TypeMsgMintTierNft }

func (msg MsgMintTierNft) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Sender)
}

func (msg MsgMintTierNft) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgMintTierNft) ValidateBasic() error {
	if err := validateAddress("sender", msg.Sender); err != nil {
		return err
	}
	if msg.FilmID == 0 {
		return ErrFilmNotFound.Wrap("film id")
	}
	return nil
}

type MsgSetBaseURI struct {
	Auditor       string `protobuf:"bytes,1,opt,name=auditor,proto3" json:"auditor" yaml:"auditor"`
	BaseURI       string `protobuf:"bytes,2,opt,name=base_uri,json=baseUri,proto3" json:"base_uri" yaml:"base_uri"`
	CollectionURI string `protobuf:"bytes,3,opt,name=collection_uri,json=collectionUri,proto3" json:"collection_uri" yaml:"collection_uri"`
}

func (msg MsgSetBaseURI) Route() string { return RouterKey }

func (msg MsgSetBaseURI) Type() string { return TypeMsgSetBaseURI }

func (msg MsgSetBaseURI) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Auditor)
}

func (msg MsgSetBaseURI) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgSetBaseURI) ValidateBasic() error {
	return validateAddress("auditor", msg.Auditor)
}

// MsgInitializePool seeds the reward pool once
type MsgInitializePool struct {
	Auditor string `protobuf:"bytes,1,opt,name=auditor,proto3" json:"auditor" yaml:"auditor"`
	Amount  string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount" yaml:"amount"`
}

func (msg MsgInitializePool) Route() string { return RouterKey }

func (msg MsgInitializePool) Type() string { return TypeMsgInitializePool }

func (msg MsgInitializePool) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Auditor)
}

func (msg MsgInitializePool) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgInitializePool) ValidateBasic() error {
	if err := validateAddress("auditor", msg.Auditor); err != nil {
		return err
	}
	return validateAmount(msg.Amount)
}

// MsgAddDepositAsset allows a denom for film deposits
type MsgAddDepositAsset struct {
	Auditor  string `protobuf:"bytes,1,opt,name=auditor,proto3" json:"auditor" yaml:"auditor"`
	Denom    string `protobuf:"bytes,2,opt,name=denom,proto3" json:"denom" yaml:"denom"`
	Decimals uint32 `protobuf:"varint,3,opt,name=decimals,proto3" json:"decimals" yaml:"decimals"`
}

func (msg MsgAddDepositAsset) Route() string { return RouterKey }

func (msg MsgAddDepositAsset) Type() string { return TypeMsgAddDepositAsset }

func (msg MsgAddDepositAsset) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Auditor)
}

func (msg MsgAddDepositAsset) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgAddDepositAsset) ValidateBasic() error {
	if err := validateAddress("auditor", msg.Auditor); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrAssetNotAllowed.Wrap(err.Error())
	}
	return nil
}

// MsgUpdatePropertyForTesting sets a property directly when testing overrides are on
type MsgUpdatePropertyForTesting struct {
	Auditor string `protobuf:"bytes,1,opt,name=auditor,proto3" json:"auditor" yaml:"auditor"`
	Flag    uint64 `protobuf:"varint,2,opt,name=flag,proto3" json:"flag" yaml:"flag"`
	Value   uint64 `protobuf:"varint,3,opt,name=value,proto3" json:"value" yaml:"value"`
}

func (msg MsgUpdatePropertyForTesting) Route() string { return RouterKey }

func (msg MsgUpdatePropertyForTesting) Type() string { return TypeMsgUpdatePropertyForTesting }

func (msg MsgUpdatePropertyForTesting) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Auditor)
}

func (msg MsgUpdatePropertyForTesting) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgUpdatePropertyForTesting) ValidateBasic() error {
	if err := validateAddress("auditor", msg.Auditor); err != nil {
		return err
	}
	return PropertyFlag(msg.Flag).ValidateValue(msg.Value)
}

// Terms converts the message into film terms
func (msg MsgProposalFilmUpdate) Terms() (FilmTerms, error) {
	raise, err := ParseAmount("raise amount", msg.RaiseAmount)
	if err != nil {
		return FilmTerms{}, err
	}
	payees := make([]sdk.AccAddress, len(msg.Payees))
	for i, p := range msg.Payees {
		if payees[i], err = sdk.AccAddressFromBech32(p); err != nil {
			return FilmTerms{}, ErrInvalidAddress.Wrapf("payee %d: %s", i, err)
		}
	}
	shares := make([]Percent, len(msg.SharePercents))
	for i, p := range msg.SharePercents {
		shares[i] = Percent(p)
	}
	return FilmTerms{
		Title:         msg.Title,
		Description:   msg.Description,
		SharePercents: shares,
		Payees:        payees,
		RaiseAmount:   raise,
		FundPeriod:    msg.FundPeriod,
		EnableClaimer: msg.EnableClaimer,
	}, nil
}

func mustSigner(addr string) []sdk.AccAddress {
	a, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{a}
}

func validateAddress(field, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return ErrInvalidAddress.Wrapf("%s: %s", field, err)
	}
	return nil
}

func validateAmount(s string) error {
	amount, err := ParseAmount("amount", s)
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrZeroAmount
	}
	return nil
}

// ParseAmount reads a non negative integer amount
func ParseAmount(field, s string) (sdk.Int, error) {
	v, ok := sdk.NewIntFromString(strings.TrimSpace(s))
	if !ok || v.IsNegative() {
		return sdk.Int{}, ErrInvalidAmount.Wrapf("%s: %q", field, s)
	}
	return v, nil
}

func ParseAmounts(field string, s []string) ([]sdk.Int, error) {
	res := make([]sdk.Int, len(s))
	for i := range s {
		v, err := ParseAmount(field, s[i])
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func validateBatch(filmIDs []uint64) error {
	if len(filmIDs) == 0 {
		return ErrEmptyBatch
	}
	for _, id := range filmIDs {
		if id == 0 {
			return ErrFilmNotFound.Wrap("film id")
		}
	}
	return nil
}

// validateGovernanceKind accepts the proposal kinds that are voted and finalized by index
func validateGovernanceKind(kind uint32, flag uint64) error {
	switch ProposalKind(kind) {
	case ProposalKindProperty:
		if PropertyFlag(flag) >= flagCount {
			return ErrUnknownFlag.Wrapf("%d", flag)
		}
	case ProposalKindAuditor, ProposalKindRewardFund:
	default:
		return ErrInvalidKind.Wrapf("%d", kind)
	}
	return nil
}
