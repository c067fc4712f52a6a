package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// protoPackage prefixes the type urls of the module messages
const protoPackage = "cinedao.filmdao.v1."

// Messages carry protobuf field tags and are encoded by reflection.

func (m *MsgStakeVAB) Reset() { *m = MsgStakeVAB{} }
func (m *MsgStakeVAB) String() string { return msgString(m) }
func (*MsgStakeVAB) ProtoMessage() {}
func (*MsgStakeVAB) XXX_MessageName() string { return protoPackage + "MsgStakeVAB" }

func (m *MsgUnstakeVAB) Reset() { *m = MsgUnstakeVAB{} }
func (m *MsgUnstakeVAB) String() string { return msgString(m) }
func (*MsgUnstakeVAB) ProtoMessage() {}
func (*MsgUnstakeVAB) XXX_MessageName() string { return protoPackage + "MsgUnstakeVAB" }

func (m *MsgDepositVAB) Reset() { *m = MsgDepositVAB{} }
func (m *MsgDepositVAB) String() string { return msgString(m) }
func (*MsgDepositVAB) ProtoMessage() {}
func (*MsgDepositVAB) XXX_MessageName() string { return protoPackage + "MsgDepositVAB" }

func (m *MsgWithdrawVotingDeposit) Reset() { *m = MsgWithdrawVotingDeposit{} }
func (m *MsgWithdrawVotingDeposit) String() string { return msgString(m) }
func (*MsgWithdrawVotingDeposit) ProtoMessage() {}
func (*MsgWithdrawVotingDeposit) XXX_MessageName() string { return protoPackage + "MsgWithdrawVotingDeposit" }

func (m *MsgClaimReward) Reset() { *m = MsgClaimReward{} }
func (m *MsgClaimReward) String() string { return msgString(m) }
func (*MsgClaimReward) ProtoMessage() {}
func (*MsgClaimReward) XXX_MessageName() string { return protoPackage + "MsgClaimReward" }

func (m *MsgAddRewardToPool) Reset() { *m = MsgAddRewardToPool{} }
func (m *MsgAddRewardToPool) String() string { return msgString(m) }
func (*MsgAddRewardToPool) ProtoMessage() {}
func (*MsgAddRewardToPool) XXX_MessageName() string { return protoPackage + "MsgAddRewardToPool" }

func (m *MsgWithdrawAllFunds) Reset() { *m = MsgWithdrawAllFunds{} }
func (m *MsgWithdrawAllFunds) String() string { return msgString(m) }
func (*MsgWithdrawAllFunds) ProtoMessage() {}
func (*MsgWithdrawAllFunds) XXX_MessageName() string { return protoPackage + "MsgWithdrawAllFunds" }

func (m *MsgSubmitProposal) Reset() { *m = MsgSubmitProposal{} }
func (m *MsgSubmitProposal) String() string { return msgString(m) }
func (*MsgSubmitProposal) ProtoMessage() {}
func (*MsgSubmitProposal) XXX_MessageName() string { return protoPackage + "MsgSubmitProposal" }

func (m *MsgVote) Reset() { *m = MsgVote{} }
func (m *MsgVote) String() string { return msgString(m) }
func (*MsgVote) ProtoMessage() {}
func (*MsgVote) XXX_MessageName() string { return protoPackage + "MsgVote" }

func (m *MsgFinalizeProposal) Reset() { *m = MsgFinalizeProposal{} }
func (m *MsgFinalizeProposal) String() string { return msgString(m) }
func (*MsgFinalizeProposal) ProtoMessage() {}
func (*MsgFinalizeProposal) XXX_MessageName() string { return protoPackage + "MsgFinalizeProposal" }

func (m *MsgReplaceAuditor) Reset() { *m = MsgReplaceAuditor{} }
func (m *MsgReplaceAuditor) String() string { return msgString(m) }
func (*MsgReplaceAuditor) ProtoMessage() {}
func (*MsgReplaceAuditor) XXX_MessageName() string { return protoPackage + "MsgReplaceAuditor" }

func (m *MsgProposalFilmCreate) Reset() { *m = MsgProposalFilmCreate{} }
func (m *MsgProposalFilmCreate) String() string { return msgString(m) }
func (*MsgProposalFilmCreate) ProtoMessage() {}
func (*MsgProposalFilmCreate) XXX_MessageName() string { return protoPackage + "MsgProposalFilmCreate" }

func (m *MsgProposalFilmUpdate) Reset() { *m = MsgProposalFilmUpdate{} }
func (m *MsgProposalFilmUpdate) String() string { return msgString(m) }
func (*MsgProposalFilmUpdate) ProtoMessage() {}
func (*MsgProposalFilmUpdate) XXX_MessageName() string { return protoPackage + "MsgProposalFilmUpdate" }

func (m *MsgVoteToFilms) Reset() { *m = MsgVoteToFilms{} }
func (m *MsgVoteToFilms) String() string { return msgString(m) }
func (*MsgVoteToFilms) ProtoMessage() {}
func (*MsgVoteToFilms) XXX_MessageName() string { return protoPackage + "MsgVoteToFilms" }

func (m *MsgApproveFilms) Reset() { *m = MsgApproveFilms{} }
func (m *MsgApproveFilms) String() string { return msgString(m) }
func (*MsgApproveFilms) ProtoMessage() {}
func (*MsgApproveFilms) XXX_MessageName() string { return protoPackage + "MsgApproveFilms" }

func (m *MsgDepositToFilm) Reset() { *m = MsgDepositToFilm{} }
func (m *MsgDepositToFilm) String() string { return msgString(m) }
func (*MsgDepositToFilm) ProtoMessage() {}
func (*MsgDepositToFilm) XXX_MessageName() string { return protoPackage + "MsgDepositToFilm" }

func (m *MsgWithdrawFunding) Reset() { *m = MsgWithdrawFunding{} }
func (m *MsgWithdrawFunding) String() string { return msgString(m) }
func (*MsgWithdrawFunding) ProtoMessage() {}
func (*MsgWithdrawFunding) XXX_MessageName() string { return protoPackage + "MsgWithdrawFunding" }

func (m *MsgFundProcess) Reset() { *m = MsgFundProcess{} }
func (m *MsgFundProcess) String() string { return msgString(m) }
func (*MsgFundProcess) ProtoMessage() {}
func (*MsgFundProcess) XXX_MessageName() string { return protoPackage + "MsgFundProcess" }

func (m *MsgDeployFilmNFTContract) Reset() { *m = MsgDeployFilmNFTContract{} }
func (m *MsgDeployFilmNFTContract) String() string { return msgString(m) }
func (*MsgDeployFilmNFTContract) ProtoMessage() {}
func (*MsgDeployFilmNFTContract) XXX_MessageName() string { return protoPackage + "MsgDeployFilmNFTContract" }

func (m *MsgSetMintInfo) Reset() { *m = MsgSetMintInfo{} }
func (m *MsgSetMintInfo) String() string { return msgString(m) }
func (*MsgSetMintInfo) ProtoMessage() {}
func (*MsgSetMintInfo) XXX_MessageName() string { return protoPackage + "MsgSetMintInfo" }

func (m *MsgMint) Reset() { *m = MsgMint{} }
func (m *MsgMint) String() string { return msgString(m) }
func (*MsgMint) ProtoMessage() {}
func (*MsgMint) XXX_MessageName() string { return protoPackage + "MsgMint" }

func (m *MsgMintToBatch) Reset() { *m = MsgMintToBatch{} }
func (m *MsgMintToBatch) String() string { return msgString(m) }
func (*MsgMintToBatch) ProtoMessage() {}
func (*MsgMintToBatch) XXX_MessageName() string { return protoPackage + "MsgMintToBatch" }

func (m *MsgSetTierInfo) Reset() { *m = MsgSetTierInfo{} }
func (m *MsgSetTierInfo) String() string { return msgString(m) }
func (*MsgSetTierInfo) ProtoMessage() {}
func (*MsgSetTierInfo) XXX_MessageName() string { return protoPackage + "MsgSetTierInfo" }

func (m *MsgDeployTierNFTContract) Reset() { *m = MsgDeployTierNFTContract{} }
func (m *MsgDeployTierNFTContract) String() string { return msgString(m) }
func (*MsgDeployTierNFTContract) ProtoMessage() {}
func (*MsgDeployTierNFTContract) XXX_MessageName() string { return protoPackage + "MsgDeployTierNFTContract" }

func (m *MsgMintTierNft) Reset() { *m = MsgMintTierNft{} }
func (m *MsgMintTierNft) String() string { return msgString(m) }
func (*MsgMintTierNft) ProtoMessage() {}
func (*MsgMintTierNft) XXX_MessageName() string { return protoPackage + "MsgMintTierNft" }

func (m *MsgSetBaseURI) Reset() { *m = MsgSetBaseURI{} }
func (m *MsgSetBaseURI) String() string { return msgString(m) }
func (*MsgSetBaseURI) ProtoMessage() {}
func (*MsgSetBaseURI) XXX_MessageName() string { return protoPackage + "MsgSetBaseURI" }

func (m *MsgInitializePool) Reset() { *m = MsgInitializePool{} }
func (m *MsgInitializePool) String() string { return msgString(m) }
func (*MsgInitializePool) ProtoMessage() {}
func (*MsgInitializePool) XXX_MessageName() string { return protoPackage + "MsgInitializePool" }

func (m *MsgAddDepositAsset) Reset() { *m = MsgAddDepositAsset{} }
func (m *MsgAddDepositAsset) String() string { return msgString(m) }
func (*MsgAddDepositAsset) ProtoMessage() {}
func (*MsgAddDepositAsset) XXX_MessageName() string { return protoPackage + "MsgAddDepositAsset" }

func (m *MsgUpdatePropertyForTesting) Reset() { *m = MsgUpdatePropertyForTesting{} }
func (m *MsgUpdatePropertyForTesting) String() string { return msgString(m) }
func (*MsgUpdatePropertyForTesting) ProtoMessage() {}
func (*MsgUpdatePropertyForTesting) XXX_MessageName() string { return protoPackage + "MsgUpdatePropertyForTesting" }

func msgString(m sdk.Msg) string {
	bz, err := ModuleCdc.MarshalJSON(m)
	if err != nil {
		return err.Error()
	}
	return string(bz)
}

// RegisterLegacyAminoCodec registers the module messages for amino json signing
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgStakeVAB{}, "filmdao/MsgStakeVAB", nil)
	cdc.RegisterConcrete(&MsgUnstakeVAB{}, "filmdao/MsgUnstakeVAB", nil)
	cdc.RegisterConcrete(&MsgDepositVAB{}, "filmdao/MsgDepositVAB", nil)
	cdc.RegisterConcrete(&MsgWithdrawVotingDeposit{}, "filmdao/MsgWithdrawVotingDeposit", nil)
	cdc.RegisterConcrete(&MsgClaimReward{}, "filmdao/MsgClaimReward", nil)
	cdc.RegisterConcrete(&MsgAddRewardToPool{}, "filmdao/MsgAddRewardToPool", nil)
	cdc.RegisterConcrete(&MsgWithdrawAllFunds{}, "filmdao/MsgWithdrawAllFunds", nil)
	cdc.RegisterConcrete(&MsgSubmitProposal{}, "filmdao/MsgSubmitProposal", nil)
	cdc.RegisterConcrete(&MsgVote{}, "filmdao/MsgVote", nil)
	cdc.RegisterConcrete(&MsgFinalizeProposal{}, "filmdao/MsgFinalizeProposal", nil)
	cdc.RegisterConcrete(&MsgReplaceAuditor{}, "filmdao/MsgReplaceAuditor", nil)
	cdc.RegisterConcrete(&MsgProposalFilmCreate{}, "filmdao/MsgProposalFilmCreate", nil)
	cdc.RegisterConcrete(&MsgProposalFilmUpdate{}, "filmdao/MsgProposalFilmUpdate", nil)
	cdc.RegisterConcrete(&MsgVoteToFilms{}, "filmdao/MsgVoteToFilms", nil)
	cdc.RegisterConcrete(&MsgApproveFilms{}, "filmdao/MsgApproveFilms", nil)
	cdc.RegisterConcrete(&MsgDepositToFilm{}, "filmdao/MsgDepositToFilm", nil)
	cdc.RegisterConcrete(&MsgWithdrawFunding{}, "filmdao/MsgWithdrawFunding", nil)
	cdc.RegisterConcrete(&MsgFundProcess{}, "filmdao/MsgFundProcess", nil)
	cdc.RegisterConcrete(&MsgDeployFilmNFTContract{}, "filmdao/MsgDeployFilmNFTContract", nil)
	cdc.RegisterConcrete(&MsgSetMintInfo{}, "filmdao/MsgSetMintInfo", nil)
	cdc.RegisterConcrete(&MsgMint{}, "filmdao/MsgMint", nil)
	cdc.RegisterConcrete(&MsgMintToBatch{}, "filmdao/MsgMintToBatch", nil)
	cdc.RegisterConcrete(&MsgSetTierInfo{}, "filmdao/MsgSetTierInfo", nil)
	cdc.RegisterConcrete(&MsgDeployTierNFTContract{}, "filmdao/MsgDeployTierNFTContract", nil)
	cdc.RegisterConcrete(&MsgMintTierNft{}, "filmdao/MsgMintTierNft", nil)
	cdc.RegisterConcrete(&MsgSetBaseURI{}, "filmdao/MsgSetBaseURI", nil)
	cdc.RegisterConcrete(&MsgInitializePool{}, "filmdao/MsgInitializePool", nil)
	cdc.RegisterConcrete(&MsgAddDepositAsset{}, "filmdao/MsgAddDepositAsset", nil)
	cdc.RegisterConcrete(&MsgUpdatePropertyForTesting{}, "filmdao/MsgUpdatePropertyForTesting", nil)
}

// RegisterInterfaces registers the module messages as sdk.Msg implementations
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations(
		(*sdk.Msg)(nil),
		&MsgStakeVAB{},
		&MsgUnstakeVAB{},
		&MsgDepositVAB{},
		&MsgWithdrawVotingDeposit{},
		&MsgClaimReward{},
		&MsgAddRewardToPool{},
		&MsgWithdrawAllFunds{},
		&MsgSubmitProposal{},
		&MsgVote{},
		&MsgFinalizeProposal{},
		&MsgReplaceAuditor{},
		&MsgProposalFilmCreate{},
		&MsgProposalFilmUpdate{},
		&MsgVoteToFilms{},
		&MsgApproveFilms{},
		&MsgDepositToFilm{},
		&MsgWithdrawFunding{},
		&MsgFundProcess{},
		&MsgDeployFilmNFTContract{},
		&MsgSetMintInfo{},
		&MsgMint{},
		&MsgMintToBatch{},
		&MsgSetTierInfo{},
		&MsgDeployTierNFTContract{},
		&MsgMintTierNft{},
		&MsgSetBaseURI{},
		&MsgInitializePool{},
		&MsgAddDepositAsset{},
		&MsgUpdatePropertyForTesting{},
	)
}
