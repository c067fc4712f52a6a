package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Sequence is an auto increment counter
type Sequence struct {
	Key   []byte `json:"key" yaml:"key"`
	Value uint64 `json:"value" yaml:"value"`
}

// GenesisState is the complete module state. Secondary indexes are rebuilt on import.
type GenesisState struct {
	Params        Params         `json:"params" yaml:"params"`
	Auditor       sdk.AccAddress `json:"auditor" yaml:"auditor"`
	BaseURI       BaseURI        `json:"base_uri" yaml:"base_uri"`
	RewardPool    RewardPool     `json:"reward_pool" yaml:"reward_pool"`
	DepositAssets []DepositAsset `json:"deposit_assets" yaml:"deposit_assets"`
	Stakers       []Staker       `json:"stakers" yaml:"stakers"`
	Proposals     []Proposal     `json:"proposals" yaml:"proposals"`
	Votes         []VoteRecord   `json:"votes" yaml:"votes"`
	Films         []Film         `json:"films" yaml:"films"`
	Deposits      []Deposit      `json:"deposits" yaml:"deposits"`
	UserDeposits  []UserDeposit  `json:"user_deposits" yaml:"user_deposits"`
	Tiers         []Tier         `json:"tiers" yaml:"tiers"`
	MintInfos     []MintInfo     `json:"mint_infos" yaml:"mint_infos"`
	Collections   []Collection   `json:"collections" yaml:"collections"`
	Tokens        []TokenOwner   `json:"tokens" yaml:"tokens"`
	Sequences     []Sequence     `json:"sequences" yaml:"sequences"`
}

// DefaultGenesisState has no auditor. It must be set before the chain starts.
func DefaultGenesisState() GenesisState {
	return GenesisState{
		Params:     DefaultParams(),
		RewardPool: NewRewardPool(),
	}
}

// ValidateGenesis checks the genesis state for consistency
func ValidateGenesis(g GenesisState) error {
	if err := g.Params.ValidateBasic(); err != nil {
		return sdkerrors.Wrap(err, "params")
	}
	if err := sdk.VerifyAddressFormat(g.Auditor); err != nil {
		return ErrInvalidGenesis.Wrapf("auditor: %s", err)
	}
	if g.RewardPool.TotalReward.IsNil() || g.RewardPool.TotalReward.IsNegative() {
		return ErrInvalidGenesis.Wrap("reward pool")
	}
	assets := make(map[string]struct{}, len(g.DepositAssets))
	for _, a := range g.DepositAssets {
		if err := a.ValidateBasic(); err != nil {
			return sdkerrors.Wrap(err, "deposit asset")
		}
		if _, exists := assets[a.Denom]; exists {
			return ErrInvalidGenesis.Wrapf("duplicate deposit asset %s", a.Denom)
		}
		assets[a.Denom] = struct{}{}
	}
	stakers := make(map[string]struct{}, len(g.Stakers))
	for _, s := range g.Stakers {
		if err := s.ValidateBasic(); err != nil {
			return sdkerrors.Wrap(err, "staker")
		}
		if _, exists := stakers[string(s.Address)]; exists {
			return ErrInvalidGenesis.Wrapf("duplicate staker %s", s.Address)
		}
		stakers[string(s.Address)] = struct{}{}
	}
	proposals := make(map[uint64]struct{}, len(g.Proposals))
	for _, p := range g.Proposals {
		if err := p.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "proposal %d", p.ID)
		}
		if _, exists := proposals[p.ID]; exists {
			return ErrInvalidGenesis.Wrapf("duplicate proposal %d", p.ID)
		}
		proposals[p.ID] = struct{}{}
	}
	for _, v := range g.Votes {
		if _, exists := proposals[v.ProposalID]; !exists {
			return ErrInvalidGenesis.Wrapf("vote for unknown proposal %d", v.ProposalID)
		}
		if err := v.Choice.ValidateBasic(); err != nil {
			return err
		}
	}
	films := make(map[uint64]struct{}, len(g.Films))
	for _, f := range g.Films {
		if err := f.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "film %d", f.ID)
		}
		if _, exists := films[f.ID]; exists {
			return ErrInvalidGenesis.Wrapf("duplicate film %d", f.ID)
		}
		films[f.ID] = struct{}{}
	}
	for _, d := range g.Deposits {
		if _, exists := films[d.FilmID]; !exists {
			return ErrInvalidGenesis.Wrapf("deposit for unknown film %d", d.FilmID)
		}
	}
	for _, t := range g.Tiers {
		if _, exists := films[t.FilmID]; !exists {
			return ErrInvalidGenesis.Wrapf("tier for unknown film %d", t.FilmID)
		}
	}
	for _, m := range g.MintInfos {
		if err := m.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "mint info %d", m.FilmID)
		}
	}
	collections := make(map[uint64]struct{}, len(g.Collections))
	for _, c := range g.Collections {
		if err := ValidateCollectionName(c.Name, c.Symbol); err != nil {
			return err
		}
		collections[c.ID] = struct{}{}
	}
	for _, t := range g.Tokens {
		if _, exists := collections[t.CollectionID]; !exists {
			return ErrInvalidGenesis.Wrapf("token of unknown collection %d", t.CollectionID)
		}
	}
	return nil
}
