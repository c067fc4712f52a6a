package types

import (
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
	yaml "gopkg.in/yaml.v2"
)

const day = uint64(24 * 60 * 60)

// Film dao property default values
const (
	DefaultFilmVotePeriod     = 10 * day
	DefaultAgentVotePeriod    = 10 * day
	DefaultDisputeGracePeriod = 30 * day
	DefaultPropertyVotePeriod = 10 * day
	DefaultLockPeriod         = 30 * day
	DefaultRewardRate         = uint64(25 * OnePercent / 1000) // 0.025% per period
	DefaultRewardPeriod       = day
	DefaultRewardVotePeriod   = 30 * day
	DefaultQuorumPercent      = uint64(10 * OnePercent)
	DefaultMinVoteCount       = uint64(5)
	DefaultMinStakeToPropose  = uint64(100)
)

// MaxPeriod is the upper bound in seconds of all periods, about 100 years. Larger values
// would overflow a time.Duration.
const MaxPeriod = 100 * 365 * day

// DefaultStakingDenom is the token locked for vote weight
var DefaultStakingDenom = sdk.DefaultBondDenom

// PropertyFlag selects a governable parameter.
type PropertyFlag uint64

const (
	FlagFilmVotePeriod PropertyFlag = iota
	FlagAgentVotePeriod
	FlagDisputeGracePeriod
	FlagPropertyVotePeriod
	FlagLockPeriod
	FlagRewardRate
	FlagRewardPeriod
	FlagRewardVotePeriod
	FlagMinStakeToPropose
	FlagQuorumPercent
	FlagMinVoteCount
	flagCount
)

var (
	KeyFilmVotePeriod     = []byte("FilmVotePeriod")
	KeyAgentVotePeriod    = []byte("AgentVotePeriod")
	KeyDisputeGracePeriod = []byte("DisputeGracePeriod")
	KeyPropertyVotePeriod = []byte("PropertyVotePeriod")
	KeyLockPeriod         = []byte("LockPeriod")
	KeyRewardRate         = []byte("RewardRate")
	KeyRewardPeriod       = []byte("RewardPeriod")
	KeyRewardVotePeriod   = []byte("RewardVotePeriod")
	KeyMinStakeToPropose  = []byte("MinStakeToPropose")
	KeyQuorumPercent      = []byte("QuorumPercent")
	KeyMinVoteCount       = []byte("MinVoteCount")
	KeyStakingDenom       = []byte("StakingDenom")
)

var propertyKeys = [flagCount][]byte{
	FlagFilmVotePeriod:     KeyFilmVotePeriod,
	FlagAgentVotePeriod:    KeyAgentVotePeriod,
	FlagDisputeGracePeriod: KeyDisputeGracePeriod,
	FlagPropertyVotePeriod: KeyPropertyVotePeriod,
	FlagLockPeriod:         KeyLockPeriod,
	FlagRewardRate:         KeyRewardRate,
	FlagRewardPeriod:       KeyRewardPeriod,
	FlagRewardVotePeriod:   KeyRewardVotePeriod,
	FlagMinStakeToPropose:  KeyMinStakeToPropose,
	FlagQuorumPercent:      KeyQuorumPercent,
	FlagMinVoteCount:       KeyMinVoteCount,
}

// ParamKey returns the params store key of the flag
func (f PropertyFlag) ParamKey() ([]byte, error) {
	if f >= flagCount {
		return nil, ErrUnknownFlag.Wrapf("%d", f)
	}
	return propertyKeys[f], nil
}

func (f PropertyFlag) String() string {
	if f >= flagCount {
		return fmt.Sprintf("PropertyFlag(%d)", uint64(f))
	}
	return string(propertyKeys[f])
}

// PropertyFlagFromString accepts the property name or its numeric flag
func PropertyFlagFromString(s string) (PropertyFlag, error) {
	for f, k := range propertyKeys {
		if string(k) == s {
			return PropertyFlag(f), nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n >= uint64(flagCount) {
		return 0, ErrUnknownFlag.Wrap(s)
	}
	return PropertyFlag(n), nil
}

// ValidateValue checks a proposed value for the flag.
func (f PropertyFlag) ValidateValue(v uint64) error {
	if f >= flagCount {
		return ErrUnknownFlag.Wrapf("%d", f)
	}
	var err error
	switch f {
	case FlagRewardRate, FlagQuorumPercent:
		err = validatePercent(v)
	case FlagFilmVotePeriod, FlagAgentVotePeriod, FlagDisputeGracePeriod, FlagPropertyVotePeriod,
		FlagRewardPeriod, FlagRewardVotePeriod:
		err = validatePeriod(v)
	case FlagLockPeriod:
		// zero disables the lock
		err = validateOptionalPeriod(v)
	case FlagMinStakeToPropose:
		// zero disables the check
	default:
		err = validatePositive(v)
	}
	if err != nil {
		return ErrInvalidProperty.Wrapf("%s: %s", f, err)
	}
	return nil
}

var _ paramtypes.ParamSet = (*Params)(nil)

// Params is the governable property table. All periods are in seconds.
type Params struct {
	FilmVotePeriod     uint64 `json:"film_vote_period" yaml:"film_vote_period"`
	AgentVotePeriod    uint64 `json:"agent_vote_period" yaml:"agent_vote_period"`
	DisputeGracePeriod uint64 `json:"dispute_grace_period" yaml:"dispute_grace_period"`
	PropertyVotePeriod uint64 `json:"property_vote_period" yaml:"property_vote_period"`
	LockPeriod         uint64 `json:"lock_period" yaml:"lock_period"`
	RewardRate         uint64 `json:"reward_rate" yaml:"reward_rate"`
	RewardPeriod       uint64 `json:"reward_period" yaml:"reward_period"`
	RewardVotePeriod   uint64 `json:"reward_vote_period" yaml:"reward_vote_period"`
	// MinStakeToPropose is in staking denom units
	MinStakeToPropose uint64 `json:"min_stake_to_propose" yaml:"min_stake_to_propose"`
	QuorumPercent     uint64 `json:"quorum_percent" yaml:"quorum_percent"`
	MinVoteCount      uint64 `json:"min_vote_count" yaml:"min_vote_count"`
	StakingDenom      string `json:"staking_denom" yaml:"staking_denom"`
}

// ParamKeyTable for film dao module
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// DefaultParams returns a default set of parameters.
func DefaultParams() Params {
	return Params{
		FilmVotePeriod:     DefaultFilmVotePeriod,
		AgentVotePeriod:    DefaultAgentVotePeriod,
		DisputeGracePeriod: DefaultDisputeGracePeriod,
		PropertyVotePeriod: DefaultPropertyVotePeriod,
		LockPeriod:         DefaultLockPeriod,
		RewardRate:         DefaultRewardRate,
		RewardPeriod:       DefaultRewardPeriod,
		RewardVotePeriod:   DefaultRewardVotePeriod,
		MinStakeToPropose:  DefaultMinStakeToPropose,
		QuorumPercent:      DefaultQuorumPercent,
		MinVoteCount:       DefaultMinVoteCount,
		StakingDenom:       DefaultStakingDenom,
	}
}

// ParamSetPairs Implements params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyFilmVotePeriod, &p.FilmVotePeriod, validatePeriod),
		paramtypes.NewParamSetPair(KeyAgentVotePeriod, &p.AgentVotePeriod, validatePeriod),
		paramtypes.NewParamSetPair(KeyDisputeGracePeriod, &p.DisputeGracePeriod, validatePeriod),
		paramtypes.NewParamSetPair(KeyPropertyVotePeriod, &p.PropertyVotePeriod, validatePeriod),
		paramtypes.NewParamSetPair(KeyLockPeriod, &p.LockPeriod, validateOptionalPeriod),
		paramtypes.NewParamSetPair(KeyRewardRate, &p.RewardRate, validatePercent),
		paramtypes.NewParamSetPair(KeyRewardPeriod, &p.RewardPeriod, validatePeriod),
		paramtypes.NewParamSetPair(KeyRewardVotePeriod, &p.RewardVotePeriod, validatePeriod),
		paramtypes.NewParamSetPair(KeyMinStakeToPropose, &p.MinStakeToPropose, validateUint64),
		paramtypes.NewParamSetPair(KeyQuorumPercent, &p.QuorumPercent, validatePercent),
		paramtypes.NewParamSetPair(KeyMinVoteCount, &p.MinVoteCount, validatePositive),
		paramtypes.NewParamSetPair(KeyStakingDenom, &p.StakingDenom, validateDenom),
	}
}

// String returns a human readable string representation of the parameters.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

// ValidateBasic validate a set of params
func (p Params) ValidateBasic() error {
	for _, pair := range p.ParamSetPairs() {
		if err := pair.ValidatorFn(reflectValue(pair.Value)); err != nil {
			return ErrInvalidProperty.Wrapf("%s: %s", pair.Key, err)
		}
	}
	return nil
}

func reflectValue(ptr interface{}) interface{} {
	switch v := ptr.(type) {
	case *uint64:
		return *v
	case *string:
		return *v
	default:
		return v
	}
}

func validateUint64(i interface{}) error {
	_, ok := i.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	return nil
}

func validatePositive(i interface{}) error {
	v, ok := i.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	if v == 0 {
		return fmt.Errorf("must not be zero")
	}
	return nil
}

func validatePeriod(i interface{}) error {
	if err := validatePositive(i); err != nil {
		return err
	}
	return validateOptionalPeriod(i)
}

func validateOptionalPeriod(i interface{}) error {
	v, ok := i.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	if v > MaxPeriod {
		return fmt.Errorf("must not exceed %d seconds", MaxPeriod)
	}
	return nil
}

func validatePercent(i interface{}) error {
	v, ok := i.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	return Percent(v).ValidateBasic()
}

func validateDenom(i interface{}) error {
	v, ok := i.(string)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	return sdk.ValidateDenom(v)
}
