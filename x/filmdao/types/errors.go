package types

import (
	"errors"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ErrorKind classifies module errors. Codes are allocated in blocks of 100 per kind.
type ErrorKind uint32

const (
	KindUnknown ErrorKind = iota
	KindAuthorization
	KindValidation
	KindState
	KindPeriod
	KindResource
)

func (k ErrorKind) String() string {
	switch k {
	case KindAuthorization:
		return "AuthorizationError"
	case KindValidation:
		return "ValidationError"
	case KindState:
		return "StateError"
	case KindPeriod:
		return "PeriodError"
	case KindResource:
		return "ResourceError"
	default:
		return "Unknown"
	}
}

// authorization
var (
	ErrNotAuditor          = sdkerrors.Register(ModuleName, 100, "caller is not the auditor")
	ErrNotStaker           = sdkerrors.Register(ModuleName, 101, "Not staker")
	ErrNotStudio           = sdkerrors.Register(ModuleName, 102, "caller is not the studio")
	ErrInsufficientStake   = sdkerrors.Register(ModuleName, 103, "not enough stake to propose")
	ErrTestingOverrideOff  = sdkerrors.Register(ModuleName, 104, "testing overrides disabled")
	ErrWrongRewardFundAddr = sdkerrors.Register(ModuleName, 105, "not the reward fund address")
)

// validation
var (
	ErrZeroAmount        = sdkerrors.Register(ModuleName, 200, "zero amount")
	ErrInvalidAddress    = sdkerrors.Register(ModuleName, 201, "invalid address")
	ErrInvalidChoice     = sdkerrors.Register(ModuleName, 202, "invalid vote choice")
	ErrInvalidProperty   = sdkerrors.Register(ModuleName, 203, "invalid property value")
	ErrUnknownFlag       = sdkerrors.Register(ModuleName, 204, "unknown property flag")
	ErrInvalidFundType   = sdkerrors.Register(ModuleName, 205, "invalid fund type")
	ErrInvalidFilmTerms  = sdkerrors.Register(ModuleName, 206, "invalid film terms")
	ErrInvalidTierBands  = sdkerrors.Register(ModuleName, 207, "invalid tier bands")
	ErrNoMintInfo        = sdkerrors.Register(ModuleName, 208, "no mint info")
	ErrInvalidMintInfo   = sdkerrors.Register(ModuleName, 209, "invalid mint info")
	ErrAssetNotAllowed   = sdkerrors.Register(ModuleName, 210, "asset not allowed")
	ErrInvalidDecimals   = sdkerrors.Register(ModuleName, 211, "invalid decimals")
	ErrLengthMismatch    = sdkerrors.Register(ModuleName, 212, "length mismatch")
	ErrEmptyBatch        = sdkerrors.Register(ModuleName, 213, "empty batch")
	ErrInvalidCollection = sdkerrors.Register(ModuleName, 214, "invalid collection")
	ErrInvalidGenesis    = sdkerrors.Register(ModuleName, 215, "invalid genesis")
	ErrInvalidText       = sdkerrors.Register(ModuleName, 216, "invalid proposal text")
	ErrInvalidKind       = sdkerrors.Register(ModuleName, 217, "invalid proposal kind")
	ErrInvalidAmount     = sdkerrors.Register(ModuleName, 218, "invalid amount")
)

// state
var (
	ErrNoProposal         = sdkerrors.Register(ModuleName, 300, "no proposal")
	ErrAlreadyVoted       = sdkerrors.Register(ModuleName, 301, "already voted")
	ErrProposalFinalized  = sdkerrors.Register(ModuleName, 302, "proposal already finalized")
	ErrFilmNotFound       = sdkerrors.Register(ModuleName, 303, "film not found")
	ErrInvalidFilmStatus  = sdkerrors.Register(ModuleName, 304, "invalid film status")
	ErrPoolNotInitialized = sdkerrors.Register(ModuleName, 305, "pool not initialized")
	ErrPoolInitialized    = sdkerrors.Register(ModuleName, 306, "pool already initialized")
	ErrTierInfoExists     = sdkerrors.Register(ModuleName, 307, "tier info already set")
	ErrTierNotFound       = sdkerrors.Register(ModuleName, 308, "tier not found")
	ErrNoTierForDeposit   = sdkerrors.Register(ModuleName, 309, "no tier for deposit")
	ErrTierNftMinted      = sdkerrors.Register(ModuleName, 310, "tier nft already minted")
	ErrNotDeployed        = sdkerrors.Register(ModuleName, 311, "nft collection not deployed")
	ErrAlreadyDeployed    = sdkerrors.Register(ModuleName, 312, "nft collection already deployed")
	ErrMintInfoExists     = sdkerrors.Register(ModuleName, 313, "mint info already set")
	ErrAssetExists        = sdkerrors.Register(ModuleName, 314, "asset already registered")
	ErrSameAuditor        = sdkerrors.Register(ModuleName, 315, "candidate is the current auditor")
	ErrAlreadyProcessed   = sdkerrors.Register(ModuleName, 316, "funding already processed")
	ErrRaiseReached       = sdkerrors.Register(ModuleName, 317, "raise amount reached")
	ErrRaiseNotReached    = sdkerrors.Register(ModuleName, 318, "raise amount not reached")
	ErrNothingToRefund    = sdkerrors.Register(ModuleName, 319, "nothing to refund")
	ErrTokenNotFound      = sdkerrors.Register(ModuleName, 320, "token not found")
	ErrIndexOutOfRange    = sdkerrors.Register(ModuleName, 321, "index out of range")
	ErrFundingRefunded    = sdkerrors.Register(ModuleName, 322, "deposit refunded")
)

// period
var (
	ErrPropertyVotePeriod   = sdkerrors.Register(ModuleName, 400, "property vote period yet")
	ErrAuditorVotePeriod    = sdkerrors.Register(ModuleName, 401, "auditor vote period yet")
	ErrAuditorDisputePeriod = sdkerrors.Register(ModuleName, 402, "auditor dispute vote period yet")
	ErrFilmVotePeriod       = sdkerrors.Register(ModuleName, 403, "film vote period yet")
	ErrRewardVotePeriod     = sdkerrors.Register(ModuleName, 404, "reward vote period yet")
	ErrVotePeriodElapsed    = sdkerrors.Register(ModuleName, 405, "vote period elapsed")
	ErrFundPeriodElapsed    = sdkerrors.Register(ModuleName, 406, "fund period elapsed")
	ErrFundPeriodYet        = sdkerrors.Register(ModuleName, 407, "fund period yet")
	ErrUnstakeLocked        = sdkerrors.Register(ModuleName, 408, "unstake locked")
	ErrVotingDepositLocked  = sdkerrors.Register(ModuleName, 409, "voting deposit locked until tally")
)

// resource
var (
	ErrInsufficientFunds   = sdkerrors.Register(ModuleName, 500, "insufficient balance")
	ErrInsufficientStaked  = sdkerrors.Register(ModuleName, 501, "insufficient staked amount")
	ErrInsufficientDeposit = sdkerrors.Register(ModuleName, 502, "insufficient voting deposit")
	ErrRaiseCapExceeded    = sdkerrors.Register(ModuleName, 503, "raise cap exceeded")
	ErrMintAmountExceeded  = sdkerrors.Register(ModuleName, 504, "exceed mint amount")
	ErrNoReward            = sdkerrors.Register(ModuleName, 505, "no reward")
	ErrPoolEmpty           = sdkerrors.Register(ModuleName, 506, "reward pool exhausted")
)

// KindOf returns the taxonomy kind of a module error or KindUnknown for foreign errors.
func KindOf(err error) ErrorKind {
	var e *sdkerrors.Error
	if !errors.As(err, &e) || e.Codespace() != ModuleName {
		return KindUnknown
	}
	switch k := ErrorKind(e.ABCICode() / 100); k {
	case KindAuthorization, KindValidation, KindState, KindPeriod, KindResource:
		return k
	default:
		return KindUnknown
	}
}
