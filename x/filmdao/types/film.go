package types

import (
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// FilmStatus ordinals are part of the query surface and must not change.
type FilmStatus uint32

const (
	FilmStatusListed FilmStatus = iota
	FilmStatusUpdated
	FilmStatusApprovedListing
	FilmStatusApprovedFunding
)

func (s FilmStatus) String() string {
	switch s {
	case FilmStatusListed:
		return "listed"
	case FilmStatusUpdated:
		return "updated"
	case FilmStatusApprovedListing:
		return "approved_listing"
	case FilmStatusApprovedFunding:
		return "approved_funding"
	default:
		return fmt.Sprintf("FilmStatus(%d)", uint32(s))
	}
}

// FundType classifies a film. The values match the approved status they lead to.
type FundType uint32

const (
	FundTypeListing FundType = 2
	FundTypeFunding FundType = 3
)

func (f FundType) ValidateBasic() error {
	switch f {
	case FundTypeListing, FundTypeFunding:
		return nil
	default:
		return ErrInvalidFundType.Wrapf("%d", f)
	}
}

// ApprovedStatus is the status a film of this type reaches on approval
func (f FundType) ApprovedStatus() FilmStatus {
	if f == FundTypeFunding {
		return FilmStatusApprovedFunding
	}
	return FilmStatusApprovedListing
}

// FilmTerms are supplied by the studio to complete a listed film
type FilmTerms struct {
	Title         string           `json:"title" yaml:"title"`
	Description   string           `json:"description" yaml:"description"`
	SharePercents []Percent        `json:"share_percents" yaml:"share_percents"`
	Payees        []sdk.AccAddress `json:"payees" yaml:"payees"`
	RaiseAmount   sdk.Int          `json:"raise_amount" yaml:"raise_amount"`
	// FundPeriod in seconds
	FundPeriod    uint64 `json:"fund_period" yaml:"fund_period"`
	EnableClaimer bool   `json:"enable_claimer" yaml:"enable_claimer"`
}

// ValidateBasic checks the terms for a film of the given fund type
func (t FilmTerms) ValidateBasic(fundType FundType) error {
	if err := ValidateProposalText(t.Title, t.Description); err != nil {
		return err
	}
	if len(t.SharePercents) == 0 || len(t.SharePercents) != len(t.Payees) {
		return ErrInvalidFilmTerms.Wrap("share percents must match payees")
	}
	for i, p := range t.Payees {
		if err := sdk.VerifyAddressFormat(p); err != nil {
			return ErrInvalidFilmTerms.Wrapf("payee %d", i)
		}
	}
	switch total, ok := SumPercents(t.SharePercents); {
	case !ok, total != OneHundredPercent:
		return ErrInvalidFilmTerms.Wrap("share percents must sum up to 100%")
	}
	if t.RaiseAmount.IsNil() || t.RaiseAmount.IsNegative() {
		return ErrInvalidFilmTerms.Wrap("raise amount")
	}
	if fundType == FundTypeFunding {
		if !t.RaiseAmount.IsPositive() {
			return ErrInvalidFilmTerms.Wrap("raise amount required for funding")
		}
		if t.FundPeriod == 0 {
			return ErrInvalidFilmTerms.Wrap("fund period required for funding")
		}
	}
	if t.FundPeriod > MaxPeriod {
		return ErrInvalidFilmTerms.Wrapf("fund period must not exceed %d seconds", MaxPeriod)
	}
	return nil
}

// Film is a project proposed by a studio
type Film struct {
	ID           uint64         `json:"id" yaml:"id"`
	Studio       sdk.AccAddress `json:"studio" yaml:"studio"`
	FundType     FundType       `json:"fund_type" yaml:"fund_type"`
	RequiresVote bool           `json:"requires_vote" yaml:"requires_vote"`
	Status       FilmStatus     `json:"status" yaml:"status"`
	Terms        FilmTerms      `json:"terms" yaml:"terms"`
	// ProposalID is the community vote on the film, zero for fast track films
	ProposalID      uint64    `json:"proposal_id" yaml:"proposal_id"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
	FundPeriodStart time.Time `json:"fund_period_start" yaml:"fund_period_start"`
	DepositedTotal  sdk.Int   `json:"deposited_total" yaml:"deposited_total"`
	// MintedValue is the cumulative revenue nft payment net of fees
	MintedValue sdk.Int `json:"minted_value" yaml:"minted_value"`
	// Processed is set once raised funds were paid out or the refund phase started
	Processed bool `json:"processed" yaml:"processed"`
}

// NewFilm returns a listed film
func NewFilm(id uint64, studio sdk.AccAddress, fundType FundType, requiresVote bool, now time.Time) Film {
	return Film{
		ID:             id,
		Studio:         studio,
		FundType:       fundType,
		RequiresVote:   requiresVote,
		Status:         FilmStatusListed,
		CreatedAt:      now,
		Terms:          FilmTerms{RaiseAmount: sdk.ZeroInt()},
		DepositedTotal: sdk.ZeroInt(),
		MintedValue:    sdk.ZeroInt(),
	}
}

// FundPeriodEnd is the exclusive end of the deposit window
func (f Film) FundPeriodEnd() time.Time {
	return f.FundPeriodStart.Add(time.Duration(f.Terms.FundPeriod) * time.Second)
}

// InFundPeriod returns true when deposits are accepted at the given time
func (f Film) InFundPeriod(now time.Time) bool {
	return f.Status == FilmStatusApprovedFunding && !now.Before(f.FundPeriodStart) && now.Before(f.FundPeriodEnd())
}

// RaiseReached returns true when the deposits cover the raise amount
func (f Film) RaiseReached() bool {
	return f.DepositedTotal.GTE(f.Terms.RaiseAmount)
}

// CanTransition returns true for forward only status moves
func (f Film) CanTransition(to FilmStatus) bool {
	switch f.Status {
	case FilmStatusListed:
		return to == FilmStatusUpdated
	case FilmStatusUpdated:
		return to == f.FundType.ApprovedStatus()
	default:
		return false
	}
}

func (f Film) ValidateBasic() error {
	if f.ID == 0 {
		return ErrInvalidGenesis.Wrap("film id")
	}
	if err := sdk.VerifyAddressFormat(f.Studio); err != nil {
		return ErrInvalidAddress.Wrap("studio")
	}
	if err := f.FundType.ValidateBasic(); err != nil {
		return err
	}
	if f.Status > FilmStatusApprovedFunding {
		return ErrInvalidFilmStatus.Wrapf("%d", f.Status)
	}
	if f.Status != FilmStatusListed {
		if err := f.Terms.ValidateBasic(f.FundType); err != nil {
			return err
		}
	}
	return nil
}
