package types

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Deposit is an immutable funding ledger record
type Deposit struct {
	FilmID           uint64         `json:"film_id" yaml:"film_id"`
	Seq              uint64         `json:"seq" yaml:"seq"`
	Depositor        sdk.AccAddress `json:"depositor" yaml:"depositor"`
	Denom            string         `json:"denom" yaml:"denom"`
	Amount           sdk.Int        `json:"amount" yaml:"amount"`
	NormalizedAmount sdk.Int        `json:"normalized_amount" yaml:"normalized_amount"`
	Time             time.Time      `json:"time" yaml:"time"`
}

// UserDeposit is the cumulative funding of one depositor for a film
type UserDeposit struct {
	FilmID    uint64         `json:"film_id" yaml:"film_id"`
	Depositor sdk.AccAddress `json:"depositor" yaml:"depositor"`
	Total     sdk.Int        `json:"total" yaml:"total"`
	Assets    sdk.Coins      `json:"assets" yaml:"assets"`
	Refunded  bool           `json:"refunded" yaml:"refunded"`
}
