package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Tier is a deposit band of a film. Bands are half open [Min, Max), a zero Max on the
// last band means unbounded.
type Tier struct {
	FilmID         uint64   `json:"film_id" yaml:"film_id"`
	Index          uint64   `json:"index" yaml:"index"`
	MinAmount      sdk.Int  `json:"min_amount" yaml:"min_amount"`
	MaxAmount      sdk.Int  `json:"max_amount" yaml:"max_amount"`
	CollectionID   uint64   `json:"collection_id" yaml:"collection_id"`
	IssuedTokenIDs []uint64 `json:"issued_token_ids" yaml:"issued_token_ids"`
}

// Unbounded returns true for the open top band
func (t Tier) Unbounded() bool {
	return t.MaxAmount.IsZero()
}

// Contains returns true when amount falls into the band
func (t Tier) Contains(amount sdk.Int) bool {
	if amount.LT(t.MinAmount) {
		return false
	}
	return t.Unbounded() || amount.LT(t.MaxAmount)
}

// NewTiers builds the 1 based bands of a film and checks they are ordered and disjoint.
func NewTiers(filmID uint64, mins, maxs []sdk.Int) ([]Tier, error) {
	if len(mins) == 0 {
		return nil, ErrInvalidTierBands.Wrap("empty")
	}
	if len(mins) != len(maxs) {
		return nil, ErrLengthMismatch.Wrap("min and max amounts")
	}
	tiers := make([]Tier, len(mins))
	for i := range mins {
		min, max := mins[i], maxs[i]
		if min.IsNil() || max.IsNil() || min.IsNegative() || max.IsNegative() {
			return nil, ErrInvalidTierBands.Wrapf("tier %d: negative amount", i+1)
		}
		last := i == len(mins)-1
		switch {
		case max.IsZero() && !last:
			return nil, ErrInvalidTierBands.Wrapf("tier %d: only the last tier can be unbounded", i+1)
		case !max.IsZero() && max.LTE(min):
			return nil, ErrInvalidTierBands.Wrapf("tier %d: max must be greater than min", i+1)
		}
		if i > 0 && min.LT(maxs[i-1]) {
			return nil, ErrInvalidTierBands.Wrapf("tier %d: overlaps tier %d", i+1, i)
		}
		tiers[i] = Tier{
			FilmID:    filmID,
			Index:     uint64(i + 1),
			MinAmount: min,
			MaxAmount: max,
		}
	}
	return tiers, nil
}

// FindTier returns the band containing the amount
func FindTier(tiers []Tier, amount sdk.Int) (Tier, bool) {
	for _, t := range tiers {
		if t.Contains(amount) {
			return t, true
		}
	}
	return Tier{}, false
}
