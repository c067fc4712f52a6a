package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MintInfo configures revenue nft minting of a film
type MintInfo struct {
	FilmID         uint64  `json:"film_id" yaml:"film_id"`
	Tier           uint64  `json:"tier" yaml:"tier"`
	MaxMintAmount  uint64  `json:"max_mint_amount" yaml:"max_mint_amount"`
	MintPrice      sdk.Int `json:"mint_price" yaml:"mint_price"`
	FeePercent     Percent `json:"fee_percent" yaml:"fee_percent"`
	RevenuePercent Percent `json:"revenue_percent" yaml:"revenue_percent"`
	Minted         uint64  `json:"minted" yaml:"minted"`
}

func (m MintInfo) ValidateBasic() error {
	if m.MaxMintAmount == 0 {
		return ErrInvalidMintInfo.Wrap("max mint amount")
	}
	if m.MintPrice.IsNil() || !m.MintPrice.IsPositive() {
		return ErrInvalidMintInfo.Wrap("mint price")
	}
	if err := m.FeePercent.ValidateBasic(); err != nil {
		return ErrInvalidMintInfo.Wrapf("fee: %s", err)
	}
	if err := m.RevenuePercent.ValidateBasic(); err != nil {
		return ErrInvalidMintInfo.Wrapf("revenue: %s", err)
	}
	return nil
}

// Payment is the mint price net of the fee that counts against the raise amount
func (m MintInfo) Payment() sdk.Int {
	return m.FeePercent.Complement().MulInt(m.MintPrice)
}

// CollectionKind distinguishes tier from revenue collections
type CollectionKind uint32

const (
	CollectionKindUndefined CollectionKind = iota
	CollectionKindFilmNFT
	CollectionKindTierNFT
)

func (k CollectionKind) String() string {
	switch k {
	case CollectionKindFilmNFT:
		return "film_nft"
	case CollectionKindTierNFT:
		return "tier_nft"
	default:
		return "undefined"
	}
}

// Collection is a non fungible token class with sequential token ids starting at 1
type Collection struct {
	ID      uint64         `json:"id" yaml:"id"`
	FilmID  uint64         `json:"film_id" yaml:"film_id"`
	Tier    uint64         `json:"tier" yaml:"tier"`
	Kind    CollectionKind `json:"kind" yaml:"kind"`
	Name    string         `json:"name" yaml:"name"`
	Symbol  string         `json:"symbol" yaml:"symbol"`
	Creator sdk.AccAddress `json:"creator" yaml:"creator"`
	Supply  uint64         `json:"supply" yaml:"supply"`
}

func ValidateCollectionName(name, symbol string) error {
	if len(name) == 0 || len(name) > 128 {
		return ErrInvalidCollection.Wrap("name")
	}
	if len(symbol) == 0 || len(symbol) > 32 {
		return ErrInvalidCollection.Wrap("symbol")
	}
	return nil
}

// TokenOwner is an issued token
type TokenOwner struct {
	CollectionID uint64         `json:"collection_id" yaml:"collection_id"`
	TokenID      uint64         `json:"token_id" yaml:"token_id"`
	Owner        sdk.AccAddress `json:"owner" yaml:"owner"`
}

// BaseURI is the metadata location of the film collections
type BaseURI struct {
	Base       string `json:"base" yaml:"base"`
	Collection string `json:"collection" yaml:"collection"`
}
