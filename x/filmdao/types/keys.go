package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName is the name of the film dao module
	ModuleName = "filmdao"

	// StoreKey is the string store representation
	StoreKey = ModuleName

	// QuerierRoute is the querier route for the film dao module
	QuerierRoute = ModuleName

	// RouterKey is the msg router key for the film dao module
	RouterKey = ModuleName

	// DefaultParamspace default name for parameter store
	DefaultParamspace = ModuleName
)

// nolint
var (
	AuditorKey          = []byte{0x01}
	BaseURIKey          = []byte{0x02}
	RewardPoolKey       = []byte{0x03}
	SequencePrefix      = []byte{0x04}
	DepositAssetPrefix  = []byte{0x05}
	StakerPrefix        = []byte{0x10}
	ProposalPrefix      = []byte{0x20}
	ProposalIndexPrefix = []byte{0x21}
	VotePrefix          = []byte{0x22}
	FilmPrefix          = []byte{0x30}
	DepositPrefix       = []byte{0x31}
	UserDepositPrefix   = []byte{0x32}
	TierPrefix          = []byte{0x40}
	TierHolderPrefix    = []byte{0x41}
	MintInfoPrefix      = []byte{0x50}
	UserTokenPrefix     = []byte{0x51}
	CollectionPrefix    = []byte{0x60}
	FilmCollectionKey   = []byte{0x61}
	TokenOwnerPrefix    = []byte{0x62}
)

// sequence names
var (
	SequenceProposalID   = []byte("proposal")
	SequenceFilmID       = []byte("film")
	SequenceCollectionID = []byte("collection")
)

// GetSequenceKey returns the store key for the named auto increment counter
func GetSequenceKey(name []byte) []byte {
	return append(append([]byte{}, SequencePrefix...), name...)
}

// GetProposalIndexSequenceName is the counter for the next index of a (kind, flag) track
func GetProposalIndexSequenceName(kind ProposalKind, flag uint64) []byte {
	return append([]byte("index"), proposalTrack(kind, flag)...)
}

// GetDepositSequenceName is the counter for deposit records of a film
func GetDepositSequenceName(filmID uint64) []byte {
	return append([]byte("deposit"), sdk.Uint64ToBigEndian(filmID)...)
}

// GetTokenSequenceName is the counter for token ids of a collection
func GetTokenSequenceName(collectionID uint64) []byte {
	return append([]byte("token"), sdk.Uint64ToBigEndian(collectionID)...)
}

func GetStakerKey(addr sdk.AccAddress) []byte {
	return append(append([]byte{}, StakerPrefix...), address.MustLengthPrefix(addr)...)
}

func GetDepositAssetKey(denom string) []byte {
	return append(append([]byte{}, DepositAssetPrefix...), []byte(denom)...)
}

func GetProposalKey(id uint64) []byte {
	return append(append([]byte{}, ProposalPrefix...), sdk.Uint64ToBigEndian(id)...)
}

// GetProposalIndexKey maps (kind, flag, index) to the proposal id
func GetProposalIndexKey(kind ProposalKind, flag, index uint64) []byte {
	r := append(append([]byte{}, ProposalIndexPrefix...), proposalTrack(kind, flag)...)
	return append(r, sdk.Uint64ToBigEndian(index)...)
}

func proposalTrack(kind ProposalKind, flag uint64) []byte {
	return append([]byte{byte(kind)}, sdk.Uint64ToBigEndian(flag)...)
}

func GetVotePrefix(proposalID uint64) []byte {
	return append(append([]byte{}, VotePrefix...), sdk.Uint64ToBigEndian(proposalID)...)
}

func GetVoteKey(proposalID uint64, voter sdk.AccAddress) []byte {
	return append(GetVotePrefix(proposalID), address.MustLengthPrefix(voter)...)
}

func GetFilmKey(id uint64) []byte {
	return append(append([]byte{}, FilmPrefix...), sdk.Uint64ToBigEndian(id)...)
}

func GetDepositPrefix(filmID uint64) []byte {
	return append(append([]byte{}, DepositPrefix...), sdk.Uint64ToBigEndian(filmID)...)
}

func GetDepositKey(filmID, seq uint64) []byte {
	return append(GetDepositPrefix(filmID), sdk.Uint64ToBigEndian(seq)...)
}

func GetUserDepositPrefix(filmID uint64) []byte {
	return append(append([]byte{}, UserDepositPrefix...), sdk.Uint64ToBigEndian(filmID)...)
}

func GetUserDepositKey(filmID uint64, depositor sdk.AccAddress) []byte {
	return append(GetUserDepositPrefix(filmID), address.MustLengthPrefix(depositor)...)
}

func GetTierPrefix(filmID uint64) []byte {
	return append(append([]byte{}, TierPrefix...), sdk.Uint64ToBigEndian(filmID)...)
}

func GetTierKey(filmID, tier uint64) []byte {
	return append(GetTierPrefix(filmID), sdk.Uint64ToBigEndian(tier)...)
}

func GetTierHolderKey(filmID uint64, holder sdk.AccAddress) []byte {
	r := append(append([]byte{}, TierHolderPrefix...), sdk.Uint64ToBigEndian(filmID)...)
	return append(r, address.MustLengthPrefix(holder)...)
}

func GetMintInfoKey(filmID uint64) []byte {
	return append(append([]byte{}, MintInfoPrefix...), sdk.Uint64ToBigEndian(filmID)...)
}

func GetUserTokenPrefix(filmID uint64, owner sdk.AccAddress) []byte {
	r := append(append([]byte{}, UserTokenPrefix...), sdk.Uint64ToBigEndian(filmID)...)
	return append(r, address.MustLengthPrefix(owner)...)
}

func GetUserTokenKey(filmID uint64, owner sdk.AccAddress, tokenID uint64) []byte {
	return append(GetUserTokenPrefix(filmID, owner), sdk.Uint64ToBigEndian(tokenID)...)
}

func GetCollectionKey(id uint64) []byte {
	return append(append([]byte{}, CollectionPrefix...), sdk.Uint64ToBigEndian(id)...)
}

// GetFilmCollectionKey maps a film tier to its collection. Tier 0 is the revenue collection.
func GetFilmCollectionKey(filmID, tier uint64) []byte {
	r := append(append([]byte{}, FilmCollectionKey...), sdk.Uint64ToBigEndian(filmID)...)
	return append(r, sdk.Uint64ToBigEndian(tier)...)
}

func GetTokenOwnerPrefix(collectionID uint64) []byte {
	return append(append([]byte{}, TokenOwnerPrefix...), sdk.Uint64ToBigEndian(collectionID)...)
}

func GetTokenOwnerKey(collectionID, tokenID uint64) []byte {
	return append(GetTokenOwnerPrefix(collectionID), sdk.Uint64ToBigEndian(tokenID)...)
}
