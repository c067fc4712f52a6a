package types

import (
	"fmt"
	"strings"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ProposalKind is the governance track of a proposal
type ProposalKind uint32

const (
	ProposalKindUndefined ProposalKind = iota
	ProposalKindProperty
	ProposalKindAuditor
	ProposalKindRewardFund
	ProposalKindFilm
)

func (k ProposalKind) String() string {
	switch k {
	case ProposalKindProperty:
		return "property"
	case ProposalKindAuditor:
		return "auditor"
	case ProposalKindRewardFund:
		return "reward_fund"
	case ProposalKindFilm:
		return "film"
	default:
		return "undefined"
	}
}

// ProposalStatus of the vote lifecycle
type ProposalStatus uint32

const (
	ProposalStatusOpen ProposalStatus = iota
	// ProposalStatusPendingDispute is an approved auditor vote waiting for the grace period
	ProposalStatusPendingDispute
	ProposalStatusApproved
	ProposalStatusRejected
)

func (s ProposalStatus) String() string {
	switch s {
	case ProposalStatusOpen:
		return "open"
	case ProposalStatusPendingDispute:
		return "pending_dispute"
	case ProposalStatusApproved:
		return "approved"
	case ProposalStatusRejected:
		return "rejected"
	default:
		return fmt.Sprintf("ProposalStatus(%d)", uint32(s))
	}
}

// VoteChoice of a voter
type VoteChoice uint32

const (
	VoteUndefined VoteChoice = iota
	VoteYes
	VoteNo
	VoteAbstain
)

func (c VoteChoice) ValidateBasic() error {
	switch c {
	case VoteYes, VoteNo, VoteAbstain:
		return nil
	default:
		return ErrInvalidChoice.Wrapf("%d", c)
	}
}

func (c VoteChoice) String() string {
	switch c {
	case VoteYes:
		return "yes"
	case VoteNo:
		return "no"
	case VoteAbstain:
		return "abstain"
	default:
		return "undefined"
	}
}

// ProposalContent is the typed payload of a proposal. Exactly one field is set.
type ProposalContent struct {
	Property   *PropertyChange   `json:"property,omitempty" yaml:"property,omitempty"`
	Auditor    *AuditorChange    `json:"auditor,omitempty" yaml:"auditor,omitempty"`
	RewardFund *RewardFundChange `json:"reward_fund,omitempty" yaml:"reward_fund,omitempty"`
	Film       *FilmApproval     `json:"film,omitempty" yaml:"film,omitempty"`
}

type PropertyChange struct {
	Flag  PropertyFlag `json:"flag" yaml:"flag"`
	Value uint64       `json:"value" yaml:"value"`
}

type AuditorChange struct {
	Candidate sdk.AccAddress `json:"candidate" yaml:"candidate"`
}

type RewardFundChange struct {
	Address sdk.AccAddress `json:"address" yaml:"address"`
}

type FilmApproval struct {
	FilmID uint64 `json:"film_id" yaml:"film_id"`
}

// Kind returns the governance track of the set payload
func (c ProposalContent) Kind() ProposalKind {
	switch {
	case c.Property != nil:
		return ProposalKindProperty
	case c.Auditor != nil:
		return ProposalKindAuditor
	case c.RewardFund != nil:
		return ProposalKindRewardFund
	case c.Film != nil:
		return ProposalKindFilm
	default:
		return ProposalKindUndefined
	}
}

// Flag is the track selector within the kind
func (c ProposalContent) Flag() uint64 {
	switch {
	case c.Property != nil:
		return uint64(c.Property.Flag)
	case c.Film != nil:
		return c.Film.FilmID
	default:
		return 0
	}
}

// Value is a printable form of the proposed value
func (c ProposalContent) Value() string {
	switch {
	case c.Property != nil:
		return fmt.Sprintf("%d", c.Property.Value)
	case c.Auditor != nil:
		return c.Auditor.Candidate.String()
	case c.RewardFund != nil:
		return c.RewardFund.Address.String()
	case c.Film != nil:
		return fmt.Sprintf("%d", c.Film.FilmID)
	default:
		return ""
	}
}

func (c ProposalContent) ValidateBasic() error {
	var set int
	for _, v := range []bool{c.Property != nil, c.Auditor != nil, c.RewardFund != nil, c.Film != nil} {
		if v {
			set++
		}
	}
	if set != 1 {
		return ErrInvalidGenesis.Wrap("proposal content must have exactly one payload")
	}
	switch {
	case c.Property != nil:
		return c.Property.Flag.ValidateValue(c.Property.Value)
	case c.Auditor != nil:
		if err := sdk.VerifyAddressFormat(c.Auditor.Candidate); err != nil {
			return ErrInvalidAddress.Wrap("candidate")
		}
	case c.RewardFund != nil:
		if err := sdk.VerifyAddressFormat(c.RewardFund.Address); err != nil {
			return ErrInvalidAddress.Wrap("reward fund address")
		}
	case c.Film != nil:
		if c.Film.FilmID == 0 {
			return ErrFilmNotFound
		}
	}
	return nil
}

// Tally is the running sum of vote weights
type Tally struct {
	Yes     sdk.Int `json:"yes" yaml:"yes"`
	No      sdk.Int `json:"no" yaml:"no"`
	Abstain sdk.Int `json:"abstain" yaml:"abstain"`
	Voters  uint64  `json:"voters" yaml:"voters"`
}

func NewTally() Tally {
	return Tally{Yes: sdk.ZeroInt(), No: sdk.ZeroInt(), Abstain: sdk.ZeroInt()}
}

// Add counts a vote
func (t *Tally) Add(c VoteChoice, weight sdk.Int) {
	switch c {
	case VoteYes:
		t.Yes = t.Yes.Add(weight)
	case VoteNo:
		t.No = t.No.Add(weight)
	case VoteAbstain:
		t.Abstain = t.Abstain.Add(weight)
	}
	t.Voters++
}

// Participation is the weight of all votes cast, abstentions included
func (t Tally) Participation() sdk.Int {
	return t.Yes.Add(t.No).Add(t.Abstain)
}

// QuorumRule decides whether a tally is decisive
type QuorumRule struct {
	QuorumPercent Percent
	MinVoteCount  uint64
}

// Threshold is the participation weight needed for the given total vote weight
func (r QuorumRule) Threshold(totalWeight sdk.Int) sdk.Int {
	return r.QuorumPercent.MulInt(totalWeight)
}

// Approves returns true when quorum is met and yes strictly exceeds no.
func (r QuorumRule) Approves(t Tally, totalWeight sdk.Int) bool {
	if t.Voters < r.MinVoteCount {
		return false
	}
	if t.Participation().LT(r.Threshold(totalWeight)) {
		return false
	}
	return t.Yes.GT(t.No)
}

// Proposal is a governance vote on one typed change
type Proposal struct {
	ID           uint64          `json:"id" yaml:"id"`
	Index        uint64          `json:"index" yaml:"index"`
	Content      ProposalContent `json:"content" yaml:"content"`
	Title        string          `json:"title" yaml:"title"`
	Description  string          `json:"description" yaml:"description"`
	Creator      sdk.AccAddress  `json:"creator" yaml:"creator"`
	CreatedAt    time.Time       `json:"created_at" yaml:"created_at"`
	VoteDeadline time.Time       `json:"vote_deadline" yaml:"vote_deadline"`
	Status       ProposalStatus  `json:"status" yaml:"status"`
	Tally        Tally           `json:"tally" yaml:"tally"`
}

func (p Proposal) Kind() ProposalKind {
	return p.Content.Kind()
}

func (p Proposal) Flag() uint64 {
	return p.Content.Flag()
}

// VotingOpen returns true when votes are accepted at the given time
func (p Proposal) VotingOpen(now time.Time) bool {
	return p.Status == ProposalStatusOpen && now.Before(p.VoteDeadline)
}

const (
	MaxTitleLength       = 140
	MaxDescriptionLength = 5000
)

func ValidateProposalText(title, description string) error {
	switch {
	case len(strings.TrimSpace(title)) == 0:
		return ErrInvalidText.Wrap("empty title")
	case len(title) > MaxTitleLength:
		return ErrInvalidText.Wrapf("title longer than %d", MaxTitleLength)
	case len(description) > MaxDescriptionLength:
		return ErrInvalidText.Wrapf("description longer than %d", MaxDescriptionLength)
	}
	return nil
}

func (p Proposal) ValidateBasic() error {
	if p.ID == 0 {
		return ErrInvalidGenesis.Wrap("proposal id")
	}
	if err := p.Content.ValidateBasic(); err != nil {
		return err
	}
	if err := sdk.VerifyAddressFormat(p.Creator); err != nil {
		return ErrInvalidAddress.Wrap("creator")
	}
	if p.Status > ProposalStatusRejected {
		return ErrInvalidGenesis.Wrapf("proposal status %d", p.Status)
	}
	return nil
}

// VoteRecord is a cast vote. Weight is fixed at cast time.
type VoteRecord struct {
	ProposalID uint64         `json:"proposal_id" yaml:"proposal_id"`
	Voter      sdk.AccAddress `json:"voter" yaml:"voter"`
	Choice     VoteChoice     `json:"choice" yaml:"choice"`
	Weight     sdk.Int        `json:"weight" yaml:"weight"`
	CastAt     time.Time      `json:"cast_at" yaml:"cast_at"`
}
