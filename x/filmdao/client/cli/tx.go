package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

const (
	FlagTitle         = "title"
	FlagDescription   = "description"
	FlagProperty      = "property"
	FlagValue         = "value"
	FlagTarget        = "target"
	FlagNoVote        = "no-vote"
	FlagPayees        = "payees"
	FlagShares        = "shares"
	FlagRaiseAmount   = "raise-amount"
	FlagFundPeriod    = "fund-period"
	FlagEnableClaimer = "enable-claimer"
)

func flagSetProposalText() *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.String(FlagTitle, "", "The proposal title")
	fs.String(FlagDescription, "", "The proposal description")
	return fs
}

// GetTxCmd returns the film dao transaction commands
func GetTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Film dao transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	txCmd.AddCommand(
		amountTxCmd("stake [amount]", "Stake tokens as vote weight", func(from, amount string) sdk.Msg {
			return &types.MsgStakeVAB{Staker: from, Amount: amount}
		}),
		amountTxCmd("unstake [amount]", "Release staked tokens after the lock period", func(from, amount string) sdk.Msg {
			return &types.MsgUnstakeVAB{Staker: from, Amount: amount}
		}),
		amountTxCmd("deposit-voting-power [amount]", "Add a voting deposit to the vote weight", func(from, amount string) sdk.Msg {
			return &types.MsgDepositVAB{Staker: from, Amount: amount}
		}),
		amountTxCmd("withdraw-voting-deposit [amount]", "Withdraw from the voting deposit", func(from, amount string) sdk.Msg {
			return &types.MsgWithdrawVotingDeposit{Staker: from, Amount: amount}
		}),
		amountTxCmd("add-reward [amount]", "Top up the staking reward pool", func(from, amount string) sdk.Msg {
			return &types.MsgAddRewardToPool{Funder: from, Amount: amount}
		}),
		amountTxCmd("initialize-pool [amount]", "Seed the reward pool, auditor only", func(from, amount string) sdk.Msg {
			return &types.MsgInitializePool{Auditor: from, Amount: amount}
		}),
		newTxCmd("claim-reward", "Claim the staking reward", cobra.NoArgs, func(_ *cobra.Command, from string, _ []string) (sdk.Msg, error) {
			return &types.MsgClaimReward{Staker: from}, nil
		}),
		newTxCmd("withdraw-all-funds [recipient]", "Empty the reward pool to the recipient", cobra.ExactArgs(1),
			func(_ *cobra.Command, from string, args []string) (sdk.Msg, error) {
				return &types.MsgWithdrawAllFunds{Sender: from, Recipient: args[0]}, nil
			}),
		newTxCmd("add-deposit-asset [denom] [decimals]", "Allow a denom for film deposits, auditor only", cobra.ExactArgs(2),
			func(_ *cobra.Command, from string, args []string) (sdk.Msg, error) {
				decimals, err := strconv.ParseUint(args[1], 10, 32)
				if err != nil {
					return nil, sdkerrors.Wrap(err, "decimals")
				}
				return &types.MsgAddDepositAsset{Auditor: from, Denom: args[0], Decimals: uint32(decimals)}, nil
			}),
		newTxCmd("set-base-uri [base-uri] [collection-uri]", "Set the token metadata locations, auditor only", cobra.ExactArgs(2),
			func(_ *cobra.Command, from string, args []string) (sdk.Msg, error) {
				return &types.MsgSetBaseURI{Auditor: from, BaseURI: args[0], CollectionURI: args[1]}, nil
			}),
		NewSubmitProposalCmd(),
		newTxCmd("vote [property|auditor|reward_fund] [flag] [index] [yes|no|abstain]", "Vote on a governance proposal", cobra.ExactArgs(4),
			func(_ *cobra.Command, from string, args []string) (sdk.Msg, error) {
				kind, trackFlag, index, err := parseTrack(args[:3])
				if err != nil {
					return nil, err
				}
				choice, err := voteChoiceFromString(args[3])
				if err != nil {
					return nil, err
				}
				return &types.MsgVote{Voter: from, Kind: uint32(kind), Flag: trackFlag, Index: index, Choice: uint32(choice)}, nil
			}),
		newTxCmd("finalize-proposal [property|auditor|reward_fund] [flag] [index]", "Tally a governance proposal after its vote period", cobra.ExactArgs(3),
			func(_ *cobra.Command, from string, args []string) (sdk.Msg, error) {
				kind, trackFlag, index, err := parseTrack(args)
				if err != nil {
					return nil, err
				}
				return &types.MsgFinalizeProposal{Sender: from, Kind: uint32(kind), Flag: trackFlag, Index: index}, nil
			}),
		newTxCmd("replace-auditor [index]", "Install an approved auditor after the dispute grace period", cobra.ExactArgs(1),
			func(_ *cobra.Command, from string, args []string) (sdk.Msg, error) {
				index, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return nil, sdkerrors.Wrap(err, "index")
				}
				return &types.MsgReplaceAuditor{Sender: from, Index: index}, nil
			}),
		NewCreateFilmCmd(),
		NewUpdateFilmCmd(),
		newTxCmd("vote-films [film-ids] [choices]", "Vote on films, comma separated", cobra.ExactArgs(2),
			func(_ *cobra.Command, from string, args []string) (sdk.Msg, error) {
				filmIDs, err := parseUint64List(args[0])
				if err != nil {
					return nil, err
				}
				var choices []uint32
				for _, s := range strings.Split(args[1], ",") {
					c, err := voteChoiceFromString(s)
					if err != nil {
						return nil, err
					}
					choices = append(choices, uint32(c))
				}
				return &types.MsgVoteToFilms{Voter: from, FilmIDs: filmIDs, Choices: choices}, nil
			}),
		newTxCmd("approve-films [film-ids]", "Tally film votes after their vote period", cobra.ExactArgs(1),
			func(_ *cobra.Command, from string, args []string) (sdk.Msg, error) {
				filmIDs, err := parseUint64List(args[0])
				if err != nil {
					return nil, err
				}
				return &types.MsgApproveFilms{Sender: from, FilmIDs: filmIDs}, nil
			}),
		filmTxCmd("deposit-to-film [film-id] [amount] [denom]", "Back a funding film", 3, func(from string, filmID uint64, args []string) (sdk.Msg, error) {
			return &types.MsgDepositToFilm{Depositor: from, FilmID: filmID, Amount: args[0], Denom: args[1]}, nil
		}),
		filmTxCmd("withdraw-funding [film-id]", "Refund the deposits to a film that missed its raise", 1, func(from string, filmID uint64, _ []string) (sdk.Msg, error) {
			return &types.MsgWithdrawFunding{Depositor: from, FilmID: filmID}, nil
		}),
		filmTxCmd("fund-process [film-id]", "Pay out the raise of a funded film", 1, func(from string, filmID uint64, _ []string) (sdk.Msg, error) {
			return &types.MsgFundProcess{Studio: from, FilmID: filmID}, nil
		}),
		filmTxCmd("deploy-film-nft [film-id] [name] [symbol]", "Deploy the revenue nft collection of a film", 3, func(from string, filmID uint64, args []string) (sdk.Msg, error) {
			return &types.MsgDeployFilmNFTContract{Studio: from, FilmID: filmID, Name: args[0], Symbol: args[1]}, nil
		}),
		filmTxCmd("set-mint-info [film-id] [tier] [max-mint-amount] [mint-price] [fee-percent] [revenue-percent]",
			"Configure the revenue nft sale, percents in units of 1e-8 %", 6, func(from string, filmID uint64, args []string) (sdk.Msg, error) {
				nums, err := parseUint64s(args[0], args[1], args[3], args[4])
				if err != nil {
					return nil, err
				}
				return &types.MsgSetMintInfo{Studio: from, FilmID: filmID, Tier: nums[0], MaxMintAmount: nums[1],
					MintPrice: args[2], FeePercent: nums[2], RevenuePercent: nums[3]}, nil
			}),
		filmTxCmd("mint [film-id] [pay-to] [denom]", "Buy a revenue nft", 3, func(from string, filmID uint64, args []string) (sdk.Msg, error) {
			return &types.MsgMint{Sender: from, FilmID: filmID, PayTo: args[0], Denom: args[1]}, nil
		}),
		newTxCmd("mint-batch [film-ids] [payees] [denom]", "Buy one revenue nft per film and payee, comma separated", cobra.ExactArgs(3),
			func(_ *cobra.Command, from string, args []string) (sdk.Msg, error) {
				filmIDs, err := parseUint64List(args[0])
				if err != nil {
					return nil, err
				}
				return &types.MsgMintToBatch{Sender: from, FilmIDs: filmIDs, Payees: strings.Split(args[1], ","), Denom: args[2]}, nil
			}),
		filmTxCmd("set-tier-info [film-id] [min-amounts] [max-amounts]", "Set the investor tier bands, comma separated", 3,
			func(from string, filmID uint64, args []string) (sdk.Msg, error) {
				return &types.MsgSetTierInfo{Studio: from, FilmID: filmID,
					MinAmounts: strings.Split(args[0], ","), MaxAmounts: strings.Split(args[1], ",")}, nil
			}),
		filmTxCmd("deploy-tier-nft [film-id] [tier] [name] [symbol]", "Deploy the nft collection of an investor tier", 4,
			func(from string, filmID uint64, args []string) (sdk.Msg, error) {
				tier, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return nil, sdkerrors.Wrap(err, "tier")
				}
				return &types.MsgDeployTierNFTContract{Studio: from, FilmID: filmID, Tier: tier, Name: args[1], Symbol: args[2]}, nil
			}),
		filmTxCmd("mint-tier-nft [film-id]", "Mint the tier nft of the own deposit", 1, func(from string, filmID uint64, _ []string) (sdk.Msg, error) {
			return &types.MsgMintTierNft{Sender: from, FilmID: filmID}, nil
		}),
		newTxCmd("update-property-for-testing [name|flag] [value]", "Set a property directly, auditor only", cobra.ExactArgs(2),
			func(_ *cobra.Command, from string, args []string) (sdk.Msg, error) {
				f, err := types.PropertyFlagFromString(args[0])
				if err != nil {
					return nil, err
				}
				value, err := strconv.ParseUint(args[1], 10, 64)
				if err != nil {
					return nil, sdkerrors.Wrap(err, "value")
				}
				return &types.MsgUpdatePropertyForTesting{Auditor: from, Flag: uint64(f), Value: value}, nil
			}),
	)
	return txCmd
}

// NewSubmitProposalCmd opens a property, auditor or reward fund proposal
func NewSubmitProposalCmd() *cobra.Command {
	cmd := newTxCmd("submit-proposal [property|auditor|reward_fund]", "Open a governance proposal", cobra.ExactArgs(1),
		func(cmd *cobra.Command, from string, args []string) (sdk.Msg, error) {
			kind, err := proposalKindFromString(args[0])
			if err != nil {
				return nil, err
			}
			msg := &types.MsgSubmitProposal{Creator: from, Kind: uint32(kind)}
			if msg.Title, err = cmd.Flags().GetString(FlagTitle); err != nil {
				return nil, err
			}
			if msg.Description, err = cmd.Flags().GetString(FlagDescription); err != nil {
				return nil, err
			}
			if kind != types.ProposalKindProperty {
				msg.Target, err = cmd.Flags().GetString(FlagTarget)
				return msg, err
			}
			name, err := cmd.Flags().GetString(FlagProperty)
			if err != nil {
				return nil, err
			}
			f, err := types.PropertyFlagFromString(name)
			if err != nil {
				return nil, err
			}
			msg.Flag = uint64(f)
			msg.Value, err = cmd.Flags().GetUint64(FlagValue)
			return msg, err
		})
	cmd.Long = `Property proposals take the --property name and its new --value. Auditor and
reward fund proposals take the candidate or fund address as --target.`
	cmd.Flags().AddFlagSet(flagSetProposalText())
	cmd.Flags().String(FlagProperty, "", "The property name or flag")
	cmd.Flags().Uint64(FlagValue, 0, "The new property value")
	cmd.Flags().String(FlagTarget, "", "The auditor candidate or reward fund address")
	_ = cmd.MarkFlagRequired(FlagTitle)
	return cmd
}

// NewCreateFilmCmd lists a film of the sender
func NewCreateFilmCmd() *cobra.Command {
	cmd := newTxCmd("create-film [listing|funding]", "List a new film", cobra.ExactArgs(1),
		func(cmd *cobra.Command, from string, args []string) (sdk.Msg, error) {
			fundType, err := fundTypeFromString(args[0])
			if err != nil {
				return nil, err
			}
			noVote, err := cmd.Flags().GetBool(FlagNoVote)
			if err != nil {
				return nil, err
			}
			return &types.MsgProposalFilmCreate{Studio: from, FundType: uint32(fundType), NoVote: noVote}, nil
		})
	cmd.Flags().Bool(FlagNoVote, false, "Approve the film on update without a vote")
	return cmd
}

// NewUpdateFilmCmd sets the terms of a listed film
func NewUpdateFilmCmd() *cobra.Command {
	cmd := newTxCmd("update-film [film-id]", "Complete the terms of a listed film", cobra.ExactArgs(1),
		func(cmd *cobra.Command, from string, args []string) (sdk.Msg, error) {
			filmID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return nil, sdkerrors.Wrap(err, "film id")
			}
			return buildFilmUpdate(cmd.Flags(), from, filmID)
		})
	cmd.Flags().AddFlagSet(flagSetProposalText())
	cmd.Flags().String(FlagPayees, "", "Comma separated payee addresses")
	cmd.Flags().String(FlagShares, "", "Comma separated payee shares in units of 1e-8 %")
	cmd.Flags().String(FlagRaiseAmount, "0", "The amount to raise in 18 decimals")
	cmd.Flags().Uint64(FlagFundPeriod, 0, "The fund period in seconds")
	cmd.Flags().Bool(FlagEnableClaimer, false, "Enable the revenue claimer")
	return cmd
}

func buildFilmUpdate(fs *flag.FlagSet, from string, filmID uint64) (*types.MsgProposalFilmUpdate, error) {
	msg := &types.MsgProposalFilmUpdate{Studio: from, FilmID: filmID}
	var err error
	if msg.Title, err = fs.GetString(FlagTitle); err != nil {
		return nil, err
	}
	if msg.Description, err = fs.GetString(FlagDescription); err != nil {
		return nil, err
	}
	payees, err := fs.GetString(FlagPayees)
	if err != nil {
		return nil, err
	}
	if payees != "" {
		msg.Payees = strings.Split(payees, ",")
	}
	shares, err := fs.GetString(FlagShares)
	if err != nil {
		return nil, err
	}
	if shares != "" {
		if msg.SharePercents, err = parseUint64List(shares); err != nil {
			return nil, sdkerrors.Wrap(err, "shares")
		}
	}
	if msg.RaiseAmount, err = fs.GetString(FlagRaiseAmount); err != nil {
		return nil, err
	}
	if msg.FundPeriod, err = fs.GetUint64(FlagFundPeriod); err != nil {
		return nil, err
	}
	msg.EnableClaimer, err = fs.GetBool(FlagEnableClaimer)
	return msg, err
}

// newTxCmd builds a command that signs and broadcasts the message returned by build
func newTxCmd(use, short string, args cobra.PositionalArgs, build func(cmd *cobra.Command, from string, args []string) (sdk.Msg, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			msg, err := build(cmd, clientCtx.GetFromAddress().String(), args)
			if err != nil {
				return err
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func amountTxCmd(use, short string, build func(from, amount string) sdk.Msg) *cobra.Command {
	return newTxCmd(use, short, cobra.ExactArgs(1), func(_ *cobra.Command, from string, args []string) (sdk.Msg, error) {
		return build(from, args[0]), nil
	})
}

// filmTxCmd parses the leading film id and passes the remaining args
func filmTxCmd(use, short string, n int, build func(from string, filmID uint64, args []string) (sdk.Msg, error)) *cobra.Command {
	return newTxCmd(use, short, cobra.ExactArgs(n), func(_ *cobra.Command, from string, args []string) (sdk.Msg, error) {
		filmID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return nil, sdkerrors.Wrap(err, "film id")
		}
		return build(from, filmID, args[1:])
	})
}

// parseTrack reads the kind, track flag and index of a governance proposal
func parseTrack(args []string) (types.ProposalKind, uint64, uint64, error) {
	kind, err := proposalKindFromString(args[0])
	if err != nil {
		return 0, 0, 0, err
	}
	var trackFlag uint64
	if kind == types.ProposalKindProperty {
		f, err := types.PropertyFlagFromString(args[1])
		if err != nil {
			return 0, 0, 0, err
		}
		trackFlag = uint64(f)
	} else if trackFlag, err = strconv.ParseUint(args[1], 10, 64); err != nil {
		return 0, 0, 0, sdkerrors.Wrap(err, "flag")
	}
	index, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return 0, 0, 0, sdkerrors.Wrap(err, "index")
	}
	return kind, trackFlag, index, nil
}

func voteChoiceFromString(s string) (types.VoteChoice, error) {
	for _, c := range []types.VoteChoice{types.VoteYes, types.VoteNo, types.VoteAbstain} {
		if c.String() == strings.ToLower(strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return types.VoteUndefined, fmt.Errorf("unknown vote choice: %q", s)
}

func fundTypeFromString(s string) (types.FundType, error) {
	switch s {
	case "listing":
		return types.FundTypeListing, nil
	case "funding":
		return types.FundTypeFunding, nil
	default:
		return 0, fmt.Errorf("unknown fund type: %q", s)
	}
}

func parseUint64List(s string) ([]uint64, error) {
	return parseUint64s(strings.Split(s, ",")...)
}

func parseUint64s(s ...string) ([]uint64, error) {
	res := make([]uint64, len(s))
	for i, v := range s {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}
