package cli

import (
	"fmt"
	"strconv"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/cinedao/cinedao/x/filmdao/keeper"
	"github.com/cinedao/cinedao/x/filmdao/types"
)

const (
	FlagTier  = "tier"
	FlagIndex = "index"
)

func flagSetTier() *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Uint64(FlagTier, 1, "The 1-based tier of the film")
	return fs
}

// GetQueryCmd returns the film dao query commands
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the film dao module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	queryCmd.AddCommand(
		simpleQueryCmd("params", "Query the film dao parameters", keeper.QueryParams),
		simpleQueryCmd("auditor", "Query the film dao auditor", keeper.QueryAuditor),
		simpleQueryCmd("base-uri", "Query the token metadata base uri", keeper.QueryBaseURI),
		simpleQueryCmd("reward-pool", "Query the staking reward pool", keeper.QueryRewardPool),
		GetCmdQueryProperty(),
		addressQueryCmd("staker [address]", "Query a staker", keeper.QueryStaker),
		addressQueryCmd("reward [address]", "Query the reward a staker can withdraw now", keeper.QueryReward),
		idQueryCmd("proposal [id]", "Query a proposal", keeper.QueryProposal),
		idQueryCmd("votes [proposal-id]", "Query the votes cast on a proposal", keeper.QueryVotes),
		idQueryCmd("collection [id]", "Query an nft collection", keeper.QueryCollection),
		GetCmdQueryProposalAt(),
		filmQueryCmd("film [film-id]", "Query a film", keeper.QueryFilm, false),
		filmQueryCmd("film-status [film-id]", "Query the status of a film", keeper.QueryFilmStatus, false),
		filmQueryCmd("deposits [film-id]", "Query the deposit ledger of a film", keeper.QueryDeposits, false),
		filmQueryCmd("tiers [film-id]", "Query the investor tiers of a film", keeper.QueryTiers, false),
		filmQueryCmd("mint-info [film-id]", "Query the revenue nft sale terms of a film", keeper.QueryMintInfo, false),
		filmQueryCmd("user-deposit [film-id] [address]", "Query the deposits of an account to a film", keeper.QueryUserDeposit, true),
		filmQueryCmd("tier-of-holder [film-id] [address]", "Query the tier an account received its tier nft in", keeper.QueryTierOfHolder, true),
		filmQueryCmd("user-tokens [film-id] [address]", "Query the revenue nft ids owned by an account", keeper.QueryUserTokens, true),
		GetCmdQueryTierSupply(),
		GetCmdQueryTierTokens(),
		GetCmdQueryNFTOwner(),
	)
	return queryCmd
}

func simpleQueryCmd(use, short, path string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return queryAndPrint(cmd, path, nil)
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func addressQueryCmd(use, short, path string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return sdkerrors.Wrap(err, "address")
			}
			return queryAndPrint(cmd, path, keeper.QueryAddressParams{Address: addr})
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func idQueryCmd(use, short, path string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return sdkerrors.Wrap(err, "id")
			}
			return queryAndPrint(cmd, path, keeper.QueryIDParams{ID: id})
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func filmQueryCmd(use, short, path string, withAddress bool) *cobra.Command {
	args := cobra.ExactArgs(1)
	if withAddress {
		args = cobra.ExactArgs(2)
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseFilmParams(args)
			if err != nil {
				return err
			}
			return queryAndPrint(cmd, path, params)
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryProperty() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "property [name|flag]",
		Short:   "Query the current value of a governable property",
		Example: "property QuorumPercent",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := types.PropertyFlagFromString(args[0])
			if err != nil {
				return err
			}
			return queryAndPrint(cmd, keeper.QueryProperty, keeper.QueryPropertyParams{Flag: f})
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryProposalAt() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposal-at [property|auditor|reward_fund|film] [flag]",
		Short: "Query a proposal by its position in a governance track",
		Long: `The flag selects the track within the kind: the property name or number for
property proposals, the film id for film proposals and 0 for the others.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := proposalKindFromString(args[0])
			if err != nil {
				return err
			}
			var trackFlag uint64
			if kind == types.ProposalKindProperty {
				f, err := types.PropertyFlagFromString(args[1])
				if err != nil {
					return err
				}
				trackFlag = uint64(f)
			} else if trackFlag, err = strconv.ParseUint(args[1], 10, 64); err != nil {
				return sdkerrors.Wrap(err, "flag")
			}
			index, err := cmd.Flags().GetUint64(FlagIndex)
			if err != nil {
				return err
			}
			return queryAndPrint(cmd, keeper.QueryProposalAt, keeper.QueryProposalAtParams{Kind: kind, Flag: trackFlag, Index: index})
		},
	}
	cmd.Flags().Uint64(FlagIndex, 0, "The 0-based position in the track")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryTierSupply() *cobra.Command {
	return tierQueryCmd("tier-supply [film-id]", "Query the number of tier nfts minted in a tier", keeper.QueryTierSupply)
}

func GetCmdQueryTierTokens() *cobra.Command {
	return tierQueryCmd("tier-tokens [film-id]", "Query the token ids minted in a tier", keeper.QueryTierTokens)
}

func tierQueryCmd(use, short, path string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseFilmParams(args)
			if err != nil {
				return err
			}
			if params.Tier, err = cmd.Flags().GetUint64(FlagTier); err != nil {
				return err
			}
			return queryAndPrint(cmd, path, params)
		},
	}
	cmd.Flags().AddFlagSet(flagSetTier())
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryNFTOwner queries the owner of a tier nft. Tier 0 selects the revenue collection.
func GetCmdQueryNFTOwner() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nft-owner [film-id] [token-id]",
		Short: "Query the owner of a film nft",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseFilmParams(args[:1])
			if err != nil {
				return err
			}
			if params.TokenID, err = strconv.ParseUint(args[1], 10, 64); err != nil {
				return sdkerrors.Wrap(err, "token id")
			}
			if params.Tier, err = cmd.Flags().GetUint64(FlagTier); err != nil {
				return err
			}
			return queryAndPrint(cmd, keeper.QueryNFTOwner, params)
		},
	}
	cmd.Flags().AddFlagSet(flagSetTier())
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func parseFilmParams(args []string) (keeper.QueryFilmParams, error) {
	var params keeper.QueryFilmParams
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return params, sdkerrors.Wrap(err, "film id")
	}
	params.FilmID = id
	if len(args) > 1 {
		if params.Address, err = sdk.AccAddressFromBech32(args[1]); err != nil {
			return params, sdkerrors.Wrap(err, "address")
		}
	}
	return params, nil
}

func proposalKindFromString(s string) (types.ProposalKind, error) {
	for _, k := range []types.ProposalKind{types.ProposalKindProperty, types.ProposalKindAuditor, types.ProposalKindRewardFund, types.ProposalKindFilm} {
		if k.String() == s {
			return k, nil
		}
	}
	return types.ProposalKindUndefined, fmt.Errorf("unknown proposal kind: %q", s)
}

// queryAndPrint sends the amino json encoded params to the legacy querier route
func queryAndPrint(cmd *cobra.Command, path string, params interface{}) error {
	clientCtx, err := client.GetClientQueryContext(cmd)
	if err != nil {
		return err
	}
	var bz []byte
	if params != nil {
		if bz, err = clientCtx.LegacyAmino.MarshalJSON(params); err != nil {
			return err
		}
	}
	res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, path), bz)
	if err != nil {
		return err
	}
	return clientCtx.PrintBytes(res)
}
