package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/server"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/x/genutil"
	genutiltypes "github.com/cosmos/cosmos-sdk/x/genutil/types"
	"github.com/spf13/cobra"
	tmtypes "github.com/tendermint/tendermint/types"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// GenesisCommands returns the commands that alter the film dao section of the genesis file
func GenesisCommands() []*cobra.Command {
	return []*cobra.Command{
		SetGenesisAuditorCmd(),
		AddGenesisDepositAssetCmd(),
	}
}

// SetGenesisAuditorCmd sets the administrator of the film dao in genesis
func SetGenesisAuditorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-genesis-auditor [address]",
		Short: "Set the film dao auditor in genesis.json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return sdkerrors.Wrap(err, "auditor")
			}
			return AlterModuleState(cmd, func(state *types.GenesisState, _ map[string]json.RawMessage) error {
				state.Auditor = addr
				return nil
			})
		},
	}
	cmd.Flags().String(flags.FlagHome, "", "The application home directory")
	return cmd
}

// AddGenesisDepositAssetCmd allows an asset for film deposits in genesis
func AddGenesisDepositAssetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-genesis-deposit-asset [denom] [decimals]",
		Short: "Allow an asset for film funding in genesis.json",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			decimals, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return sdkerrors.Wrap(err, "decimals")
			}
			asset := types.DepositAsset{Denom: args[0], Decimals: uint32(decimals)}
			if err := asset.ValidateBasic(); err != nil {
				return err
			}
			return AlterModuleState(cmd, func(state *types.GenesisState, _ map[string]json.RawMessage) error {
				for _, a := range state.DepositAssets {
					if a.Denom == asset.Denom {
						return types.ErrAssetExists.Wrap(asset.Denom)
					}
				}
				state.DepositAssets = append(state.DepositAssets, asset)
				return nil
			})
		},
	}
	cmd.Flags().String(flags.FlagHome, "", "The application home directory")
	return cmd
}

// GenesisData is the genesis file content with the decoded film dao section
type GenesisData struct {
	GenesisFile string
	GenDoc      *tmtypes.GenesisDoc
	AppState    map[string]json.RawMessage
	ModuleState types.GenesisState
}

// ReadGenesis loads the genesis file from the default or set home dir. A missing film
// dao section is read as the default state.
func ReadGenesis(cmd *cobra.Command) (*GenesisData, error) {
	clientCtx := client.GetClientContextFromCmd(cmd)
	serverCtx := server.GetServerContextFromCmd(cmd)
	config := serverCtx.Config
	config.SetRoot(clientCtx.HomeDir)

	genFile := config.GenesisFile()
	appState, genDoc, err := genutiltypes.GenesisStateFromGenFile(genFile)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal genesis state: %w", err)
	}
	state := types.DefaultGenesisState()
	if appState[types.ModuleName] != nil {
		if err := types.ModuleCdc.UnmarshalJSON(appState[types.ModuleName], &state); err != nil {
			return nil, sdkerrors.Wrap(err, "film dao genesis state")
		}
	}
	return &GenesisData{
		GenesisFile: genFile,
		GenDoc:      genDoc,
		AppState:    appState,
		ModuleState: state,
	}, nil
}

// AlterModuleState loads the genesis file, calls the callback function to modify the
// film dao section and stores the result. The auditor may still be unset.
func AlterModuleState(cmd *cobra.Command, callback func(state *types.GenesisState, appState map[string]json.RawMessage) error) error {
	g, err := ReadGenesis(cmd)
	if err != nil {
		return err
	}
	if err := callback(&g.ModuleState, g.AppState); err != nil {
		return err
	}
	if err := g.ModuleState.Params.ValidateBasic(); err != nil {
		return err
	}
	bz, err := types.ModuleCdc.MarshalJSON(g.ModuleState)
	if err != nil {
		return sdkerrors.Wrap(err, "marshal film dao genesis state")
	}
	g.AppState[types.ModuleName] = bz
	appStateJSON, err := json.Marshal(g.AppState)
	if err != nil {
		return sdkerrors.Wrap(err, "marshal application genesis state")
	}
	g.GenDoc.AppState = appStateJSON
	return genutil.ExportGenesisFile(g.GenDoc, g.GenesisFile)
}
