package main

import (
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	"github.com/cosmos/cosmos-sdk/server"
	"github.com/cosmos/cosmos-sdk/x/genutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	tmtypes "github.com/tendermint/tendermint/types"
)

// AddGenesisValidatorCmd adds the node key to the validator set in genesis.json.
// The chain has no staking module so the genesis validators are final.
func AddGenesisValidatorCmd(defaultNodeHome string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-genesis-validator",
		Short: "Add this node's validator key to genesis.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx := client.GetClientContextFromCmd(cmd)
			serverCtx := server.GetServerContextFromCmd(cmd)
			config := serverCtx.Config
			config.SetRoot(clientCtx.HomeDir)

			power, err := cmd.Flags().GetInt64(flagPower)
			if err != nil {
				return err
			}
			if power <= 0 {
				return errors.Errorf("power must be positive: %d", power)
			}
			moniker, err := cmd.Flags().GetString(flagMoniker)
			if err != nil {
				return err
			}
			if moniker == "" {
				moniker = config.Moniker
			}

			_, valPubKey, err := genutil.InitializeNodeValidatorFiles(config)
			if err != nil {
				return errors.Wrap(err, "validator key")
			}
			tmPubKey, err := cryptocodec.ToTmPubKeyInterface(valPubKey)
			if err != nil {
				return errors.Wrap(err, "convert validator key")
			}

			genFile := config.GenesisFile()
			genDoc, err := tmtypes.GenesisDocFromFile(genFile)
			if err != nil {
				return errors.Wrap(err, "read genesis file")
			}
			for _, v := range genDoc.Validators {
				if v.PubKey.Equals(tmPubKey) {
					return errors.Errorf("validator %s exists already", v.Address)
				}
			}
			genDoc.Validators = append(genDoc.Validators, tmtypes.GenesisValidator{
				Address: tmPubKey.Address(),
				PubKey:  tmPubKey,
				Power:   power,
				Name:    moniker,
			})
			return genutil.ExportGenesisFile(genDoc, genFile)
		},
	}
	cmd.Flags().Int64(flagPower, 10, "The voting power of the validator")
	cmd.Flags().String(flagMoniker, "", "The validator name. Defaults to the node moniker")
	cmd.Flags().String(flags.FlagHome, defaultNodeHome, "The application home directory")
	return cmd
}
