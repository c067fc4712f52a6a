package main

import (
	"github.com/cosmos/cosmos-sdk/x/crisis"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/cinedao/cinedao/app"
	"github.com/cinedao/cinedao/x/filmdao/tracing"
	filmdaotypes "github.com/cinedao/cinedao/x/filmdao/types"
)

const (
	flagPower   = "power"
	flagMoniker = "moniker"
)

// appFlags are read by the app constructor from the server options
func appFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("app", flag.ContinueOnError)
	fs.Uint64(app.FlagSimulationGasLimit, 0, "Max gas a simulated tx may use. Defaults to the block gas limit")
	return fs
}

func addModuleInitFlags(startCmd *cobra.Command) {
	crisis.AddModuleInitFlags(startCmd)
	filmdaotypes.AddModuleInitFlags(startCmd)
	tracing.AddModuleInitFlags(startCmd)
	startCmd.Flags().AddFlagSet(appFlags())
}
