package types

import (
	servertypes "github.com/cosmos/cosmos-sdk/server/types"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// Module init related flags
const (
	flagLockVotingDeposit = "filmdao.lock-voting-deposit"
	flagTestingOverrides  = "filmdao.testing-overrides"
)

// Config is the node local module configuration. It must be the same on all nodes of a network.
type Config struct {
	// LockVotingDeposit keeps a voting deposit committed until the deadlines of the votes it backs
	LockVotingDeposit bool
	// TestingOverrides allows the auditor to set properties without a vote
	TestingOverrides bool
}

// DefaultConfig returns the production defaults
func DefaultConfig() Config {
	return Config{}
}

// AddModuleInitFlags implements servertypes.ModuleInitFlags interface.
func AddModuleInitFlags(startCmd *cobra.Command) {
	startCmd.Flags().Bool(flagLockVotingDeposit, false, "Keep voting deposits locked until the votes they back are tallied")
	startCmd.Flags().Bool(flagTestingOverrides, false, "Allow the auditor to set properties without a vote. Never enable on a public network")
}

// ReadConfig reads the module flags from the app options
func ReadConfig(opts servertypes.AppOptions) (Config, error) {
	cfg := DefaultConfig()
	var err error
	if v := opts.Get(flagLockVotingDeposit); v != nil {
		if cfg.LockVotingDeposit, err = cast.ToBoolE(v); err != nil {
			return cfg, err
		}
	}
	if v := opts.Get(flagTestingOverrides); v != nil {
		if cfg.TestingOverrides, err = cast.ToBoolE(v); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
