package tracing

import (
	servertypes "github.com/cosmos/cosmos-sdk/server/types"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// Module init related flags
const (
	flagOpenTracingEnabled = "filmdao.open-tracing"
)

var tracerEnabled bool

// AddModuleInitFlags implements servertypes.ModuleInitFlags interface.
func AddModuleInitFlags(startCmd *cobra.Command) {
	startCmd.Flags().Bool(flagOpenTracingEnabled, false, "Enable opentracing agent")
}

// ReadTracerConfig reads the tracer flag. The decorators in this package are no-ops until it is set.
func ReadTracerConfig(opts servertypes.AppOptions) error {
	v := opts.Get(flagOpenTracingEnabled)
	if v == nil {
		return nil
	}
	var err error
	tracerEnabled, err = cast.ToBoolE(v)
	return err
}

func hasTracerFlagSet(cmd *cobra.Command) bool {
	ok, err := cmd.Flags().GetBool(flagOpenTracingEnabled)
	return err == nil && ok
}
