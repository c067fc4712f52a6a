package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/uber/jaeger-client-go"
	"github.com/uber/jaeger-client-go/config"
	"github.com/uber/jaeger-lib/metrics"
)

const serviceName = "cinedao"

// RunWithTracer starts a jaeger tracer before the given start command runs when the
// tracing flag is set. The tracer is flushed after the command returns.
func RunWithTracer(startCmd *cobra.Command) {
	otherRunE := startCmd.RunE
	var tracer io.Closer
	startCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if hasTracerFlagSet(cmd) {
			closer, err := startTracer()
			if err != nil {
				return err
			}
			tracer = closer
		}
		return otherRunE(cmd, args)
	}
	otherPostRun := startCmd.PostRun
	startCmd.PostRun = func(cmd *cobra.Command, args []string) {
		if tracer != nil {
			_ = tracer.Close()
		}
		if otherPostRun != nil {
			otherPostRun(cmd, args)
		}
	}
}

// startTracer samples every trace and reports to the local jaeger agent. The agent
// address can be overwritten with the JAEGER_AGENT_HOST and JAEGER_AGENT_PORT env vars.
func startTracer() (io.Closer, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "jaeger env config")
	}
	cfg.ServiceName = serviceName
	cfg.Sampler = &config.SamplerConfig{
		Type:  jaeger.SamplerTypeConst,
		Param: 1,
	}
	if cfg.Reporter == nil {
		cfg.Reporter = &config.ReporterConfig{}
	}
	cfg.Reporter.LogSpans = true

	tracer, closer, err := cfg.NewTracer(config.Metrics(metrics.NullFactory))
	if err != nil {
		return nil, errors.Wrap(err, "new tracer")
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}
