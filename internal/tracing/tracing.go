package tracing

import (
	"io"

	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go/config"
)

// Init installs the global jaeger tracer. The returned closer flushes
// pending spans and must be closed on shutdown.
func Init(serviceName string) (io.Closer, error) {
	cfg := config.Configuration{
		ServiceName: serviceName,
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
	}
	closer, err := cfg.InitGlobalTracer(serviceName)
	if err != nil {
		return nil, errors.Wrap(err, "cannot init tracing")
	}
	return closer, nil
}
