package jaeger

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// InitJaeger 初始化全局tracer 采样策略为全量 便于排查审核联动问题
func InitJaeger(service string) (opentracing.Tracer, io.Closer) {
	cfg := jaegercfg.Configuration{
		ServiceName: service,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans: true,
		},
	}
	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		logrus.Errorf("failed to init jaeger tracer: %v", err)
		return opentracing.NoopTracer{}, io.NopCloser(nil)
	}
	opentracing.SetGlobalTracer(tracer)
	return tracer, closer
}
