package app

import (
	"github.com/Gthulhu/topology/adapter/agent"
	"github.com/Gthulhu/topology/adapter/discovery"
	"github.com/Gthulhu/topology/adapter/kubernetes"
	"github.com/Gthulhu/topology/adapter/render"
	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/Gthulhu/topology/aggregator/rest"
	"github.com/Gthulhu/topology/aggregator/service"
	"github.com/Gthulhu/topology/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

func ConfigModule(cfg config.TopologyConfig) (fx.Option, error) {
	return fx.Options(
		fx.Provide(func() config.TopologyConfig {
			return cfg
		}),
		fx.Provide(func(topologyCfg config.TopologyConfig) config.ServerConfig {
			return topologyCfg.Server
		}),
		fx.Provide(func(topologyCfg config.TopologyConfig) config.KubernetesConfig {
			return topologyCfg.Kubernetes
		}),
		fx.Provide(func(topologyCfg config.TopologyConfig) config.DiscoveryConfig {
			return topologyCfg.Discovery
		}),
		fx.Provide(func(topologyCfg config.TopologyConfig) config.CollectorConfig {
			return topologyCfg.Collector
		}),
		fx.Provide(func(topologyCfg config.TopologyConfig) config.GraphConfig {
			return topologyCfg.Graph
		}),
		fx.Provide(func(topologyCfg config.TopologyConfig) config.RenderConfig {
			return topologyCfg.Render
		}),
	), nil
}

// MetricsModule provides a dedicated prometheus registry with the Go and process collectors.
func MetricsModule() fx.Option {
	return fx.Options(
		fx.Provide(func() *prometheus.Registry {
			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			return registry
		}),
		fx.Provide(func(registry *prometheus.Registry) prometheus.Registerer {
			return registry
		}),
		fx.Provide(func(registry *prometheus.Registry) prometheus.Gatherer {
			return registry
		}),
		fx.Provide(service.NewMetrics),
	)
}

// AdapterModule creates an Fx module that provides the cluster, discovery, agent and render adapters
func AdapterModule(cfg config.TopologyConfig) (fx.Option, error) {
	configModule, err := ConfigModule(cfg)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		configModule,
		fx.Provide(func(k8sCfg config.KubernetesConfig) (domain.K8SAdapter, error) {
			return kubernetes.NewK8SAdapter(kubernetes.Options{
				KubeConfigPath: k8sCfg.KubeConfigPath,
				InCluster:      k8sCfg.InCluster,
				PageSize:       k8sCfg.PageSize,
				QPS:            k8sCfg.QPS,
				Burst:          k8sCfg.Burst,
			})
		}),
		fx.Provide(discovery.NewDiscoverer),
		fx.Provide(func(collectorCfg config.CollectorConfig) domain.AgentAdapter {
			return agent.NewAgentClient(collectorCfg)
		}),
		fx.Provide(func(renderCfg config.RenderConfig) domain.Renderer {
			return render.NewGraphvizRenderer(renderCfg)
		}),
	), nil
}

// ServiceModule creates an Fx module that provides the service layer, return domain.Service
func ServiceModule(cfg config.TopologyConfig) (fx.Option, error) {
	adapterModule, err := AdapterModule(cfg)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		adapterModule,
		MetricsModule(),
		fx.Provide(service.NewService),
	), nil
}

// HandlerModule creates an Fx module that provides the REST handler, return *rest.Handler
func HandlerModule(cfg config.TopologyConfig) (fx.Option, error) {
	serviceModule, err := ServiceModule(cfg)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		serviceModule,
		fx.Provide(rest.NewHandler),
	), nil
}
