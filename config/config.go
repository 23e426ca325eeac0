package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const serviceAccountNamespacePath = "/var/run/secrets/kubernetes.io/serviceaccount/namespace"

type ServerConfig struct {
	Host string `mapstructure:"host"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

type KubernetesConfig struct {
	KubeConfigPath string  `mapstructure:"kubeconfig_path"`
	InCluster      bool    `mapstructure:"in_cluster"`
	PageSize       int64   `mapstructure:"page_size"`
	QPS            float32 `mapstructure:"qps"`
	Burst          int     `mapstructure:"burst"`
}

// DiscoveryConfig selects how peer agents are located.
// Mode is either "dns" (SRV records) or "endpointslices".
type DiscoveryConfig struct {
	Mode          string `mapstructure:"mode"`
	Namespace     string `mapstructure:"namespace"`
	Service       string `mapstructure:"service"`
	PortName      string `mapstructure:"port_name"`
	Protocol      string `mapstructure:"protocol"`
	ClusterDomain string `mapstructure:"cluster_domain"`
}

// SRVName returns the fully qualified service name used for the SRV lookup.
func (d DiscoveryConfig) SRVName() string {
	return d.Service + "." + d.Namespace + ".svc." + d.ClusterDomain
}

type CollectorConfig struct {
	Timeout        time.Duration `mapstructure:"timeout"`
	MaxConcurrency int           `mapstructure:"max_concurrency"`
	AllowPartial   bool          `mapstructure:"allow_partial"`
}

type GraphConfig struct {
	ExcludeNamespaces []string `mapstructure:"exclude_namespaces"`
	ServiceCIDR       string   `mapstructure:"service_cidr"`
	CollapseHostnames []string `mapstructure:"collapse_hostnames"`
}

type RenderConfig struct {
	Binary string `mapstructure:"binary"`
	Engine string `mapstructure:"engine"`
}

type TopologyConfig struct {
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Kubernetes KubernetesConfig `mapstructure:"kubernetes"`
	Discovery  DiscoveryConfig  `mapstructure:"discovery"`
	Collector  CollectorConfig  `mapstructure:"collector"`
	Graph      GraphConfig      `mapstructure:"graph"`
	Render     RenderConfig     `mapstructure:"render"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", ":3001")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("kubernetes.page_size", 500)
	v.SetDefault("kubernetes.qps", 20)
	v.SetDefault("kubernetes.burst", 50)
	v.SetDefault("discovery.mode", "dns")
	v.SetDefault("discovery.service", "netstat-server")
	v.SetDefault("discovery.port_name", "http")
	v.SetDefault("discovery.protocol", "tcp")
	v.SetDefault("discovery.cluster_domain", "cluster.local")
	v.SetDefault("collector.timeout", 10*time.Second)
	v.SetDefault("collector.max_concurrency", 0)
	v.SetDefault("collector.allow_partial", false)
	v.SetDefault("graph.exclude_namespaces", []string{"longhorn-system", "metallb-system", "prometheus-operator"})
	v.SetDefault("graph.service_cidr", "10.96.0.0/12")
	v.SetDefault("render.binary", "dot")
	v.SetDefault("render.engine", "sfdp")
}

// InitTopologyConfig reads <configName>.toml from configPath (or the repository
// config directory) and overlays TOPOLOGY_* environment variables.
func InitTopologyConfig(configName string, configPath string) (TopologyConfig, error) {
	var cfg TopologyConfig
	v := viper.New()
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = "topology_config"
	}
	v.AddConfigPath(GetAbsPath("config"))
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.SetEnvPrefix("TOPOLOGY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("discovery.namespace", "TOPOLOGY_DISCOVERY_NAMESPACE", "POD_NAMESPACE"); err != nil {
		return cfg, err
	}
	if err := v.BindEnv("kubernetes.kubeconfig_path", "TOPOLOGY_KUBERNETES_KUBECONFIG_PATH", "KUBECONFIG"); err != nil {
		return cfg, err
	}
	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		return cfg, err
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return cfg, err
	}
	if cfg.Discovery.Namespace == "" {
		cfg.Discovery.Namespace = namespaceFromServiceAccount()
	}
	return cfg, nil
}

func namespaceFromServiceAccount() string {
	data, err := os.ReadFile(serviceAccountNamespacePath)
	if err != nil {
		return "default"
	}
	return strings.TrimSpace(string(data))
}

// GetAbsPath returns the absolute path by joining the given paths with the project root directory
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(0)
	basePath := filepath.Dir(filePath)
	rootPath := filepath.Join(basePath, "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}
