package kubernetes

import (
	"context"
	"fmt"
	"time"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/Gthulhu/topology/pkg/logger"
	"github.com/pkg/errors"
	apiv1 "k8s.io/api/core/v1"
	discoveryv1 "k8s.io/api/discovery/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/tools/pager"
)

// Options contains Kubernetes adapter options
type Options struct {
	KubeConfigPath string
	InCluster      bool
	PageSize       int64
	QPS            float32
	Burst          int
}

// NewK8SAdapter creates a new Kubernetes adapter.
// Supports two modes:
// 1. When a kubeconfig path is set (e.g. through KUBECONFIG), use it, even if InCluster is set
// 2. Otherwise, when running inside the cluster, use in-cluster configuration
func NewK8SAdapter(options Options) (*K8SClient, error) {
	var config *rest.Config
	var err error
	log := logger.Logger(context.Background())

	switch {
	case options.KubeConfigPath != "":
		log.Info().Str("path", options.KubeConfigPath).Msg("using Kubernetes config")
		config, err = clientcmd.BuildConfigFromFlags("", options.KubeConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to build kubeconfig from %s: %w", options.KubeConfigPath, err)
		}
	case options.InCluster:
		log.Info().Msg("using in-cluster Kubernetes configuration")
		config, err = rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create in-cluster config: %w", err)
		}
	default:
		return nil, domain.ErrNoKubeConfig
	}

	config.Timeout = 10 * time.Second
	if options.QPS > 0 {
		config.QPS = options.QPS
	}
	if options.Burst > 0 {
		config.Burst = options.Burst
	}

	kubeClient, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kubernetes client: %w", err)
	}
	return NewK8SAdapterFromClient(kubeClient, options.PageSize), nil
}

func NewK8SAdapterFromClient(kubeClient kubernetes.Interface, pageSize int64) *K8SClient {
	return &K8SClient{kubeClient: kubeClient, pageSize: pageSize}
}

type K8SClient struct {
	kubeClient kubernetes.Interface
	pageSize   int64
}

// ListPods lists the pods of every namespace, one page at a time.
func (k *K8SClient) ListPods(ctx context.Context) ([]*domain.Pod, error) {
	if k.kubeClient == nil {
		return nil, domain.ErrNoClient
	}
	p := pager.New(pager.SimplePageFunc(func(opts metav1.ListOptions) (runtime.Object, error) {
		return k.kubeClient.CoreV1().Pods(metav1.NamespaceAll).List(ctx, opts)
	}))
	if k.pageSize > 0 {
		p.PageSize = k.pageSize
	}

	pods := make([]*domain.Pod, 0)
	err := p.EachListItem(ctx, metav1.ListOptions{}, func(obj runtime.Object) error {
		pod, ok := obj.(*apiv1.Pod)
		if !ok {
			return fmt.Errorf("unexpected object %T in pod list", obj)
		}
		pods = append(pods, convertPod(pod))
		return nil
	})
	if err != nil {
		return nil, errors.WithMessage(err, "list pods")
	}
	return pods, nil
}

func convertPod(pod *apiv1.Pod) *domain.Pod {
	result := &domain.Pod{
		Name:         pod.Name,
		K8SNamespace: pod.Namespace,
		IP:           pod.Status.PodIP,
		Owners:       make([]domain.OwnerReference, 0, len(pod.OwnerReferences)),
		Containers:   make([]domain.Container, 0, len(pod.Status.ContainerStatuses)),
	}
	for _, owner := range pod.OwnerReferences {
		result.Owners = append(result.Owners, domain.OwnerReference{Kind: owner.Kind, Name: owner.Name})
	}
	for _, status := range pod.Status.ContainerStatuses {
		result.Containers = append(result.Containers, domain.Container{
			ContainerID: status.ContainerID,
			Name:        status.Name,
		})
	}
	return result
}

// ListAgentEndpoints returns the ready addresses of the EndpointSlices backing a service.
// The port named opt.PortName is used, or the first port of the slice when no port has that name.
func (k *K8SClient) ListAgentEndpoints(ctx context.Context, opt *domain.QueryAgentEndpointsOptions) ([]*domain.AgentTarget, error) {
	if k.kubeClient == nil {
		return nil, domain.ErrNoClient
	}
	selector := labels.Set{discoveryv1.LabelServiceName: opt.ServiceName}.String()
	slices, err := k.kubeClient.DiscoveryV1().EndpointSlices(opt.K8SNamespace).List(ctx, metav1.ListOptions{LabelSelector: selector})
	if err != nil {
		return nil, errors.WithMessagef(err, "list endpointslices of %s/%s", opt.K8SNamespace, opt.ServiceName)
	}

	targets := make([]*domain.AgentTarget, 0)
	seen := make(map[string]struct{})
	for _, slice := range slices.Items {
		port, ok := slicePort(slice.Ports, opt.PortName)
		if !ok {
			logger.Logger(ctx).Debug().Msgf("endpointslice %s has no usable port", slice.Name)
			continue
		}
		for _, endpoint := range slice.Endpoints {
			if endpoint.Conditions.Ready != nil && !*endpoint.Conditions.Ready {
				continue
			}
			for _, addr := range endpoint.Addresses {
				target := &domain.AgentTarget{Host: addr, Port: port}
				if _, dup := seen[target.String()]; dup {
					continue
				}
				seen[target.String()] = struct{}{}
				targets = append(targets, target)
			}
		}
	}
	return targets, nil
}

func slicePort(ports []discoveryv1.EndpointPort, name string) (int, bool) {
	first := -1
	for _, port := range ports {
		if port.Port == nil {
			continue
		}
		if port.Name != nil && *port.Name == name {
			return int(*port.Port), true
		}
		if first < 0 {
			first = int(*port.Port)
		}
	}
	return first, first >= 0
}
