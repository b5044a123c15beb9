package app

import (
	"fmt"
	"sort"

	"github.com/yourusername/clust/internal/client"
	"k8s.io/client-go/tools/clientcmd"
)

// kubeconfigInfo is the subset of a kubeconfig the real client is told about
type kubeconfigInfo struct {
	CurrentContext string
	Contexts       []string
	Clusters       []string
	Users          []string
}

// loadKubeconfig reads context, cluster and user names from a kubeconfig
// file. Names are sorted so the dashboard lists them in a stable order.
func loadKubeconfig(path string) (*kubeconfigInfo, error) {
	config, err := clientcmd.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	info := &kubeconfigInfo{
		CurrentContext: config.CurrentContext,
		Contexts:       make([]string, 0, len(config.Contexts)),
		Clusters:       make([]string, 0, len(config.Clusters)),
		Users:          make([]string, 0, len(config.AuthInfos)),
	}
	for name := range config.Contexts {
		info.Contexts = append(info.Contexts, name)
	}
	for name := range config.Clusters {
		info.Clusters = append(info.Clusters, name)
	}
	for name := range config.AuthInfos {
		info.Users = append(info.Users, name)
	}

	sort.Strings(info.Contexts)
	sort.Strings(info.Clusters)
	sort.Strings(info.Users)

	return info, nil
}

// mergeMetadata fills the gaps in meta from a kubeconfig. Values set in the
// clust config win.
func mergeMetadata(meta client.Metadata, info *kubeconfigInfo) client.Metadata {
	if meta.DefaultContext == "" {
		meta.DefaultContext = info.CurrentContext
	}
	if len(meta.Contexts) == 0 {
		meta.Contexts = info.Contexts
	}
	if len(meta.Clusters) == 0 {
		meta.Clusters = info.Clusters
	}
	if len(meta.Users) == 0 {
		meta.Users = info.Users
	}
	return meta
}
