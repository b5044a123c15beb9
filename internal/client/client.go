package client

import (
	"fmt"

	"go.uber.org/zap"
)

// ClusterClient defines the capability set a cluster backend must expose.
// Implementations never return errors: when a backend cannot answer, it
// reports the problem in-band so the dashboard always has something to render.
type ClusterClient interface {
	// Status returns a short description of the backend connection state
	Status() string

	// GetPods returns the known workload names in a stable order
	GetPods() []string

	// GetContexts returns the selectable cluster contexts
	GetContexts() []string
}

// PodsNotImplemented is the sentinel pod entry reported by backends that
// cannot list pods yet.
const PodsNotImplemented = "POD LISTING NOT IMPLEMENTED"

// DefaultContexts returns the context list used by clients that do not
// provide their own.
func DefaultContexts() []string {
	return []string{"default", "dev", "prod"}
}

// Base supplies the default GetContexts behaviour. Variants embed it and may
// shadow GetContexts with their own.
type Base struct{}

// GetContexts returns DefaultContexts
func (Base) GetContexts() []string {
	return DefaultContexts()
}

// Metadata carries the optional backend connection details handed to the
// real client. It is treated as opaque by everything else.
type Metadata struct {
	DefaultContext string
	Contexts       []string
	Clusters       []string
	Users          []string
}

// New builds the client variant selected by the simulated flag.
func New(simulated bool, meta Metadata, logger *zap.Logger) ClusterClient {
	if simulated {
		logger.Info("Simulated cluster client initialized")
		return NewSimulatedClient()
	}

	c := NewRealClient(meta)
	logger.Info("Real cluster client initialized (stub)",
		zap.String("context", c.Context()),
		zap.Int("contexts", len(meta.Contexts)),
		zap.Strings("clusters", meta.Clusters),
		zap.Strings("users", meta.Users),
	)
	return c
}

// SimulatedClient serves fixed data for demos and tests
type SimulatedClient struct {
	Base
}

// NewSimulatedClient creates a simulated client
func NewSimulatedClient() *SimulatedClient {
	return &SimulatedClient{}
}

func (c *SimulatedClient) Status() string {
	return "Simulating cluster"
}

func (c *SimulatedClient) GetPods() []string {
	return []string{"pod-1", "pod-2", "pod-3"}
}

// RealClient is the extension point for a live cluster backend. It performs
// no network I/O and reports PodsNotImplemented for pod listings.
type RealClient struct {
	Base
	meta Metadata
}

// NewRealClient creates a real client stub for the given metadata
func NewRealClient(meta Metadata) *RealClient {
	return &RealClient{meta: meta}
}

// Context returns the context the client is bound to
func (c *RealClient) Context() string {
	if c.meta.DefaultContext == "" {
		return "default"
	}
	return c.meta.DefaultContext
}

func (c *RealClient) Status() string {
	return fmt.Sprintf("Real cluster client (stub) with context '%s'", c.Context())
}

func (c *RealClient) GetPods() []string {
	// TODO: list pods through client-go once the real backend lands
	return []string{PodsNotImplemented}
}

// GetContexts returns the discovered contexts, or the defaults when none
// were discovered.
func (c *RealClient) GetContexts() []string {
	if len(c.meta.Contexts) == 0 {
		return c.Base.GetContexts()
	}
	out := make([]string, len(c.meta.Contexts))
	copy(out, c.meta.Contexts)
	return out
}
