package sysstats

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Labels of the standard networking stack catalog.
const (
	LabelPacketBufs = "SystemLayer_NumPacketBufs"
	LabelTimers     = "SystemLayer_NumTimersInUse"

	LabelRawEndpoints  = "InetLayer_NumRawEpsInUse"
	LabelTCPEndpoints  = "InetLayer_NumTCPEpsInUse"
	LabelUDPEndpoints  = "InetLayer_NumUDPEpsInUse"
	LabelTunEndpoints  = "InetLayer_NumTunEpsInUse"
	LabelDNSResolvers  = "InetLayer_NumDNSResolversInUse"
	LabelExchangeCtxs  = "ExchangeMgr_NumContextsInUse"
	LabelUMHandlers    = "ExchangeMgr_NumUMHandlersInUse"
	LabelBindings      = "ExchangeMgr_NumBindings"
	LabelConnections   = "MessageLayer_NumConnectionsInUse"
	LabelServiceMgrReq = "ServiceMgr_NumRequestsInUse"

	LabelLegacyViews        = "WDMLegacy_NumViewInUse"
	LabelLegacySubscribes   = "WDMLegacy_NumSubscribeInUse"
	LabelLegacyCancels      = "WDMLegacy_NumCancelInUse"
	LabelLegacyUpdates      = "WDMLegacy_NumUpdateInUse"
	LabelLegacyBindings     = "WDMLegacy_NumBindingsInUse"
	LabelLegacyTransactions = "WDMLegacy_NumTransactions"

	LabelTraits               = "kWDM_NumTraits"
	LabelSubscriptionClients  = "kWDM_NumSubscriptionClients"
	LabelSubscriptionHandlers = "kWDM_NumSubscriptionHandlers"
	LabelCommands             = "kWDM_NumCommands"
)

// ErrInvalidFeatures is returned when features violate a dependency rule.
var ErrInvalidFeatures = errors.New("sysstats: invalid features")

// Features selects which optional subsystems the stack is built with and
// therefore which kinds exist in its catalog.
type Features struct {
	RawEndpoints bool `yaml:"raw_endpoints"`
	TCPEndpoints bool `yaml:"tcp_endpoints"`
	UDPEndpoints bool `yaml:"udp_endpoints"`
	TunEndpoints bool `yaml:"tun_endpoints"`
	DNSResolvers bool `yaml:"dns_resolvers"`

	ServiceDirectory bool `yaml:"service_directory"`

	// LegacyClientSubscription adds the legacy WDM subscribe/cancel pools.
	LegacyClientSubscription bool `yaml:"legacy_client_subscription"`

	SubscriptionPublisher bool `yaml:"subscription_publisher"`
	SubscriptionClient    bool `yaml:"subscription_client"`
	// CustomCommands requires SubscriptionPublisher.
	CustomCommands bool `yaml:"custom_commands"`
}

// DefaultFeatures returns the configuration of a typical device build.
func DefaultFeatures() Features {
	return Features{
		RawEndpoints:          true,
		TCPEndpoints:          true,
		UDPEndpoints:          true,
		TunEndpoints:          true,
		DNSResolvers:          true,
		SubscriptionPublisher: true,
		SubscriptionClient:    true,
	}
}

// Validate checks feature dependencies.
func (f Features) Validate() error {
	if f.CustomCommands && !f.SubscriptionPublisher {
		return fmt.Errorf("%w: custom_commands requires subscription_publisher", ErrInvalidFeatures)
	}
	return nil
}

// ParseFeatures decodes a YAML feature document on top of DefaultFeatures.
// Unknown keys are rejected. Empty input yields the defaults.
func ParseFeatures(data []byte) (Features, error) {
	f := DefaultFeatures()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Features{}, fmt.Errorf("sysstats: decode features: %w", err)
	}
	if err := f.Validate(); err != nil {
		return Features{}, err
	}
	return f, nil
}

// StackCatalog returns the catalog of the networking stack built with f.
// Kinds always appear in the same relative order; disabled subsystems are
// simply absent. It panics if f does not pass Validate.
func StackCatalog(f Features) *Catalog {
	if err := f.Validate(); err != nil {
		panic(err)
	}
	labels := []string{LabelPacketBufs, LabelTimers}

	add := func(on bool, l ...string) {
		if on {
			labels = append(labels, l...)
		}
	}
	add(f.RawEndpoints, LabelRawEndpoints)
	add(f.TCPEndpoints, LabelTCPEndpoints)
	add(f.UDPEndpoints, LabelUDPEndpoints)
	add(f.TunEndpoints, LabelTunEndpoints)
	add(f.DNSResolvers, LabelDNSResolvers)
	add(true, LabelExchangeCtxs, LabelUMHandlers, LabelBindings, LabelConnections)
	add(f.ServiceDirectory, LabelServiceMgrReq)
	add(true, LabelLegacyViews)
	add(f.LegacyClientSubscription, LabelLegacySubscribes, LabelLegacyCancels)
	add(true, LabelLegacyUpdates, LabelLegacyBindings, LabelLegacyTransactions)
	add(f.SubscriptionPublisher, LabelTraits)
	add(f.SubscriptionClient, LabelSubscriptionClients)
	add(f.SubscriptionPublisher, LabelSubscriptionHandlers)
	add(f.CustomCommands, LabelCommands)

	// labels are constants and unique, so this cannot fail
	return MustCatalog(labels...)
}
