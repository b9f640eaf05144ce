package types

// ProtocolConfigs lists the attributes and feature flags of a protocol version in the order the node reports them.
type ProtocolConfigs struct {
	Configs         []ProtocolConfigAttr        `json:"configs"`
	FeatureFlags    []ProtocolConfigFeatureFlag `json:"featureFlags"`
	ProtocolVersion uint64                      `json:"protocolVersion"`
}

// ProtocolConfigAttr value is the typed value rendered as kind(value), or empty if the attribute is unset.
type ProtocolConfigAttr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type ProtocolConfigFeatureFlag struct {
	Key   string `json:"key"`
	Value bool   `json:"value"`
}

func (c *ProtocolConfigs) Config(key string) (ProtocolConfigAttr, bool) {
	for _, attr := range c.Configs {
		if attr.Key == key {
			return attr, true
		}
	}
	return ProtocolConfigAttr{}, false
}

func (c *ProtocolConfigs) FeatureFlag(key string) (ProtocolConfigFeatureFlag, bool) {
	for _, flag := range c.FeatureFlags {
		if flag.Key == key {
			return flag, true
		}
	}
	return ProtocolConfigFeatureFlag{}, false
}
