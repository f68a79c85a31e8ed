package config

// NoCConfig is the declarative description of a mesh, its damaged links and its flows.
type NoCConfig struct {
	Grid        *GridConfig        `mapstructure:"grid" json:"grid" validate:"required"`
	BrokenLinks []BrokenLinkConfig `mapstructure:"broken_links" json:"broken_links" validate:"dive"`
	Flows       []FlowConfig       `mapstructure:"flows" json:"flows" validate:"dive"`
}

type GridConfig struct {
	Width  int `mapstructure:"width" json:"width" validate:"required,gt=0"`
	Height int `mapstructure:"height" json:"height" validate:"required,gt=0"`
}

type BrokenLinkConfig struct {
	Node1 string `mapstructure:"node1" json:"node1" validate:"required"`
	Node2 string `mapstructure:"node2" json:"node2" validate:"required"`
}

type FlowConfig struct {
	// pointer so that an explicit zero weight passes "required"
	Weight *float64 `mapstructure:"weight" json:"weight" validate:"required,gte=0"`
	Path   []string `mapstructure:"path" json:"path"`
}

func NewFlowConfig(weight float64, path []string) FlowConfig {
	return FlowConfig{Weight: &weight, Path: path}
}
