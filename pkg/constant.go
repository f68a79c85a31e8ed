package pkg

const (
	DEFAULT_CONFIG_PATH       = "data/noc_config.json"
	DEFAULT_LARGE_CONFIG_PATH = "data/large_noc_config.json"
)

const (
	DEBUG = false
)
