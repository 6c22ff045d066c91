package config

const (
	defaultDataDir                = "~/.local/share/draftd"
	defaultLogDir                 = "~/.local/share/draftd/logs"
	defaultAPIBind                = "127.0.0.1:7687"
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
	defaultDraftWidth             = 1920
	defaultDraftHeight            = 1080
	defaultReadTimeoutSeconds     = 15
	defaultWriteTimeoutSeconds    = 30
	defaultShutdownTimeoutSeconds = 5
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Drafts: Drafts{
			DefaultWidth:  defaultDraftWidth,
			DefaultHeight: defaultDraftHeight,
		},
		Server: Server{
			ReadTimeoutSeconds:     defaultReadTimeoutSeconds,
			WriteTimeoutSeconds:    defaultWriteTimeoutSeconds,
			ShutdownTimeoutSeconds: defaultShutdownTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
