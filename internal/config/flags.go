package config

import "github.com/spf13/pflag"

// Flags holds the command-line overrides shared by every command
type Flags struct {
	set *pflag.FlagSet

	ConfigPath string
	Assets     string
	LogFile    string
}

// BindFlags registers --config, --assets and --log-file on fs
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{set: fs}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file (default ~/.config/vpet/vpet.toml)")
	fs.StringVar(&f.Assets, "assets", "", "Animation asset directory")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file used while the TUI is running")
	return f
}

// Path returns the config path to read
func (f *Flags) Path() string {
	if f.ConfigPath != "" {
		return f.ConfigPath
	}
	return Path()
}

// Apply overrides cfg with the flags that were set explicitly
func (f *Flags) Apply(cfg *Config) {
	if f.set.Changed("assets") {
		cfg.Assets = f.Assets
	}
	if f.set.Changed("log-file") {
		cfg.LogFile = f.LogFile
	}
}

// Load reads the config named by the flags and applies the overrides
func (f *Flags) Load() (Config, error) {
	cfg, err := Load(f.Path())
	if err != nil {
		return cfg, err
	}
	f.Apply(&cfg)
	return cfg, nil
}
