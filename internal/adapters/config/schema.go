package config

// Settingsfile represents the structure of the .nix-bisect.yaml settings file.
type Settingsfile struct {
	CacheDir     string            `yaml:"cacheDir"`
	NixFile      string            `yaml:"nixFile" default:"."`
	System       string            `yaml:"system"`
	MaxRebuilds  *int              `yaml:"maxRebuilds"`
	FailureLine  string            `yaml:"failureLine"`
	BuildOptions map[string]string `yaml:"buildOptions"`
	LogFormat    string            `yaml:"logFormat" default:"pretty"`
}
