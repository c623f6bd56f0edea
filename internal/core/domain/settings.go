package domain

// BuildPolicy controls how a build call interacts with the result cache.
type BuildPolicy struct {
	// UseCache short-circuits units with a recorded failure.
	UseCache bool
	// WriteCache records failures of genuine build attempts.
	WriteCache bool
	// Options are passed through to the build tool.
	Options []BuildOption
}

// CachedBuild returns the policy for regular builds.
func CachedBuild(opts []BuildOption) BuildPolicy {
	return BuildPolicy{UseCache: true, WriteCache: true, Options: opts}
}

// ForcedBuild returns the policy for a rebuild that bypasses recorded failures.
func ForcedBuild(opts []BuildOption) BuildPolicy {
	return BuildPolicy{UseCache: false, WriteCache: true, Options: opts}
}

// Settings holds the resolved user configuration.
type Settings struct {
	CacheDir     string
	NixFile      string
	System       string
	MaxRebuilds  *int
	FailureLine  string
	BuildOptions []BuildOption
	LogFormat    string
}
