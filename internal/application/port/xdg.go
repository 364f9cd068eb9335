package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	StateDir() (string, error)
	// LogFile is the default log destination for interactive runs.
	LogFile() (string, error)
}
