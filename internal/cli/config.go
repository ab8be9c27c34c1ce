package cli

// Config stores CLI options for a single generation run.
type Config struct {
	InputPath        string
	OutputPath       string
	Namespace        string
	ReflectNamespace string
	Includes         []string
	LogLevel         string
	LogJSON          bool
	ShowVersion      bool
	ShowHelp         bool
}

// OutputFilename returns destination file path for generator layer.
func (c *Config) OutputFilename() string {
	return c.OutputPath
}

// IncludePaths returns the headers the generated file includes.
func (c *Config) IncludePaths() []string {
	return c.Includes
}

// ReflectNamespaceName returns the namespace holding the reflect_has trait.
func (c *Config) ReflectNamespaceName() string {
	return c.ReflectNamespace
}
