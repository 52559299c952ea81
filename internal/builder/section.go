package builder

// Section is the raw build section of a component descriptor file as it
// appears on disk. Which fields are meaningful depends on the declared
// type; the loader validates and narrows the record into the matching
// Config variant.
type Section struct {
	Type       string    `json:"type" yaml:"type"`
	Path       string    `json:"path,omitempty" yaml:"path,omitempty"`
	Target     string    `json:"target,omitempty" yaml:"target,omitempty"`
	SourcePath string    `json:"sourcepath,omitempty" yaml:"sourcepath,omitempty"`
	TargetPath string    `json:"targetpath,omitempty" yaml:"targetpath,omitempty"`
	Script     string    `json:"script,omitempty" yaml:"script,omitempty"`
	TargetFile string    `json:"targetfile,omitempty" yaml:"targetfile,omitempty"`
	Major      string    `json:"major,omitempty" yaml:"major,omitempty"`
	Minor      string    `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch      string    `json:"patch,omitempty" yaml:"patch,omitempty"`
	Build      string    `json:"build,omitempty" yaml:"build,omitempty"`
	Release    string    `json:"release,omitempty" yaml:"release,omitempty"`
	Codename   string    `json:"codename,omitempty" yaml:"codename,omitempty"`
	Stages     []Section `json:"stages,omitempty" yaml:"stages,omitempty"`
}
