package models

// Snapshot is a read-only record of host and runtime facts captured at one point in time
type Snapshot struct {
	InterpreterVersion string `json:"interpreter_version" yaml:"interpreter_version"`
	Platform           string `json:"platform" yaml:"platform"`
	Timestamp          string `json:"timestamp" yaml:"timestamp"`
}

// Snapshot keys, in output order
const (
	KeyInterpreterVersion = "interpreter_version"
	KeyPlatform           = "platform"
	KeyTimestamp          = "timestamp"
)

// Fields returns the snapshot as an ordered list of key/value pairs
func (s Snapshot) Fields() [][2]string {
	return [][2]string{
		{KeyInterpreterVersion, s.InterpreterVersion},
		{KeyPlatform, s.Platform},
		{KeyTimestamp, s.Timestamp},
	}
}

// HostInfo holds the optional host facts a profile may print
type HostInfo struct {
	Architecture string `json:"architecture" yaml:"architecture"`
	Hostname     string `json:"hostname" yaml:"hostname"`
}

// Extra field keys a profile may list
const (
	FieldArchitecture = "architecture"
	FieldHostname     = "hostname"
)

// Field returns the printed label and value for an extra field key
func (h HostInfo) Field(key string) (label, value string, ok bool) {
	switch key {
	case FieldArchitecture:
		return "Architecture", h.Architecture, true
	case FieldHostname:
		return "Hostname", h.Hostname, true
	}
	return "", "", false
}

// Profile describes the language-specific text the runner prints
type Profile struct {
	Name         string   `yaml:"name"`
	Title        string   `yaml:"title"`
	VersionLabel string   `yaml:"version_label"`
	ExtraFields  []string `yaml:"extra_fields,omitempty"`
	Closing      string   `yaml:"closing"`
}
