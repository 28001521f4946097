package domain

// Conventional profile field keys.
const (
	FieldBaseURL     = "base_url"
	FieldToken       = "token"
	FieldCookie      = "cookie"
	FieldContentType = "content_type"
	FieldTimeout     = "timeout"
)

// Config is the persisted profile document.
// An empty Default means no default profile is selected.
type Config struct {
	Default  string             `yaml:"default"`
	Profiles map[string]Profile `yaml:"profiles"`
}

// NewConfig returns an empty Config with an initialized profile map.
func NewConfig() Config {
	return Config{Profiles: make(map[string]Profile)}
}

// Profile is a named bag of free-form string fields.
// Name is the map key in Config.Profiles and is not persisted separately.
type Profile struct {
	Name   string            `yaml:"-"`
	Fields map[string]string `yaml:",inline"`
}

// Profile returns the named profile and whether it exists.
func (c Config) Profile(name string) (Profile, bool) {
	if name == "" {
		return Profile{}, false
	}
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, false
	}
	p.Name = name
	return p, true
}

// HasProfile reports whether a profile with the given name exists.
func (c Config) HasProfile(name string) bool {
	_, ok := c.Profile(name)
	return ok
}

// Get returns a field value, or "" if the field is absent.
func (p Profile) Get(key string) string {
	if p.Fields == nil {
		return ""
	}
	return p.Fields[key]
}

// Set upserts a field, allocating the field map if needed.
func (p *Profile) Set(key, value string) {
	if p.Fields == nil {
		p.Fields = make(map[string]string)
	}
	p.Fields[key] = value
}
