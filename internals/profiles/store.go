// Package profiles persists launch profiles and the installation's client token.
package profiles

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/minepkg/mclaunch/internals/storage"
	"github.com/pkg/errors"
)

// Default heap sizes used when a profile does not set them
const (
	DefaultXms = "1G"
	DefaultXmx = "2G"
)

// DefaultUsername is used for detected offline profiles
const DefaultUsername = "Player"

// TokenPolicy determines what happens to the client token on save
type TokenPolicy int

const (
	// StableToken keeps the client token once it was created
	StableToken TokenPolicy = iota
	// RegenerateToken creates a new client token on every save
	RegenerateToken
)

// Profile is a named launch configuration. Name is the key in the profiles file
type Profile struct {
	Name     string `json:"-"`
	Username string `json:"username"`
	Version  string `json:"version"`
	Xms      string `json:"xms,omitempty"`
	Xmx      string `json:"xmx,omitempty"`
}

// file is the on disk format of the profiles file
type file struct {
	ClientToken string              `json:"clientToken"`
	Profiles    map[string]*Profile `json:"profiles"`
}

// Store reads & writes the profiles file
type Store struct {
	Path        string
	TokenPolicy TokenPolicy

	ClientToken string
	Profiles    map[string]*Profile
}

// New returns a Store for the profiles file of layout. Call Load before using it
func New(layout *storage.Layout) *Store {
	return &Store{Path: layout.ProfilesPath(), Profiles: make(map[string]*Profile)}
}

// Load reads the profiles file. If it does not exist, it is created with a new client token
func (s *Store) Load() error {
	buf, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		s.ClientToken = uuid.NewString()
		s.Profiles = make(map[string]*Profile)
		return s.write()
	}
	if err != nil {
		return errors.Wrap(err, "could not read profiles")
	}

	parsed := file{}
	if err := json.Unmarshal(buf, &parsed); err != nil {
		return errors.Wrapf(err, "invalid profiles file %s", s.Path)
	}

	s.ClientToken = parsed.ClientToken
	s.Profiles = parsed.Profiles
	if s.Profiles == nil {
		s.Profiles = make(map[string]*Profile)
	}
	for name, p := range s.Profiles {
		if p == nil {
			delete(s.Profiles, name)
			continue
		}
		p.Name = name
	}
	return nil
}

// Save rewrites the whole profiles file
func (s *Store) Save() error {
	if s.TokenPolicy == RegenerateToken || s.ClientToken == "" {
		s.ClientToken = uuid.NewString()
	}
	return s.write()
}

func (s *Store) write() error {
	buf, err := json.MarshalIndent(file{s.ClientToken, s.Profiles}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return errors.Wrap(err, "could not create profiles directory")
	}
	if err := os.WriteFile(s.Path, buf, 0644); err != nil {
		return errors.Wrap(err, "could not write profiles")
	}
	return nil
}

// Get returns the profile with the given name or nil
func (s *Store) Get(name string) *Profile {
	return s.Profiles[name]
}

// Put adds or replaces a profile. It does not save
func (s *Store) Put(p *Profile) {
	if s.Profiles == nil {
		s.Profiles = make(map[string]*Profile)
	}
	s.Profiles[p.Name] = p
}

// Remove deletes a profile and returns false if it did not exist. It does not save
func (s *Store) Remove(name string) bool {
	if _, ok := s.Profiles[name]; !ok {
		return false
	}
	delete(s.Profiles, name)
	return true
}

// Names returns all profile names, sorted
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.Profiles))
	for name := range s.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AutoDetect adds an "Offline-<id>" profile for every installed version that has
// none yet and saves the store. It returns the names of the added profiles
func (s *Store) AutoDetect(layout *storage.Layout) ([]string, error) {
	ids, err := layout.InstalledVersions()
	if err != nil {
		return nil, errors.Wrap(err, "could not list installed versions")
	}

	added := []string{}
	for _, id := range ids {
		name := "Offline-" + id
		if s.Get(name) != nil {
			continue
		}
		s.Put(&Profile{Name: name, Username: DefaultUsername, Version: id, Xms: DefaultXms, Xmx: DefaultXmx})
		added = append(added, name)
	}

	return added, s.Save()
}

// NewProfile returns a profile named "<username>-<version>" with default heap sizes
func NewProfile(username string, version string) *Profile {
	return &Profile{
		Name:     username + "-" + version,
		Username: username,
		Version:  version,
		Xms:      DefaultXms,
		Xmx:      DefaultXmx,
	}
}
