package persona

import "fmt"

// Bio is the deep profile behind a creator persona: what they believe,
// how they sound, how they structure a script, and how they research.
type Bio struct {
	Archetype string
	Tagline   string

	Philosophy Philosophy
	Voice      Voice
	Structure  Structure
	Research   Research
}

// Philosophy captures the persona's worldview and the goal of their content.
type Philosophy struct {
	CoreBeliefs []string
	ContentGoal string
}

// Voice describes the persona's delivery: tone, rhythm, and word choice.
type Voice struct {
	Tone             string
	Pacing           string
	EmotionalRange   string
	Vocabulary       string
	SignaturePhrases []string
}

// Structure describes how the persona opens, builds, and closes a script.
type Structure struct {
	HookStyle     string
	BodyStructure string
	ClosingStyle  string
}

// Research describes the persona's sourcing methodology and bias.
type Research struct {
	Methodology      string
	Bias             string
	PreferredSources []string
}

// Profile is one entry in the persona catalog. Profiles are immutable once
// loaded; everything above the registry treats them as read-only values.
type Profile struct {
	ID     string
	Name   string
	Handle string
	Hex    string // accent color for presentation
	Bio    Bio
}

// NotFoundError is returned by Registry.Get for an unknown persona id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("persona %q not found", e.ID)
}

// Registry is an immutable persona catalog, constructed once at startup and
// shared by reference across concurrent operations. Order matters: the first
// entry is the system default.
type Registry struct {
	profiles []Profile
	byID     map[string]int
}

// NewRegistry builds a registry from the given profiles. Tests pass a small
// fixture catalog; production code passes DefaultCatalog().
func NewRegistry(profiles []Profile) *Registry {
	byID := make(map[string]int, len(profiles))
	for i, p := range profiles {
		byID[p.ID] = i
	}
	return &Registry{profiles: profiles, byID: byID}
}

// List returns all profiles in catalog order.
func (r *Registry) List() []Profile {
	out := make([]Profile, len(r.profiles))
	copy(out, r.profiles)
	return out
}

// Get returns the profile with the given id.
func (r *Registry) Get(id string) (Profile, error) {
	i, ok := r.byID[id]
	if !ok {
		return Profile{}, &NotFoundError{ID: id}
	}
	return r.profiles[i], nil
}

// Default returns the first catalog entry.
func (r *Registry) Default() Profile {
	return r.profiles[0]
}

// Len reports the catalog size.
func (r *Registry) Len() int {
	return len(r.profiles)
}
