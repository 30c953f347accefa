// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Role distinguishes the primary notebook of a topic from its answer key.
type Role string

const (
	RoleMain      Role = "main"
	RoleSolutions Role = "solutions"
)

// Classification is the result of reading a topic and role out of a
// notebook filename.
type Classification struct {
	Topic string `json:"topic" yaml:"topic"`
	Role  Role   `json:"role" yaml:"role"`
}

// IsSolution reports whether the file is the solutions variant.
func (c Classification) IsSolution() bool {
	return c.Role == RoleSolutions
}

// TopicEntry groups the notebooks that share a topic name. An empty path
// means the variant is absent.
type TopicEntry struct {
	Name          string `json:"name" yaml:"name"`
	MainFile      string `json:"main_file,omitempty" yaml:"main_file,omitempty"`
	SolutionsFile string `json:"solutions_file,omitempty" yaml:"solutions_file,omitempty"`
}

// Slot returns the path currently stored for role.
func (e *TopicEntry) Slot(role Role) string {
	if role == RoleSolutions {
		return e.SolutionsFile
	}
	return e.MainFile
}

// SetSlot stores path for role, replacing any previous value.
func (e *TopicEntry) SetSlot(role Role, path string) {
	if role == RoleSolutions {
		e.SolutionsFile = path
		return
	}
	e.MainFile = path
}

// TopicMap maps a topic name to its entry.
type TopicMap map[string]*TopicEntry
