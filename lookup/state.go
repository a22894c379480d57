package lookup

import "fmt"

// State is the lookup state of a Cache.
type State int32

const (
	// Unresolved means no lookup has been attempted since creation or the last Reset.
	Unresolved State = iota
	// Absent means the registry had no handle for the name when it was looked up.
	Absent
	// Present means a handle is cached.
	Present
)

func (s State) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Absent:
		return "absent"
	case Present:
		return "present"
	}
	return fmt.Sprintf("state#%d", int32(s))
}
