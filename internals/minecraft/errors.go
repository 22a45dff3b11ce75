package minecraft

import "fmt"

// VersionNotFoundError is returned if a version id is not part of the version manifest
type VersionNotFoundError struct {
	ID string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version %s not found", e.ID)
}

// MalformedDescriptorError is returned if a json document is not valid json
// or misses a required field
type MalformedDescriptorError struct {
	// Source is the file that was parsed
	Source string
	// Field is the missing or wrong-shaped field. can be empty
	Field string
	Err   error
}

func (e *MalformedDescriptorError) Error() string {
	switch {
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("%s: invalid field %q: %s", e.Source, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: missing required field %q", e.Source, e.Field)
	default:
		return fmt.Sprintf("%s: %s", e.Source, e.Err)
	}
}

func (e *MalformedDescriptorError) Unwrap() error { return e.Err }
