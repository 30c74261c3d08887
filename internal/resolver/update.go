package resolver

import (
	"errors"
	"fmt"

	"github.com/gorewood/dotcfg/internal/inifile"
)

// DefaultField is the profile file key updated when no field is named.
const DefaultField = "theme"

// UpdateRequest describes one config_profile_update call.
type UpdateRequest struct {
	Overrides Overrides
	// Field is the key in the profile file's global section. Empty means DefaultField.
	Field string
	// Next picks the new value. Nil means Increment.
	Next NextValueFunc
}

// UpdateResult reports the field that was rewritten.
type UpdateResult struct {
	Resolution
	Field    string
	Previous string
	Value    string
}

// UpdateField runs the config_profile_update pipeline. Any failure to
// resolve the active profile file is reported as ProfileNotFound, with the
// step's own error kept as the cause.
func (e *Engine) UpdateField(req UpdateRequest) (*UpdateResult, error) {
	field := orDefault(req.Field, DefaultField)
	next := req.Next
	if next == nil {
		next = Increment
	}

	paths := Resolve(req.Overrides)
	if err := e.checkConfigFile(OpProfileUpdate, req.Overrides, paths); err != nil {
		return nil, err
	}

	resolution, err := e.resolveProfile(OpProfileUpdate, req.Overrides, paths)
	if err != nil {
		return nil, newError(KindProfileNotFound, "", err)
	}

	e.state(OpProfileUpdate, "check_target_field", "field", field, "path", resolution.ProfileConfigFile)
	current, found, err := inifile.ReadValue(resolution.ProfileConfigFile, field)
	if err != nil || !found {
		return nil, newError(KindProfileFieldNotFound, field, err)
	}

	// A missing theme directory only removes the upper bound.
	available, _ := e.CountThemes(req.Overrides)
	value := next(current, available)

	e.state(OpProfileUpdate, "write_field", "field", field, "from", current, "to", value)
	if err := inifile.WriteValue(resolution.ProfileConfigFile, field, value); err != nil {
		if errors.Is(err, inifile.ErrFieldNotFound) {
			return nil, newError(KindProfileFieldNotFound, field, err)
		}
		return nil, fmt.Errorf("updating %s in %s: %w", field, resolution.ProfileConfigFile, err)
	}

	return &UpdateResult{
		Resolution: *resolution,
		Field:      field,
		Previous:   current,
		Value:      value,
	}, nil
}
