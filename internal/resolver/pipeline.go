package resolver

import (
	"github.com/gorewood/dotcfg/internal/inifile"
)

// Resolution is the outcome of a successful ReadConfig.
type Resolution struct {
	Paths             Paths
	Profile           string
	ProfileConfigFile string
}

// ReadConfig runs the config_read pipeline: configuration file, profile
// directory, profile name, profile file, in that order.
func (e *Engine) ReadConfig(o Overrides) (*Resolution, error) {
	paths := Resolve(o)
	if err := e.checkConfigFile(OpConfigRead, o, paths); err != nil {
		return nil, err
	}
	return e.resolveProfile(OpConfigRead, o, paths)
}

// checkConfigFile is the first step of every profile operation.
func (e *Engine) checkConfigFile(op string, o Overrides, paths Paths) error {
	e.state(op, "check_config_file", "path", paths.ConfigFile)
	ok, err := statFile(paths.ConfigFile)
	if !ok {
		return newError(KindConfigurationFileNotFound, o.ConfigToken(), err)
	}
	return nil
}

// resolveProfile runs the steps after the configuration file check.
func (e *Engine) resolveProfile(op string, o Overrides, paths Paths) (*Resolution, error) {
	e.state(op, "check_profile_path", "path", paths.ProfileDir)
	ok, err := statDir(paths.ProfileDir)
	if !ok {
		return nil, newError(KindProfilePathNotFound, o.ProfileToken(), err)
	}

	e.state(op, "resolve_profile", "key", ProfileKey)
	name, found, err := inifile.ReadValue(paths.ConfigFile, ProfileKey)
	if err != nil || !found || !validProfileName(name) {
		return nil, newError(KindProfileNotFound, "", err)
	}

	profileFile := paths.ProfileConfigFile(name)
	e.state(op, "check_profile_file", "profile", name, "path", profileFile)
	ok, err = statFile(profileFile)
	if !ok {
		return nil, newError(KindProfileConfigurationFileNotFound, profileFile, err)
	}

	return &Resolution{
		Paths:             paths,
		Profile:           name,
		ProfileConfigFile: profileFile,
	}, nil
}
