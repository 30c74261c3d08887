package resolver

import "github.com/gorewood/dotcfg/internal/output"

// Operation names, as given on the command line.
const (
	OpConfigRead    = "config_read"
	OpProfileList   = "config_profile_list"
	OpProfileUpdate = "config_profile_update"
	OpThemeList     = "config_theme_list"
)

// ExitIOFailure is returned for failures outside the validation steps, such
// as a profile file that could not be rewritten.
const ExitIOFailure = output.ExitSystemError

// exitCodes maps each operation's failure kinds to its exit codes.
// Codes are per operation: 1 means a different step in each.
var exitCodes = map[string]map[Kind]int{
	OpConfigRead: {
		KindConfigurationFileNotFound:        1,
		KindProfilePathNotFound:              2,
		KindProfileNotFound:                  3,
		KindProfileConfigurationFileNotFound: 4,
	},
	OpProfileList: {
		KindProfilePathNotFound: 1,
	},
	OpThemeList: {
		KindThemePathNotFound: 1,
	},
	OpProfileUpdate: {
		KindConfigurationFileNotFound: 1,
		KindProfileNotFound:           2,
		KindProfileFieldNotFound:      3,
	},
}

// ExitCode returns the exit code op reports for err: 0 for nil, the mapped
// code for a known kind, ExitIOFailure otherwise.
func ExitCode(op string, err error) int {
	if err == nil {
		return 0
	}
	if code, ok := exitCodes[op][KindOf(err)]; ok {
		return code
	}
	return ExitIOFailure
}
