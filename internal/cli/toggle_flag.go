package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	toggleTypeName        = "bool"
	toggleImplicitLiteral = "true"
	toggleAcceptedValues  = "true, false, yes, no, on, off, 1, 0"
	flagPrefix            = "--"
	flagAssignment        = "="
	argumentTerminator    = "--"
)

var errInvalidToggle = errors.New("invalid boolean value")

// toggleLiterals maps every accepted spelling to its value.
var toggleLiterals = map[string]bool{
	"true": true, "t": true, "1": true, "yes": true, "y": true, "on": true,
	"false": false, "f": false, "0": false, "no": false, "n": false, "off": false,
}

// separableToggleLiterals are the words "--flag word" consumes as the flag's
// value. Short spellings like "on" or "1" are accepted only after "=" so that
// a target directory with such a name stays positional.
var separableToggleLiterals = map[string]struct{}{
	"true": {}, "false": {}, "yes": {}, "no": {},
}

// toggleFlag describes one boolean switch of a command.
type toggleFlag struct {
	name         string
	usage        string
	defaultValue bool
	target       *bool
}

// toggleValue is a pflag.Value accepting the literals above, so that
// "--clipboard no" and "--clipboard=off" both work.
type toggleValue struct {
	target *bool
	name   string
}

func parseToggleLiteral(input string) (bool, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		normalized = toggleImplicitLiteral
	}
	parsed, known := toggleLiterals[normalized]
	return parsed, known
}

func (value *toggleValue) Set(input string) error {
	parsed, known := parseToggleLiteral(input)
	if !known {
		return fmt.Errorf("%w %q for --%s; accepted values: %s", errInvalidToggle, input, value.name, toggleAcceptedValues)
	}
	*value.target = parsed
	return nil
}

func (value *toggleValue) String() string {
	if value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *toggleValue) Type() string {
	return toggleTypeName
}

// registerToggleFlags installs every toggle on flagSet with its default applied.
func registerToggleFlags(flagSet *pflag.FlagSet, toggles ...toggleFlag) {
	for _, toggle := range toggles {
		*toggle.target = toggle.defaultValue
		flagSet.Var(&toggleValue{target: toggle.target, name: toggle.name}, toggle.name, toggle.usage)
		registered := flagSet.Lookup(toggle.name)
		registered.DefValue = strconv.FormatBool(toggle.defaultValue)
		registered.NoOptDefVal = toggleImplicitLiteral
	}
}

// joinToggleValues rewrites "--name word" into "--name=word" for every toggle
// of the command tree when word is true, false, yes or no. Any other word, such
// as the "tree" keyword or a directory path, stays positional.
func joinToggleValues(command *cobra.Command, arguments []string) []string {
	toggleNames := map[string]struct{}{}
	collectToggleNames(command, toggleNames)

	joined := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		argument := arguments[index]
		if argument == argumentTerminator {
			return append(joined, arguments[index:]...)
		}
		flagName, isLongFlag := strings.CutPrefix(argument, flagPrefix)
		_, isToggle := toggleNames[flagName]
		if isLongFlag && isToggle && !strings.Contains(flagName, flagAssignment) && index+1 < len(arguments) {
			if _, separable := separableToggleLiterals[strings.ToLower(strings.TrimSpace(arguments[index+1]))]; separable {
				joined = append(joined, flagPrefix+flagName+flagAssignment+arguments[index+1])
				index++
				continue
			}
		}
		joined = append(joined, argument)
	}
	return joined
}

func collectToggleNames(command *cobra.Command, names map[string]struct{}) {
	record := func(flag *pflag.Flag) {
		if flag.Value.Type() == toggleTypeName {
			names[flag.Name] = struct{}{}
		}
	}
	command.PersistentFlags().VisitAll(record)
	command.Flags().VisitAll(record)
	for _, child := range command.Commands() {
		collectToggleNames(child, names)
	}
}
