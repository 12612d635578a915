package flagsgo

import (
	"regexp"
	"strings"
)

var normalizer = regexp.MustCompile("[^a-zA-Z0-9]")

// Normalizes the string which removes all non-letters and numbers and
// converts it to lowercase. Registry lookups compare normalized names.
func Normalize(x string) string {
	return strings.ToLower(normalizer.ReplaceAllString(x, ""))
}

// Finds the first argument in args named argPrefix+name, returns the value
// that follows it, and removes both from args. Returns the default when the
// argument is absent or has no value.
func GetArg(name string, defaultValue string, args *[]string, argPrefix string) string {
	normal := Normalize(name)
	argsNow := *args
	for index, arg := range argsNow {
		if !strings.HasPrefix(arg, argPrefix) {
			continue
		}
		if Normalize(arg[len(argPrefix):]) != normal {
			continue
		}
		if index+1 >= len(argsNow) {
			*args = argsNow[:index]
			return defaultValue
		}
		value := argsNow[index+1]
		if strings.HasPrefix(value, argPrefix) {
			*args = append(argsNow[:index], argsNow[index+1:]...)
			return defaultValue
		}
		*args = append(argsNow[:index], argsNow[index+2:]...)
		return value
	}
	return defaultValue
}
