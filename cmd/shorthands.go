package cmd

import (
	"strings"

	"github.com/spf13/pflag"
)

// pflag shorthands are a single letter, so the two-letter-plus ones of the
// add command are spelled out before cobra sees the arguments.
var longShorthands = map[string]string{
	"-dep": "--departure_point",
	"-des": "--destination",
}

// expandShorthands rewrites -dep and -des. An argument that is the value of the
// preceding flag is left alone, whatever it is spelled like.
func expandShorthands(args []string, takesValue func(flag string) bool) []string {
	out := make([]string, 0, len(args))
	isValue := false
	for i, arg := range args {
		if isValue {
			out = append(out, arg)
			isValue = false
			continue
		}
		if arg == "--" {
			return append(out, args[i:]...)
		}
		isValue = takesValue(arg)

		name, value, hasValue := strings.Cut(arg, "=")
		long, ok := longShorthands[name]
		if !ok {
			out = append(out, arg)
			continue
		}
		if hasValue {
			out = append(out, long+"="+value)
		} else {
			out = append(out, long)
		}
	}
	return out
}

// flagTakesValue reports whether arg is a flag of rootCmd or one of its
// subcommands that reads its value from the next argument.
func flagTakesValue(arg string) bool {
	if long, ok := longShorthands[arg]; ok {
		arg = long
	}
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
		return false
	}

	var lookup func(fs *pflag.FlagSet) *pflag.Flag
	switch name := strings.TrimLeft(arg, "-"); {
	case strings.HasPrefix(arg, "--"):
		lookup = func(fs *pflag.FlagSet) *pflag.Flag { return fs.Lookup(name) }
	case len(name) == 1:
		lookup = func(fs *pflag.FlagSet) *pflag.Flag { return fs.ShorthandLookup(name) }
	default:
		return false
	}

	sets := []*pflag.FlagSet{rootCmd.PersistentFlags()}
	for _, c := range rootCmd.Commands() {
		sets = append(sets, c.Flags())
	}
	for _, fs := range sets {
		if f := lookup(fs); f != nil {
			// boolean flags carry a NoOptDefVal and never consume the next argument
			return f.NoOptDefVal == ""
		}
	}
	return false
}
