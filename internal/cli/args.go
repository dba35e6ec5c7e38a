package cli

import (
	"strings"
	"unicode"
)

// valueFlags lists the flags that consume the following argument, so that
// argument is never mistaken for a -n spec.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var valueFlags = map[string]bool{
	"-h": true, "--header": true, "--header-text": true,
	"-N": true, "--first-line-number": true,
	"-l": true, "--length": true, "--page-length": true,
	"-D": true, "--date-format": true,
	"--pages":    true,
	"--encoding": true,
	"--color":    true,
	"--config":   true,
}

// NormalizeArgs rewrites the attached forms of -n into what pflag parses:
// "-nc1" becomes "-n=c1", and "-n 2" becomes "-n=2" when the next argument
// is a plain width. Arguments after "--" are left alone.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case valueFlags[arg] && i+1 < len(args):
			out = append(out, arg, args[i+1])
			i++
		case arg == "-n" && i+1 < len(args) && isWidth(args[i+1]):
			out = append(out, "-n="+args[i+1])
			i++
		case strings.HasPrefix(arg, "-n") && len(arg) > 2 && arg[2] != '=':
			out = append(out, "-n="+arg[2:])
		default:
			out = append(out, arg)
		}
	}
	return out
}

func isWidth(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
