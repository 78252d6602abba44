package ansiscan

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
)

const usage = `usage: ansiscan [options] [path ...]

  Mode
    -s, --strip           Remove escape sequences, print everything else
                          (default)
    -l, --locate          Print the position of each sequence as
                          PATH:OFFSET:KIND instead of stripping
    --stat                Print per-input totals: bytes in, sequences
                          found, bytes out, display width of the output

  Input
    --c1                  Also recognize the single-byte 0x9b CSI
                          introducer. Off by default; the same byte
                          occurs inside multi-byte UTF-8 runes.
    --hidden              Descend into hidden directories when walking
    -L, --follow          Follow symbolic links when walking

  Output
    -o, --output=FILE     Write to FILE instead of standard output

    -h, --help            Show this message
    --version             Show version information

Each path may be a file, a directory (walked recursively), or - for
standard input; with no path, standard input is read. Files in the lz4
frame format are decompressed before scanning. The exit status is 0 when
at least one escape sequence was found, 1 when none were, 2 on error.

Default options can be supplied in $ANSISCAN_DEFAULT_OPTS.
`

// Mode selects what Run does with the sequences it finds.
type Mode int

const (
	ModeStrip Mode = iota
	ModeLocate
	ModeStat
)

// Options stores the values of command-line options
type Options struct {
	Mode   Mode
	C1     bool
	Hidden bool
	Follow bool
	Output string
	Inputs []string
}

func defaultOptions() *Options {
	return &Options{Mode: ModeStrip}
}

func help(code int) {
	os.Stdout.WriteString(usage)
	os.Exit(code)
}

func errorExit(msg string) {
	os.Stderr.WriteString(msg + "\n")
	os.Exit(ExitError)
}

func nextString(args []string, i *int, message string) string {
	if len(args) <= *i+1 {
		errorExit(message)
	}
	*i++
	return args[*i]
}

func optString(arg string, prefixes ...string) (bool, string) {
	for _, prefix := range prefixes {
		if strings.HasPrefix(arg, prefix) {
			return true, arg[len(prefix):]
		}
	}
	return false, ""
}

func parseOptions(opts *Options, allArgs []string) {
	for i := 0; i < len(allArgs); i++ {
		arg := allArgs[i]
		switch arg {
		case "-h", "--help":
			help(ExitOk)
		case "-s", "--strip":
			opts.Mode = ModeStrip
		case "-l", "--locate":
			opts.Mode = ModeLocate
		case "--stat":
			opts.Mode = ModeStat
		case "--no-stat":
			opts.Mode = ModeStrip
		case "--c1":
			opts.C1 = true
		case "--no-c1":
			opts.C1 = false
		case "--hidden":
			opts.Hidden = true
		case "--no-hidden":
			opts.Hidden = false
		case "-L", "--follow":
			opts.Follow = true
		case "--no-follow":
			opts.Follow = false
		case "-o", "--output":
			opts.Output = nextString(allArgs, &i, "output file required")
		case "--version":
			fmt.Println("ansiscan " + version)
			os.Exit(ExitOk)
		case "--":
			opts.Inputs = append(opts.Inputs, allArgs[i+1:]...)
			return
		default:
			if match, value := optString(arg, "-o", "--output="); match && len(value) > 0 {
				opts.Output = value
			} else if strings.HasPrefix(arg, "-") && len(arg) > 1 {
				errorExit("unknown option: " + arg)
			} else {
				opts.Inputs = append(opts.Inputs, arg)
			}
		}
	}
}

// ParseOptions parses ANSISCAN_DEFAULT_OPTS and the command-line options
func ParseOptions() *Options {
	opts := defaultOptions()

	words, _ := shellwords.Parse(os.Getenv("ANSISCAN_DEFAULT_OPTS"))
	parseOptions(opts, words)

	parseOptions(opts, os.Args[1:])
	return opts
}
