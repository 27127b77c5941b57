package runner

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/rexgen"
)

// Options holds the parsed CLI configuration for the rexgen command.
type Options struct {
	TestCases   goflags.StringSlice // -i, repeatable
	InputFile   string              // -f/--file, newline-separated test cases
	Digit       bool
	NonDigit    bool
	Space       bool
	NonSpace    bool
	Word        bool
	NonWord     bool
	Repetition  bool
	Escape      bool
	Surrogates  bool
	Colorize    bool
	NoColor     bool
	Output      string
	Verbose     bool
	Silent      bool
}

// ParseFlags parses os.Args into Options, the way every projectdiscovery
// CLI front-ends its library: goflags for the flag set, gologger for the
// resulting log level and banner.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Generates a single regular expression that matches exactly a given set of input strings.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.TestCases, "input", "i", nil, "test case the generated expression must match (repeatable)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.InputFile, "file", "f", "", "file of newline-separated test cases"),
	)

	flagSet.CreateGroup("conversion", "Conversion",
		flagSet.BoolVarP(&opts.Digit, "digits", "d", false, `convert matching character classes to \d`),
		flagSet.BoolVarP(&opts.NonDigit, "non-digits", "D", false, `convert matching character classes to \D`),
		flagSet.BoolVarP(&opts.Space, "spaces", "s", false, `convert matching character classes to \s`),
		flagSet.BoolVarP(&opts.NonSpace, "non-spaces", "S", false, `convert matching character classes to \S`),
		flagSet.BoolVarP(&opts.Word, "words", "w", false, `convert matching character classes to \w`),
		flagSet.BoolVarP(&opts.NonWord, "non-words", "W", false, `convert matching character classes to \W`),
		flagSet.BoolVarP(&opts.Repetition, "repetitions", "r", false, "detect repeated substrings and convert them to {min,max} quantifiers"),
	)

	flagSet.CreateGroup("escaping", "Escaping",
		flagSet.BoolVarP(&opts.Escape, "escape", "e", false, `escape non-ASCII characters as \u{HHHH}`),
		flagSet.BoolVar(&opts.Surrogates, "with-surrogates", false, "split escaped astral code points into UTF-16 surrogate pairs (requires -e)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "file to write the generated expression to (default stdout)"),
		flagSet.BoolVarP(&opts.Colorize, "colorize", "c", false, "force syntax-highlighted output"),
		flagSet.BoolVar(&opts.NoColor, "no-color", false, "disable syntax-highlighted output"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display the expression only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}
	if opts.Surrogates && !opts.Escape {
		gologger.Fatal().Msgf("--with-surrogates requires -e/--escape\n")
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if !opts.Silent {
		showBanner()
	}

	if !opts.Colorize && !opts.NoColor {
		opts.Colorize = isatty.IsTerminal(os.Stdout.Fd())
	}
	if opts.NoColor {
		opts.Colorize = false
	}

	return opts
}

// Features maps the enabled conversion flags to the library's Feature
// enum, in the fixed priority order SPEC_FULL.md §9 defines.
func (o *Options) Features() []rexgen.Feature {
	var features []rexgen.Feature
	if o.Digit {
		features = append(features, rexgen.FeatureDigit)
	}
	if o.Word {
		features = append(features, rexgen.FeatureWord)
	}
	if o.Space {
		features = append(features, rexgen.FeatureSpace)
	}
	if o.NonDigit {
		features = append(features, rexgen.FeatureNonDigit)
	}
	if o.NonWord {
		features = append(features, rexgen.FeatureNonWord)
	}
	if o.NonSpace {
		features = append(features, rexgen.FeatureNonSpace)
	}
	if o.Repetition {
		features = append(features, rexgen.FeatureRepetition)
	}
	return features
}

// ResolveTestCases gathers test cases from -i, -f and stdin, in that order.
func (o *Options) ResolveTestCases() ([]string, error) {
	return resolveTestCases(o.TestCases, o.InputFile)
}
