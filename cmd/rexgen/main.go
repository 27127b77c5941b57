package main

import (
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/rexgen"
	"github.com/projectdiscovery/rexgen/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	testCases, err := cliOpts.ResolveTestCases()
	if err != nil {
		gologger.Fatal().Msgf("rexgen: %v", err)
	}
	if len(testCases) == 0 {
		gologger.Fatal().Msgf("rexgen: no input found (use -i, -f, or stdin)")
	}

	builder := rexgen.New(testCases).WithConversionOf(cliOpts.Features()...)
	if cliOpts.Escape {
		builder = builder.WithEscapingOfNonASCIIChars(cliOpts.Surrogates)
	}
	if cliOpts.Colorize {
		builder = builder.WithSyntaxHighlighting()
	}

	result := builder.Build()

	if cliOpts.Output != "" {
		if err := os.WriteFile(cliOpts.Output, []byte(result+"\n"), 0644); err != nil {
			gologger.Fatal().Msgf("rexgen: failed to write output to %v: %v", cliOpts.Output, err)
		}
		return
	}

	gologger.Print().Msgf("%s\n", result)
}
