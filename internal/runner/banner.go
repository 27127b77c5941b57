package runner

import "github.com/projectdiscovery/gologger"

var banner = (`

_______  ____ ___  ______ ____   ____
\_  __ \/ __ \\  \/  / ___\\_/ __ \
 |  | \\  ___/ >    < /_/  >  ___/
 |__|   \___  >__/\_ \___  / \___  >
            \/      \/_____/     \/
`)

const version = "v0.0.1"

// showBanner prints the tool banner; ParseFlags skips it under -silent.
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}
