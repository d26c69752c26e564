// Command folio works with folio documents outside a running viewer: it
// renders the page-turn sound, replays input scripts headlessly, and prints
// tables of contents.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
