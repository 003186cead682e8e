// Command catalogcheck maintains the generated parts of the contract module: the offset
// table of the errcode catalog and the specialized check family.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
