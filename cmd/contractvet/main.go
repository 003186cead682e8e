// Command contractvet reports contract checks whose condition text does not spell their
// predicate.
//
//	contractvet [-config contract.yaml] [-fix] ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/contract/internal/vet"
)

func main() {
	singlechecker.Main(vet.Analyzer)
}
