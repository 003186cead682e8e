//go:build !contract_off

package contract

// Build is the mode of the current build profile. Build with -tags contract_off to
// disable checks.
const Build = ModeEnabled
