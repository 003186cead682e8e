//go:build contract_off

package contract

// Build is the mode of the current build profile.
const Build = ModeDisabled
