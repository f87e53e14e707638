// Package model holds the format-agnostic representation of declared
// transaction metadata: saga step graphs and TCC participant sets.
//
// These structs are what external collaborators hand to the analyzers. They
// describe intent only; nothing in this module ever executes a declared
// method. Values arrive either from HCL declaration files (internal/hcl) or
// as JSON bodies in serve mode, which is why the fields carry json tags.
package model
