// Package validation contains the logic for validating
// request data.
//
// Payloads decode themselves field by field (Fields) and validate with
// explicit per-entity functions, reporting every failing field at once.
// validator tags remain supported for simpler request types, and both
// are turned into a format the client can understand.
package validation
