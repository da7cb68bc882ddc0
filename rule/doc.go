// Package rule defines validation rules and serializes their parameters into
// the "keyword:p1,p2" form a rule compiler consumes, e.g. "decimal:2,4" or
// "required_if:type,business".
//
// Rules are definitions only. Evaluating them is the job of the validator
// the framework is configured with.
package rule
