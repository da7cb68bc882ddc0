// Package pipe provides whole-object passes the framework runs over the raw
// property map of an object before validation.
//
// A pipe iterates the fixed list of fields declared on the target class and
// rewrites the values of those fields only. It never adds properties that
// were absent from the input and never touches undeclared ones.
package pipe
