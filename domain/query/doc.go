// Package query provides the declarative domain-filter and computed-field
// engine. Everything here is pure and stateless except the Evaluator,
// which memoizes computed fields per declared dependency set.
package query
