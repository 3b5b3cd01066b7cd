// Package subsetting implements C10: the optional subsetting DD walked in
// lock-step with construction, constraining which Lo/Hi arcs the
// construction engine is allowed to take (spec.md §4.8).
package subsetting
