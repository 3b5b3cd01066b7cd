// Package count implements C9: bottom-up counting DP over a reduced ZDD
// in a pluggable numeric type, plus uniform random sampling driven by the
// resulting count table.
//
// All three numeric backends (Int64Counter, Float64Counter,
// BigIntCounter) implement the same Counter interface so Count and Sample
// are written once, generically, against it.
package count
