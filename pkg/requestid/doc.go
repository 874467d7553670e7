// Package requestid tags every HTTP request with an identifier so log lines
// from one blur or submit round trip can be correlated.
package requestid
