// Package client implements the dsws command line: it selects one command
// from the flags, talks to the EventServer through a transport and prints
// each record as one line of text.
//
// Examples:
//
//	dsws -l                       # latest events
//	dsws -S webpi2 -P 50051 -E Garden:Temp
//	dsws -f 42=Garden             # bind sensor 42 to Garden
//	dsws -i -c                    # sensor info, then clear unknown events
//	dsws -a --filter 'value > 20.0'
package client
