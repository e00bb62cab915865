// This package provides a client for the 2ip geolocation API.
//
// The API gives 2 kinds of answers for an IP address: geographic data
// (country, region, city, coordinates, time zone) and network provider
// data (provider name, autonomous system, allocated address range).
// twoiplib issues lookups concurrently for whole batches of addresses
// and converts loosely typed API responses into typed records.
//
// Client is a main entity of the library. It normalizes given
// addresses, fans lookups out over a worker pool, parses responses and
// hands back collections which know how to render themselves as
// tables, CSV or JSON.
//
// Failed addresses never fail a batch: each record carries its own
// error description, and a batch of N unique addresses always produces
// exactly N records.
package twoiplib
