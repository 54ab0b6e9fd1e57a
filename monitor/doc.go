// Package monitor handles fetching and normalizing realtime stop data.
//
// The upstream stop-monitor API returns a nested JSON structure of
// monitors, lines and scheduled departures, plus a list of traffic
// disruption records. The package provides three pieces:
//   - Client: a thin HTTP fetcher for one stop's raw payload
//   - FetchCache: a per-stop payload cache with TTL and enforced
//     spacing between real network calls
//   - Parse: payload normalization into de-duplicated DepartureGroups
//
// The main type handed to consumers is DepartureGroup, one per unique
// route+direction pair at the stop.
package monitor
