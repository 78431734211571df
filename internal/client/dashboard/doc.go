// Package dashboard is the metrics dashboard view: a load-once state machine
// (Loading -> Ready | Error) over the API client, plus the pure derivation of
// the summary cards and chart options from the loaded metrics.
//
// An unauthorized fetch clears the session and navigates to RouteLogin.
// Metrics outside the "vendas" and "usuarios" categories, including those
// without a category, appear only in the total count.
package dashboard
