// Package driver provides the delivery driver aggregate and the earnings
// ledger. A Driver owns availability (Offline, Online, Busy), approval, last
// known location, and a wallet balance; Earning rows form the append-only
// provenance of that balance.
//
// Matching eligibility requires an approved, Online driver with a known
// location. The driver stays Busy after completing a delivery until an
// explicit status update; returning to Online is the driver's own decision.
package driver
