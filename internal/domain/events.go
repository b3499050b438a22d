package domain

// Vendor event names sent to the Badger service. These drive the badge
// definitions configured in the Badger dashboard (milestones, streaks,
// aggregations), so the strings are part of the external contract.
const (
	VendorEventVisit    = "visit"
	VendorEventPurchase = "purchase"
	VendorEventOrder    = "order"
)
