package models

// Zones lists the zone codes offered by the entry form. The list is advisory:
// the API stores any zone string it receives.
var Zones = []string{"SCT", "CWT", "TWA", "ONT", "CW", "CN", "ER", "NR", "NER", "SR"}

// IsKnownZone reports whether zone is one of the codes in Zones.
func IsKnownZone(zone string) bool {
	for _, z := range Zones {
		if z == zone {
			return true
		}
	}
	return false
}
