// Package metadata translates UI-facing contract labels into stored enum values and
// computes expiry-derived fields. Everything here is pure.
package metadata

import "strings"

const (
	DefaultContractType = "Other"
	DefaultPriority     = "Medium"
	DefaultCompliance   = "action-required"
)

var contractTypes = map[string]string{
	"Service Agreement":        "Service_Agreement",
	"Employment Contract":      "Employment_Contract",
	"Non-Disclosure Agreement": "NDA",
	"NDA":                      "NDA",
	"Sales Contract":           "Sales_Contract",
	"Lease Agreement":          "Lease_Agreement",
	"Partnership Agreement":    "Partnership_Agreement",
	"Vendor Agreement":         "Vendor_Agreement",
	"Licensing Agreement":      "Licensing_Agreement",
	"Consulting Agreement":     "Consulting_Agreement",
	"Other":                    "Other",
}

var priorities = map[string]string{
	"low":      "Low",
	"medium":   "Medium",
	"high":     "High",
	"critical": "Critical",
}

var complianceLevels = map[string]string{
	"Low Risk":    "up-to-date",
	"Medium Risk": "pending-review",
	"High Risk":   "non-compliant",
}

// ContractType maps a display label such as "Service Agreement" to its stored value.
// Unknown labels map to DefaultContractType.
func ContractType(label string) string {
	if v, ok := contractTypes[strings.TrimSpace(label)]; ok {
		return v
	}
	return DefaultContractType
}

// Priority maps low/medium/high/critical (any case) to the stored value, else DefaultPriority.
func Priority(label string) string {
	if v, ok := priorities[strings.ToLower(strings.TrimSpace(label))]; ok {
		return v
	}
	return DefaultPriority
}

// Compliance maps a risk label to a compliance state, else DefaultCompliance.
func Compliance(label string) string {
	if v, ok := complianceLevels[strings.TrimSpace(label)]; ok {
		return v
	}
	return DefaultCompliance
}
