package weather

// Severity ranks an alert's urgency as reported by NWS.
type Severity int

const (
	SeverityUnknown  Severity = iota // Not reported or unrecognized
	SeverityMinor                    // Minimal threat to life or property
	SeverityModerate                 // Possible threat
	SeveritySevere                   // Significant threat
	SeverityExtreme                  // Extraordinary threat
)

// String returns the human-readable name for a Severity.
func (s Severity) String() string {
	switch s {
	case SeverityMinor:
		return "minor"
	case SeverityModerate:
		return "moderate"
	case SeveritySevere:
		return "severe"
	case SeverityExtreme:
		return "extreme"
	default:
		return "unknown"
	}
}

// ParseSeverity maps the severity string from an NWS alert feature to a
// Severity. Unrecognized values map to SeverityUnknown.
func ParseSeverity(s string) Severity {
	switch s {
	case "Minor":
		return SeverityMinor
	case "Moderate":
		return SeverityModerate
	case "Severe":
		return SeveritySevere
	case "Extreme":
		return SeverityExtreme
	default:
		return SeverityUnknown
	}
}

// severityRank returns the sort order for severities. Higher is worse.
func severityRank(s Severity) int {
	switch s {
	case SeverityMinor:
		return 1
	case SeverityModerate:
		return 2
	case SeveritySevere:
		return 3
	case SeverityExtreme:
		return 4
	default:
		return 0
	}
}

// WorseSeverity returns whichever Severity is more severe.
func WorseSeverity(a, b Severity) Severity {
	if severityRank(a) >= severityRank(b) {
		return a
	}
	return b
}
