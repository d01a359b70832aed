package models

// Disease labels the classifier can produce.
const (
	DiseaseHealthy = "Healthy"
	DiseasePowdery = "Powdery"
	DiseaseRust    = "Rust"

	// LabelNotCrop is returned when the model's best class index falls
	// outside the known label set.
	LabelNotCrop = "NOT CROP"
)

// DiseaseLabels is the closed label set, indexed by model output class.
var DiseaseLabels = []string{DiseaseHealthy, DiseasePowdery, DiseaseRust}

// NoCureAvailable is the cure text for labels without a known cure.
const NoCureAvailable = "No cure available."

// SuggestedCures maps each disease label to its cure text.
var SuggestedCures = map[string]string{
	DiseaseHealthy: "No action needed, keep monitoring the crop.",
	DiseasePowdery: "Apply fungicide and remove affected leaves.",
	DiseaseRust:    "Use a rust-resistant variety or apply appropriate fungicide.",
}

// CureFor returns the cure text for a disease label.
// Unknown labels map to NoCureAvailable.
func CureFor(label string) string {
	if cure, ok := SuggestedCures[label]; ok {
		return cure
	}
	return NoCureAvailable
}
