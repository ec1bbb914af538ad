package ingest

// AnalysisNeighborhoods is the fixed set of 41 Analysis Neighborhoods
// defined by DataSF. Rows whose neighborhood label is not in this set are
// dropped at ingest.
var AnalysisNeighborhoods = []string{
	"Bayview Hunters Point",
	"Bernal Heights",
	"Castro/Upper Market",
	"Chinatown",
	"Excelsior",
	"Financial District/South Beach",
	"Glen Park",
	"Golden Gate Park",
	"Haight Ashbury",
	"Hayes Valley",
	"Inner Richmond",
	"Inner Sunset",
	"Japantown",
	"Lakeshore",
	"Lincoln Park",
	"Lone Mountain/USF",
	"Marina",
	"McLaren Park",
	"Mission",
	"Mission Bay",
	"Nob Hill",
	"Noe Valley",
	"North Beach",
	"Oceanview/Merced/Ingleside",
	"Outer Mission",
	"Outer Richmond",
	"Pacific Heights",
	"Portola",
	"Potrero Hill",
	"Presidio",
	"Presidio Heights",
	"Russian Hill",
	"Seacliff",
	"South of Market",
	"Sunset/Parkside",
	"Tenderloin",
	"Treasure Island",
	"Twin Peaks",
	"Visitacion Valley",
	"West Of Twin Peaks",
	"Western Addition",
}

var neighborhoodSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(AnalysisNeighborhoods))
	for _, n := range AnalysisNeighborhoods {
		set[n] = struct{}{}
	}
	return set
}()

// IsAnalysisNeighborhood reports whether the label is one of the 41
// Analysis Neighborhoods.
func IsAnalysisNeighborhood(label string) bool {
	_, ok := neighborhoodSet[label]
	return ok
}
