package analyzer

// TeamLocation maps a team code to its home city and park coordinates.
type TeamLocation struct {
	City    string
	State   string
	Stadium string
	Lat     float64
	Lon     float64
}

// teamLocations covers the thirty current franchises plus the historical
// codes that appear in the event table (MON, FLA, CAL, BRO, NYG, WAS).
var teamLocations = map[string]TeamLocation{
	"ARI": {"Phoenix", "AZ", "Chase Field", 33.4455, -112.0667},
	"ATL": {"Atlanta", "GA", "Truist Park", 33.8903, -84.4677},
	"BAL": {"Baltimore", "MD", "Oriole Park", 39.2840, -76.6217},
	"BOS": {"Boston", "MA", "Fenway Park", 42.3467, -71.0972},
	"CHC": {"Chicago", "IL", "Wrigley Field", 41.9484, -87.6553},
	"CWS": {"Chicago", "IL", "Guaranteed Rate Field", 41.8300, -87.6338},
	"CIN": {"Cincinnati", "OH", "Great American Ball Park", 39.0975, -84.5061},
	"CLE": {"Cleveland", "OH", "Progressive Field", 41.4962, -81.6852},
	"COL": {"Denver", "CO", "Coors Field", 39.7559, -104.9942},
	"DET": {"Detroit", "MI", "Comerica Park", 42.3391, -83.0485},
	"HOU": {"Houston", "TX", "Minute Maid Park", 29.7571, -95.3555},
	"KC":  {"Kansas City", "MO", "Kauffman Stadium", 39.0517, -94.4803},
	"LAA": {"Anaheim", "CA", "Angel Stadium", 33.8003, -117.8827},
	"LAD": {"Los Angeles", "CA", "Dodger Stadium", 34.0739, -118.2400},
	"MIA": {"Miami", "FL", "loanDepot park", 25.7781, -80.2197},
	"MIL": {"Milwaukee", "WI", "American Family Field", 43.0280, -87.9712},
	"MIN": {"Minneapolis", "MN", "Target Field", 44.9817, -93.2776},
	"NYM": {"New York", "NY", "Citi Field", 40.7571, -73.8458},
	"NYY": {"New York", "NY", "Yankee Stadium", 40.8296, -73.9262},
	"OAK": {"Oakland", "CA", "Oakland Coliseum", 37.7516, -122.2008},
	"PHI": {"Philadelphia", "PA", "Citizens Bank Park", 39.9061, -75.1665},
	"PIT": {"Pittsburgh", "PA", "PNC Park", 40.4469, -80.0056},
	"SD":  {"San Diego", "CA", "Petco Park", 32.7073, -117.1566},
	"SF":  {"San Francisco", "CA", "Oracle Park", 37.7786, -122.3893},
	"SEA": {"Seattle", "WA", "T-Mobile Park", 47.5914, -122.3325},
	"STL": {"St. Louis", "MO", "Busch Stadium", 38.6226, -90.1928},
	"TB":  {"St. Petersburg", "FL", "Tropicana Field", 27.7682, -82.6534},
	"TEX": {"Arlington", "TX", "Globe Life Field", 32.7472, -97.0833},
	"TOR": {"Toronto", "ON", "Rogers Centre", 43.6414, -79.3894},
	"WSN": {"Washington", "DC", "Nationals Park", 38.8730, -77.0074},

	// Historical teams, pinned to their era's locations
	"MON": {"Montreal", "QC", "Olympic Stadium", 45.5191, -73.5511},
	"FLA": {"Miami", "FL", "Hard Rock Stadium", 25.9580, -80.2389},
	"CAL": {"Anaheim", "CA", "Angel Stadium", 33.8003, -117.8827},
	"BRO": {"Brooklyn", "NY", "Ebbets Field", 40.6698, -73.9442},
	"NYG": {"New York", "NY", "Polo Grounds", 40.8315, -73.9366},
	"WAS": {"Washington", "DC", "Griffith Stadium", 38.9200, -77.0379},
}

// LocationFor returns the home location for a team code.
func LocationFor(team string) (TeamLocation, bool) {
	loc, ok := teamLocations[team]
	return loc, ok
}

// TeamCodes returns every known current-franchise code, in a fixed order.
// Historical codes are excluded; they only appear in the event table.
var TeamCodes = []string{
	"ARI", "ATL", "BAL", "BOS", "CHC", "CWS", "CIN", "CLE", "COL", "DET",
	"HOU", "KC", "LAA", "LAD", "MIA", "MIL", "MIN", "NYM", "NYY", "OAK",
	"PHI", "PIT", "SD", "SF", "SEA", "STL", "TB", "TEX", "TOR", "WSN",
}
