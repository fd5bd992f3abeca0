package analyzer

// stadiumData covers every current park plus the historical codes in the
// event table. Altitude is feet above sea level.
var stadiumData = map[string]StadiumCharacteristics{
	// AL East
	"BAL": {
		Stadium: "Oriole Park at Camden Yards", Opened: 1992, Type: "outdoor", Altitude: 33,
		LeftField: 333, CenterField: 400, RightField: 318, FoulTerritory: "small",
		Characteristics: []string{"pitcher_friendly", "brick_warehouse", "short_right_field"},
		Surface:         "grass", Climate: "humid_continental",
	},
	"BOS": {
		Stadium: "Fenway Park", Opened: 1912, Type: "outdoor", Altitude: 20,
		LeftField: 310, CenterField: 420, RightField: 302, FoulTerritory: "very_small",
		Characteristics: []string{"hitter_friendly", "green_monster", "pesky_pole", "historic"},
		Surface:         "grass", Climate: "humid_continental",
	},
	"NYY": {
		Stadium: "Yankee Stadium", Opened: 2009, Type: "outdoor", Altitude: 55,
		LeftField: 318, CenterField: 408, RightField: 314, FoulTerritory: "small",
		Characteristics: []string{"hitter_friendly", "short_porch", "modern"},
		Surface:         "grass", Climate: "humid_continental",
	},
	"TB": {
		Stadium: "Tropicana Field", Opened: 1990, Type: "dome", Altitude: 15,
		LeftField: 315, CenterField: 404, RightField: 322, FoulTerritory: "large",
		Characteristics: []string{"pitcher_friendly", "artificial_turf", "catwalks", "fixed_dome"},
		Surface:         "artificial_turf", Climate: "controlled",
	},
	"TOR": {
		Stadium: "Rogers Centre", Opened: 1989, Type: "retractable_dome", Altitude: 300,
		LeftField: 328, CenterField: 400, RightField: 328, FoulTerritory: "large",
		Characteristics: []string{"neutral", "artificial_turf", "retractable_roof"},
		Surface:         "artificial_turf", Climate: "controlled_or_continental",
	},

	// AL Central
	"CWS": {
		Stadium: "Guaranteed Rate Field", Opened: 1991, Type: "outdoor", Altitude: 595,
		LeftField: 330, CenterField: 400, RightField: 335, FoulTerritory: "average",
		Characteristics: []string{"neutral", "wind_patterns"},
		Surface:         "grass", Climate: "humid_continental",
	},
	"CLE": {
		Stadium: "Progressive Field", Opened: 1994, Type: "outdoor", Altitude: 660,
		LeftField: 325, CenterField: 405, RightField: 325, FoulTerritory: "average",
		Characteristics: []string{"pitcher_friendly", "wind_off_lake"},
		Surface:         "grass", Climate: "humid_continental",
	},
	"DET": {
		Stadium: "Comerica Park", Opened: 2000, Type: "outdoor", Altitude: 585,
		LeftField: 345, CenterField: 420, RightField: 330, FoulTerritory: "large",
		Characteristics: []string{"pitcher_friendly", "deep_center", "large_foul_territory"},
		Surface:         "grass", Climate: "humid_continental",
	},
	"KC": {
		Stadium: "Kauffman Stadium", Opened: 1973, Type: "outdoor", Altitude: 750,
		LeftField: 330, CenterField: 410, RightField: 330, FoulTerritory: "large",
		Characteristics: []string{"pitcher_friendly", "fountains", "large_foul_territory"},
		Surface:         "grass", Climate: "humid_continental",
	},
	"MIN": {
		Stadium: "Target Field", Opened: 2010, Type: "outdoor", Altitude: 815,
		LeftField: 339, CenterField: 411, RightField: 328, FoulTerritory: "average",
		Characteristics: []string{"neutral", "cold_weather"},
		Surface:         "grass", Climate: "humid_continental",
	},

	// AL West
	"HOU": {
		Stadium: "Minute Maid Park", Opened: 2000, Type: "retractable_dome", Altitude: 22,
		LeftField: 315, CenterField: 436, RightField: 326, FoulTerritory: "small",
		Characteristics: []string{"quirky", "crawford_boxes", "deep_center", "retractable_roof"},
		Surface:         "grass", Climate: "controlled_or_subtropical",
	},
	"LAA": {
		Stadium: "Angel Stadium", Opened: 1966, Type: "outdoor", Altitude: 150,
		LeftField: 330, CenterField: 400, RightField: 330, FoulTerritory: "large",
		Characteristics: []string{"pitcher_friendly", "large_foul_territory", "marine_layer"},
		Surface:         "grass", Climate: "mediterranean",
	},
	"OAK": {
		Stadium: "Oakland Coliseum", Opened: 1966, Type: "outdoor", Altitude: 6,
		LeftField: 330, CenterField: 400, RightField: 330, FoulTerritory: "massive",
		Characteristics: []string{"pitcher_friendly", "massive_foul_territory", "marine_layer"},
		Surface:         "grass", Climate: "mediterranean",
	},
	"SEA": {
		Stadium: "T-Mobile Park", Opened: 1999, Type: "retractable_dome", Altitude: 15,
		LeftField: 331, CenterField: 401, RightField: 326, FoulTerritory: "average",
		Characteristics: []string{"pitcher_friendly", "marine_layer", "retractable_roof"},
		Surface:         "grass", Climate: "controlled_or_oceanic",
	},
	"TEX": {
		Stadium: "Globe Life Field", Opened: 2020, Type: "retractable_dome", Altitude: 550,
		LeftField: 329, CenterField: 407, RightField: 326, FoulTerritory: "average",
		Characteristics: []string{"modern", "retractable_roof", "hot_climate"},
		Surface:         "grass", Climate: "controlled_or_humid_subtropical",
	},

	// NL East
	"ATL": {
		Stadium: "Truist Park", Opened: 2017, Type: "outdoor", Altitude: 1050,
		LeftField: 335, CenterField: 400, RightField: 325, FoulTerritory: "average",
		Characteristics: []string{"modern", "higher_altitude", "humid_climate"},
		Surface:         "grass", Climate: "humid_subtropical",
	},
	"MIA": {
		Stadium: "loanDepot park", Opened: 2012, Type: "retractable_dome", Altitude: 8,
		LeftField: 344, CenterField: 418, RightField: 325, FoulTerritory: "average",
		Characteristics: []string{"modern", "retractable_roof", "tropical_climate"},
		Surface:         "grass", Climate: "controlled_or_tropical",
	},
	"NYM": {
		Stadium: "Citi Field", Opened: 2009, Type: "outdoor", Altitude: 20,
		LeftField: 335, CenterField: 408, RightField: 330, FoulTerritory: "average",
		Characteristics: []string{"pitcher_friendly", "marine_breeze"},
		Surface:         "grass", Climate: "humid_continental",
	},
	"PHI": {
		Stadium: "Citizens Bank Park", Opened: 2004, Type: "outdoor", Altitude: 50,
		LeftField: 329, CenterField: 401, RightField: 330, FoulTerritory: "average",
		Characteristics: []string{"hitter_friendly", "short_dimensions"},
		Surface:         "grass", Climate: "humid_continental",
	},
	"WSN": {
		Stadium: "Nationals Park", Opened: 2008, Type: "outdoor", Altitude: 50,
		LeftField: 336, CenterField: 402, RightField: 335, FoulTerritory: "average",
		Characteristics: []string{"neutral", "modern"},
		Surface:         "grass", Climate: "humid_subtropical",
	},

	// NL Central
	"CHC": {
		Stadium: "Wrigley Field", Opened: 1914, Type: "outdoor", Altitude: 595,
		LeftField: 355, CenterField: 400, RightField: 353, FoulTerritory: "small",
		Characteristics: []string{"historic", "wind_patterns", "ivy_walls", "small_foul_territory"},
		Surface:         "grass", Climate: "humid_continental",
	},
	"CIN": {
		Stadium: "Great American Ball Park", Opened: 2003, Type: "outdoor", Altitude: 550,
		LeftField: 325, CenterField: 404, RightField: 325, FoulTerritory: "average",
		Characteristics: []string{"hitter_friendly", "riverfront", "gaps"},
		Surface:         "grass", Climate: "humid_continental",
	},
	"MIL": {
		Stadium: "American Family Field", Opened: 2001, Type: "retractable_dome", Altitude: 635,
		LeftField: 344, CenterField: 400, RightField: 345, FoulTerritory: "average",
		Characteristics: []string{"neutral", "retractable_roof", "cold_climate"},
		Surface:         "grass", Climate: "controlled_or_humid_continental",
	},
	"PIT": {
		Stadium: "PNC Park", Opened: 2001, Type: "outdoor", Altitude: 730,
		LeftField: 325, CenterField: 399, RightField: 320, FoulTerritory: "average",
		Characteristics: []string{"pitcher_friendly", "river_setting", "short_right_field"},
		Surface:         "grass", Climate: "humid_continental",
	},
	"STL": {
		Stadium: "Busch Stadium", Opened: 2006, Type: "outdoor", Altitude: 465,
		LeftField: 336, CenterField: 400, RightField: 335, FoulTerritory: "average",
		Characteristics: []string{"neutral", "modern"},
		Surface:         "grass", Climate: "humid_continental",
	},

	// NL West
	"ARI": {
		Stadium: "Chase Field", Opened: 1998, Type: "retractable_dome", Altitude: 1100,
		LeftField: 330, CenterField: 407, RightField: 334, FoulTerritory: "large",
		Characteristics: []string{"pitcher_friendly", "retractable_roof", "dry_heat", "altitude"},
		Surface:         "grass", Climate: "controlled_or_desert",
	},
	"COL": {
		Stadium: "Coors Field", Opened: 1995, Type: "outdoor", Altitude: 5200,
		LeftField: 347, CenterField: 415, RightField: 350, FoulTerritory: "large",
		Characteristics: []string{"extreme_hitter_friendly", "high_altitude", "thin_air", "large_dimensions"},
		Surface:         "grass", Climate: "semi_arid",
	},
	"LAD": {
		Stadium: "Dodger Stadium", Opened: 1962, Type: "outdoor", Altitude: 340,
		LeftField: 330, CenterField: 395, RightField: 330, FoulTerritory: "large",
		Characteristics: []string{"pitcher_friendly", "large_foul_territory", "marine_layer"},
		Surface:         "grass", Climate: "mediterranean",
	},
	"SD": {
		Stadium: "Petco Park", Opened: 2004, Type: "outdoor", Altitude: 60,
		LeftField: 336, CenterField: 396, RightField: 322, FoulTerritory: "large",
		Characteristics: []string{"extreme_pitcher_friendly", "marine_layer", "cool_weather", "large_foul_territory"},
		Surface:         "grass", Climate: "mediterranean",
	},
	"SF": {
		Stadium: "Oracle Park", Opened: 2000, Type: "outdoor", Altitude: 8,
		LeftField: 339, CenterField: 399, RightField: 309, FoulTerritory: "large",
		Characteristics: []string{"pitcher_friendly", "marine_layer", "cold_weather", "mccovey_cove", "wind_patterns"},
		Surface:         "grass", Climate: "mediterranean",
	},

	// Historical parks for older events
	"MON": {
		Stadium: "Olympic Stadium", Opened: 1976, Type: "dome", Altitude: 180,
		LeftField: 325, CenterField: 404, RightField: 325, FoulTerritory: "large",
		Characteristics: []string{"artificial_turf", "fixed_dome", "neutral"},
		Surface:         "artificial_turf", Climate: "controlled",
	},
	"CAL": {
		Stadium: "Angel Stadium", Opened: 1966, Type: "outdoor", Altitude: 150,
		LeftField: 330, CenterField: 400, RightField: 330, FoulTerritory: "large",
		Characteristics: []string{"pitcher_friendly", "large_foul_territory"},
		Surface:         "grass", Climate: "mediterranean",
	},
}
