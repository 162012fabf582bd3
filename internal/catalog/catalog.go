// Package catalog holds the static target lists for the sales operation:
// coastal cities, prospect categories, which of them have a live companion
// app, and the hurricane risk zones shown on the dashboard map.
package catalog

// Cities are the coastal target markets, in dashboard display order.
var Cities = []string{
	"Miami", "Houston", "Charleston", "New Orleans", "Tampa",
	"Jacksonville", "Savannah", "Mobile", "Pensacola", "Wilmington",
	"Virginia Beach", "Myrtle Beach", "Corpus Christi", "Galveston", "Key West",
	"Fort Lauderdale", "West Palm Beach", "Naples", "Fort Myers", "Sarasota",
	"Panama City", "Biloxi", "Atlantic City", "Ocean City", "Norfolk",
	"Baton Rouge", "Lafayette", "Lake Charles", "Beaumont", "Port Arthur",
	"Brownsville", "McAllen", "Laredo", "Victoria", "Bay City",
	"Freeport", "Texas City", "Pascagoula", "Gulfport", "Orange Beach",
	"Gulf Shores", "Dauphin Island", "St. Petersburg", "Clearwater", "Bradenton",
	"Venice", "Punta Gorda", "Cape Coral", "Marco Island", "Everglades City",
}

// Categories are the prospect business categories, in dashboard display order.
var Categories = []string{
	"Hotels", "Casinos", "Architects", "Contractors", "Glass Suppliers",
	"Property Managers", "Insurance Companies", "Real Estate Developers", "Resorts", "Condominiums",
	"Shopping Malls", "Office Buildings", "Hospitals", "Schools", "Universities",
	"Government Buildings", "Airports", "Marina", "Country Clubs", "Beach Clubs",
	"Restaurants", "Retail Stores", "Banks", "Museums", "Theaters",
	"Sports Venues", "Convention Centers", "Hotels Extended Stay", "Vacation Rentals", "Apartments",
	"Senior Living", "Medical Centers", "Research Facilities", "Manufacturing", "Warehouses",
	"Distribution Centers", "Car Dealerships", "Yacht Clubs", "Golf Courses", "Theme Parks",
	"Water Parks", "Cruise Terminals", "Ferry Terminals", "Train Stations", "Bus Stations",
	"Libraries", "Community Centers", "Churches", "Synagogues", "Mosques",
}

// appLinks maps catalog names to their deployed companion site. A name with
// no entry renders as an inactive placeholder in the grid. The Architects
// deployment covers North Carolina only, hence the nc- host.
var appLinks = map[string]string{
	"Houston":    "https://houston-glass.stormcommand.com",
	"Hotels":     "https://hotels-glass.stormcommand.com",
	"Architects": "https://nc-architects-glass.stormcommand.com",
}

// AppEntry is one tile of the dashboard application grid.
type AppEntry struct {
	Name   string `json:"name"`
	Type   string `json:"type"` // "city" or "category"
	Active bool   `json:"active"`
	URL    string `json:"url"`
}

// AppGrid returns one entry per catalog name, cities first, in catalog order.
// Only names present in appLinks are active; everything else gets the
// placeholder link.
func AppGrid() []AppEntry {
	grid := make([]AppEntry, 0, len(Cities)+len(Categories))
	for _, city := range Cities {
		grid = append(grid, newEntry(city, "city"))
	}
	for _, category := range Categories {
		grid = append(grid, newEntry(category, "category"))
	}
	return grid
}

func newEntry(name, kind string) AppEntry {
	if url, ok := appLinks[name]; ok {
		return AppEntry{Name: name, Type: kind, Active: true, URL: url}
	}
	return AppEntry{Name: name, Type: kind, Active: false, URL: "#"}
}

// Zone is a hurricane risk marker consumed by the dashboard map widget.
type Zone struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Risk string  `json:"risk"`
}

// HurricaneZones are the markers rendered on the dashboard map.
var HurricaneZones = []Zone{
	{Name: "Miami", Lat: 25.7617, Lon: -80.1918, Risk: "High"},
	{Name: "Houston", Lat: 29.7604, Lon: -95.3698, Risk: "High"},
	{Name: "New Orleans", Lat: 29.9511, Lon: -90.0715, Risk: "High"},
	{Name: "Charleston", Lat: 32.7765, Lon: -79.9311, Risk: "Medium"},
	{Name: "Tampa", Lat: 27.9506, Lon: -82.4572, Risk: "High"},
}
