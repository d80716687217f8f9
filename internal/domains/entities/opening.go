package entities

// OpeningPerformance is the aggregated record for one opening name.
type OpeningPerformance struct {
	Name    string
	Eco     string
	Wins    int
	Losses  int
	Draws   int
	Total   int
	WinRate float64
}
