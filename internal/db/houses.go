package db

// Houses is the canonical house order. Tie-breaks and sorted listings
// iterate this slice, so the order is load-bearing: Gryffindor wins a
// four-way tie.
var Houses = []string{"Gryffindor", "Ravenclaw", "Hufflepuff", "Slytherin"}

func ValidHouse(name string) bool {
	for _, h := range Houses {
		if h == name {
			return true
		}
	}
	return false
}
