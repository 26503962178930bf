package recommender

// cropNames maps classifier class ids to crop names. The table is part of the
// model contract and matches the labels the classifier was trained on.
var cropNames = map[int]string{
	1:  "Rice",
	2:  "Maize",
	3:  "Jute",
	4:  "Cotton",
	5:  "Coconut",
	6:  "Papaya",
	7:  "Orange",
	8:  "Apple",
	9:  "Muskmelon",
	10: "Watermelon",
	11: "Grapes",
	12: "Mango",
	13: "Banana",
	14: "Pomegranate",
	15: "Lentil",
	16: "Blackgram",
	17: "Mungbean",
	18: "Mothbeans",
	19: "Pigeonpeas",
	20: "Kidneybeans",
	21: "Chickpea",
	22: "Coffee",
}

// CropName resolves a class id to its crop name, or "Unknown Crop" for ids
// outside the table.
func CropName(id int) string {
	if name, ok := cropNames[id]; ok {
		return name
	}
	return "Unknown Crop"
}
