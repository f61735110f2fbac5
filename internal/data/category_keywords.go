package data

import "github.com/civicgrid/triage/internal/domain"

// categoryKeywords is the deterministic category lock table. A complaint
// containing any phrase locks to that category before the reasoning
// services are consulted. Earlier categories win when phrases from more
// than one category appear.
var categoryKeywords = []domain.CategoryKeywords{
	{
		Category: "Street Light",
		Keywords: []string{
			"street light", "light eriyala", "vilakku", "bulb", "lamp", "current problem",
			"dark", "power cut", "theru vilakku", "electric", "pole", "flickering",
			"light work aagala", "light off", "bulb pochu", "wire cut", "current illa",
			"eb problem", "electricity problem", "bulb not glowing", "current issue",
			"transformer", "fuse pochu", "wire hanging",
			"தெரு விளக்கு", "எரியல", "விளக்கு", "மின்சாரம்", "கரண்ட்",
		},
	},
	{
		Category: "Potholes",
		Keywords: []string{
			"pothole", "kuzhi", "road damaged", "bad road", "thara mattam", "pallam",
			"cracked road", "road cut", "asphalt", "saalai", "road sari illa",
			"பள்ளம்", "குழி", "ரோடு", "சாலை",
		},
	},
	{
		Category: "Garbage",
		Keywords: []string{
			"garbage", "kuppai", "waste", "trash", "dustbin", "bin full", "smell",
			"cleaning", "scavenger", "dump", "dirty", "rubbish",
			"குப்பை", "கழிவு", "துப்புரவு",
		},
	},
	{
		Category: "Water Stagnation",
		Keywords: []string{
			"water stagnation", "thanni thengi", "rain water", "flooding", "logged",
			"thanni nikkuthu", "drainage block", "sewage overflow", "kalladai", "blocked",
			"தண்ணீர் தேக்கம்", "மழை நீர்", "தேங்கி", "சாக்கடை",
		},
	},
	{
		Category: "Mosquito Menace",
		Keywords: []string{
			"mosquito", "kosu", "fogging", "dengue", "malaria", "spray", "kosu thollai",
			"kosu adhigam",
		},
	},
	{
		Category: "Stray Dogs",
		Keywords: []string{
			"dog", "naai", "stray", "biting", "barking", "naai thollai", "theru naai",
		},
	},
	{
		Category: "Fallen Tree",
		Keywords: []string{
			"tree fallen", "maram vilunthuruche", "branch broken", "tree block", "maram",
		},
	},
}

// CategoryKeywordTable returns the category lock table in match order.
func CategoryKeywordTable() []domain.CategoryKeywords {
	return categoryKeywords
}
