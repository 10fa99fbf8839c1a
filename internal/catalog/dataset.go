package catalog

// mockDataset is the fixed corpus behind MockClient. It is small on
// purpose: overlapping genres and distinct years are enough to exercise
// every filter and fallback branch offline.
var mockDataset = []MovieDetails{
	{
		Movie: Movie{
			ID:          603,
			Title:       "The Matrix",
			Overview:    "A computer hacker learns about the true nature of his reality and his role in the war against its controllers.",
			ReleaseDate: "1999-03-30",
			PosterPath:  "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
			GenreIDs:    []int{28, 878},
		},
		Genres: []Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
	},
	{
		Movie: Movie{
			ID:          157336,
			Title:       "Interstellar",
			Overview:    "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
			ReleaseDate: "2014-11-05",
			PosterPath:  "/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
			GenreIDs:    []int{12, 18, 878},
		},
		Genres: []Genre{{ID: 12, Name: "Adventure"}, {ID: 18, Name: "Drama"}, {ID: 878, Name: "Science Fiction"}},
	},
	{
		Movie: Movie{
			ID:          27205,
			Title:       "Inception",
			Overview:    "A thief who steals corporate secrets through dream-sharing technology is given an impossible task.",
			ReleaseDate: "2010-07-16",
			PosterPath:  "/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg",
			GenreIDs:    []int{28, 878, 53},
		},
		Genres: []Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}, {ID: 53, Name: "Thriller"}},
	},
	{
		Movie: Movie{
			ID:          155,
			Title:       "The Dark Knight",
			Overview:    "Batman raises the stakes in his war on crime. With the help of Lt. Jim Gordon and Harvey Dent, Batman sets out to dismantle the remaining criminal organizations that plague the streets.",
			ReleaseDate: "2008-07-18",
			PosterPath:  "/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
			GenreIDs:    []int{18, 28, 80},
		},
		Genres: []Genre{{ID: 18, Name: "Drama"}, {ID: 28, Name: "Action"}, {ID: 80, Name: "Crime"}},
	},
}
