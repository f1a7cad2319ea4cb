package dataset

import "github.com/fandomstats/kudoscope/models"

// Sample returns a small built-in dataset shaped like a real harvest, eight
// works across four fandoms. The demo command writes and analyzes it so the
// whole pipeline can be exercised without touching the archive.
func Sample() []models.Work {
	return []models.Work{
		{
			FandomSearched: "Sherlock",
			Title:          "A Study in Pink Revisited",
			WorkID:         "100001",
			Author:         "SherlockFan221",
			Rating:         "Teen And Up Audiences",
			Warnings:       "No Archive Warnings Apply",
			Category:       "M/M",
			Fandoms:        "Sherlock (TV)",
			Tags:           "Fluff, Case Fic, First Kiss",
			Relationships:  "Sherlock Holmes/John Watson",
			Characters:     "Sherlock Holmes, John Watson, Mrs Hudson",
			Language:       "English",
			Words:          8500,
			Chapters:       "1/1",
			Kudos:          342,
			Bookmarks:      45,
			Hits:           2891,
			Summary:        "An alternate take on how they met...",
		},
		{
			FandomSearched: "Sherlock",
			Title:          "The Consulting Detective and the Doctor",
			WorkID:         "100002",
			Author:         "BBCFan",
			Rating:         "General Audiences",
			Warnings:       "No Archive Warnings Apply",
			Category:       "Gen",
			Fandoms:        "Sherlock (TV)",
			Tags:           "Friendship, Baker Street, Humor",
			Characters:     "Sherlock Holmes, John Watson, Greg Lestrade",
			Language:       "English",
			Words:          12000,
			Chapters:       "5/5",
			Kudos:          521,
			Bookmarks:      78,
			Hits:           4523,
			Summary:        "Five times they solved a case together...",
		},
		{
			FandomSearched: "Star Trek",
			Title:          "To Boldly Go",
			WorkID:         "100003",
			Author:         "TrekkerForever",
			Rating:         "Teen And Up Audiences",
			Warnings:       "No Archive Warnings Apply",
			Category:       "Gen",
			Fandoms:        "Star Trek: The Original Series",
			Tags:           "Space Exploration, Adventure, Team Bonding",
			Characters:     "James T. Kirk, Spock, Leonard McCoy",
			Language:       "English",
			Words:          15000,
			Chapters:       "8/8",
			Kudos:          678,
			Bookmarks:      92,
			Hits:           5234,
			Summary:        "A new mission on the edge of known space...",
		},
		{
			FandomSearched: "Star Trek",
			Title:          "Logical Conclusions",
			WorkID:         "100004",
			Author:         "VulcanLogic",
			Rating:         "Mature",
			Warnings:       "No Archive Warnings Apply",
			Category:       "M/M",
			Fandoms:        "Star Trek: The Original Series",
			Tags:           "Romance, Angst, Hurt/Comfort",
			Relationships:  "James T. Kirk/Spock",
			Characters:     "James T. Kirk, Spock",
			Language:       "English",
			Words:          25000,
			Chapters:       "12/12",
			Kudos:          892,
			Bookmarks:      156,
			Hits:           8901,
			Summary:        "After a dangerous mission, Kirk and Spock must confront...",
		},
		{
			FandomSearched: "My Chemical Romance",
			Title:          "Killjoys Never Die",
			WorkID:         "100005",
			Author:         "DangerDaysForever",
			Rating:         "Mature",
			Warnings:       "Graphic Depictions Of Violence",
			Category:       "M/M",
			Fandoms:        "My Chemical Romance",
			Tags:           "Band Fic, Danger Days Era, Angst",
			Relationships:  "Gerard Way/Frank Iero",
			Characters:     "Gerard Way, Frank Iero, Mikey Way, Ray Toro",
			Language:       "English",
			Words:          18000,
			Chapters:       "10/10",
			Kudos:          1245,
			Bookmarks:      234,
			Hits:           12456,
			Summary:        "In the zones, the killjoys fight for freedom...",
		},
		{
			FandomSearched: "My Chemical Romance",
			Title:          "Black Parade Memories",
			WorkID:         "100006",
			Author:         "MCRmy4ever",
			Rating:         "Teen And Up Audiences",
			Warnings:       "No Archive Warnings Apply",
			Category:       "Gen",
			Fandoms:        "My Chemical Romance",
			Tags:           "Tour Life, Friendship, Found Family",
			Characters:     "Gerard Way, Mikey Way, Frank Iero, Ray Toro",
			Language:       "English",
			Words:          7500,
			Chapters:       "3/3",
			Kudos:          567,
			Bookmarks:      89,
			Hits:           6789,
			Summary:        "Behind the scenes of the Black Parade tour...",
		},
		{
			FandomSearched: "Fall Out Boy",
			Title:          "Save Rock and Roll",
			WorkID:         "100007",
			Author:         "FOBFanatic",
			Rating:         "Teen And Up Audiences",
			Warnings:       "No Archive Warnings Apply",
			Category:       "M/M",
			Fandoms:        "Fall Out Boy",
			Tags:           "Band Fic, Hiatus Era, Getting Back Together",
			Relationships:  "Patrick Stump/Pete Wentz",
			Characters:     "Patrick Stump, Pete Wentz, Joe Trohman, Andy Hurley",
			Language:       "English",
			Words:          22000,
			Chapters:       "15/15",
			Kudos:          1089,
			Bookmarks:      198,
			Hits:           10234,
			Summary:        "During the hiatus, Patrick and Pete find their way back...",
		},
		{
			FandomSearched: "Fall Out Boy",
			Title:          "Young Volcanoes",
			WorkID:         "100008",
			Author:         "PeterickShipper",
			Rating:         "Explicit",
			Warnings:       "No Archive Warnings Apply",
			Category:       "M/M",
			Fandoms:        "Fall Out Boy",
			Tags:           "Romance, Smut, Band Dynamics",
			Relationships:  "Patrick Stump/Pete Wentz",
			Characters:     "Patrick Stump, Pete Wentz",
			Language:       "English",
			Words:          9500,
			Chapters:       "1/1",
			Kudos:          678,
			Bookmarks:      123,
			Hits:           7891,
			Summary:        "A night after a show in Chicago...",
		},
	}
}
