package domain

// SeedActivities returns a fresh copy of the school's activity catalog
func SeedActivities() Catalog {
	seed := []Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		// Sports
		{
			Name:            "Soccer Team",
			Description:     "Competitive soccer practices and matches",
			Schedule:        "Mondays, Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 22,
			Participants:    []string{"alex@mergington.edu", "nina@mergington.edu"},
		},
		{
			Name:            "Volleyball Club",
			Description:     "Recreational and competitive volleyball",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"liam@mergington.edu", "zoe@mergington.edu"},
		},
		// Arts
		{
			Name:            "Art Club",
			Description:     "Explore drawing, painting, and mixed media",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu", "ryan@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Acting exercises, stagecraft, and school productions",
			Schedule:        "Fridays, 3:30 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"mia@mergington.edu", "jack@mergington.edu"},
		},
		// Academic
		{
			Name:            "Debate Team",
			Description:     "Prepare for debates, public speaking, and competitions",
			Schedule:        "Thursdays, 5:00 PM - 6:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"oliver@mergington.edu", "ava@mergington.edu"},
		},
		{
			Name:            "Math Club",
			Description:     "Problem solving, math contests, and enrichment",
			Schedule:        "Mondays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"sophia.r@mergington.edu", "ethan@mergington.edu"},
		},
	}

	catalog := make(Catalog, len(seed))
	for _, activity := range seed {
		catalog[activity.Name] = activity
	}
	return catalog
}
