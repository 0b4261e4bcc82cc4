package repository

import "activity-roster-service/internal/model"

// SeedActivities возвращает стартовый набор занятий школы Mergington.
// Каждый вызов отдаёт новый реестр, поэтому его можно менять без последствий.
func SeedActivities() model.Roster {
	return model.Roster{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},

		// Спорт
		"Basketball Team": {
			Description:     "Competitive basketball practices and inter-school games",
			Schedule:        "Mondays, Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"noah@mergington.edu", "liam@mergington.edu"},
		},
		"Soccer Club": {
			Description:     "Recreational soccer training and weekend matches",
			Schedule:        "Tuesdays, Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"ava@mergington.edu", "isabella@mergington.edu"},
		},
		"Volleyball Club": {
			Description:     "Team volleyball training and friendly matches",
			Schedule:        "Thursdays, 5:00 PM - 6:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"sophie@mergington.edu", "lucas@mergington.edu"},
		},
		"Table Tennis Club": {
			Description:     "Table tennis practice and tournaments",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"alex@mergington.edu", "emma@mergington.edu"},
		},

		// Искусство
		"Art Club": {
			Description:     "Explore drawing, painting, and mixed media projects",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"mia@mergington.edu", "charlotte@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Acting workshops and school theater productions",
			Schedule:        "Fridays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
		},
		"Photography Club": {
			Description:     "Learn photography techniques and participate in photo walks",
			Schedule:        "Mondays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"leo@mergington.edu", "ella@mergington.edu"},
		},
		"Music Band": {
			Description:     "Practice and perform music in a school band",
			Schedule:        "Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"henry@mergington.edu", "grace@mergington.edu"},
		},

		// Интеллектуальные
		"Debate Team": {
			Description:     "Practice public speaking, argumentation, and compete in debates",
			Schedule:        "Tuesdays, 5:00 PM - 6:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"lucas@mergington.edu", "benjamin@mergington.edu"},
		},
		"Science Club": {
			Description:     "Hands-on experiments, science fairs, and research projects",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"elijah@mergington.edu", "mia.s@mergington.edu"},
		},
		"Math Olympiad": {
			Description:     "Prepare for and participate in math competitions",
			Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"william@mergington.edu", "sofia@mergington.edu"},
		},
		"Robotics Club": {
			Description:     "Build and program robots for various challenges",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"james@mergington.edu", "victoria@mergington.edu"},
		},
	}
}
