// internal/app/store/mockdata/mockdata.go
package mockdata

import "github.com/dalemusser/stemboard/internal/domain/models"

// Dataset is the full set of records the dashboard starts with.
type Dataset struct {
	Schools  []models.School
	Events   []models.Event
	Team     []models.TeamMember
	Messages []models.Message
}

// Empty returns a dataset with no records.
func Empty() Dataset {
	return Dataset{}
}

// Seed returns the demo dataset: three records of each kind.
// A fresh copy is built on every call.
func Seed() Dataset {
	return Dataset{
		Schools: []models.School{
			{
				ID:           1,
				Name:         "Addis Ababa High School",
				Description:  "Leading robotics and coding programs with state-of-the-art laboratories.",
				StudentCount: models.Int(200),
				ClubCount:    models.Int(5),
				Icon:         "bi-building",
				Status:       models.StatusActive,
			},
			{
				ID:           2,
				Name:         "Ethiopian Science Academy",
				Description:  "Specialized in environmental science and astronomy with advanced research facilities.",
				StudentCount: models.Int(150),
				ClubCount:    models.Int(4),
				Icon:         "bi-building",
				Status:       models.StatusActive,
			},
			{
				ID:           3,
				Name:         "Future Leaders STEM School",
				Description:  "Focused on electronics and engineering with hands-on project-based learning.",
				StudentCount: models.Int(180),
				ClubCount:    models.Int(6),
				Icon:         "bi-building",
				Status:       models.StatusActive,
			},
		},
		Events: []models.Event{
			{
				ID:               1,
				Title:            "Science Fair 2024",
				Description:      "Annual science fair showcasing student projects from all clubs.",
				EventDate:        "2024-10-15",
				EventType:        "fair",
				Status:           models.EventUpcoming,
				RegistrationLink: "/register/science-fair",
			},
			{
				ID:               2,
				Title:            "Ethio-Hackathon",
				Description:      "48-hour coding competition focusing on developing tech solutions.",
				EventDate:        "2024-11-05",
				EventType:        "competition",
				Status:           models.EventUpcoming,
				RegistrationLink: "/register/hackathon",
			},
			{
				ID:          3,
				Title:       "Robotics Competition 2024",
				Description: "Inter-school robotics competition featuring autonomous robots.",
				EventDate:   "2024-06-20",
				EventType:   "competition",
				Status:      models.EventCompleted,
				GalleryLink: "/gallery/robotics-2024",
			},
		},
		Team: []models.TeamMember{
			{
				ID:          1,
				Name:        "Samuel Bekele",
				Role:        "Society President",
				Description: "Leads the overall direction of the society and represents us in external events.",
				Image:       "/static/img/team/president.webp",
				Status:      models.StatusActive,
			},
			{
				ID:          2,
				Name:        "Liya Tadesse",
				Role:        "Vice President",
				Description: "Coordinates between clubs and ensures smooth operation of all activities.",
				Image:       "/static/img/team/vice-president.webp",
				Status:      models.StatusActive,
			},
			{
				ID:          3,
				Name:        "Daniel Haile",
				Role:        "Robotics Club Coordinator",
				Description: "Leads the robotics club activities, competitions, and project development.",
				Image:       "/static/img/team/robotics-coordinator.webp",
				Status:      models.StatusActive,
			},
		},
		Messages: []models.Message{
			{
				ID:      1,
				Name:    "Meron Tesfaye",
				Email:   "meron.tesfaye@email.com",
				Message: "I'm interested in joining the robotics club. What are the requirements?",
				Date:    "2024-01-15",
			},
			{
				ID:      2,
				Name:    "Abel Getachew",
				Email:   "abel.getachew@email.com",
				Message: "Can you provide more information about the upcoming hackathon?",
				Date:    "2024-01-14",
			},
			{
				ID:      3,
				Name:    "Hana Mohammed",
				Email:   "hana.mohammed@email.com",
				Message: "I'd like to volunteer as a mentor for the coding club.",
				Date:    "2024-01-13",
			},
		},
	}
}
