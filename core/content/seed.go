package content

import (
	"strconv"
	"time"
)

// DefaultSeed returns the content loaded when nothing has been stored yet.
func DefaultSeed() Snapshot {
	clients := []Client{
		{
			ID:           "client-1",
			Name:         "First National Bank",
			Type:         ClientBank,
			Status:       ClientActive,
			ContactEmail: "admin@firstnational.com",
			Description:  "Leading regional bank focused on community financial education",
			Branding: ClientBranding{
				PrimaryColor: "#1E40AF",
				AccentColor:  "#3B82F6",
				LogoURL:      "/logos/fnb.png",
				FontFamily:   "Inter",
			},
			CreatedAt: seedTime("2024-01-15"),
			UpdatedAt: seedTime("2024-01-15"),
		},
		{
			ID:           "client-2",
			Name:         "Community Credit Union",
			Type:         ClientCreditUnion,
			Status:       ClientActive,
			ContactEmail: "learning@communitycu.org",
			Description:  "Member-owned financial cooperative serving local communities",
			Branding: ClientBranding{
				PrimaryColor: "#059669",
				AccentColor:  "#10B981",
				LogoURL:      "/logos/ccu.png",
				FontFamily:   "Inter",
			},
			CreatedAt: seedTime("2024-02-20"),
			UpdatedAt: seedTime("2024-02-20"),
		},
	}

	skills := []Skill{
		seedSkill(1, "Personal Finance Fundamentals", "Master the basics of personal financial management", DifficultyBeginner, 180, "2024-01-10"),
		seedSkill(2, "Risk and Reward", "Understanding the relationship between investment risk and potential returns", DifficultyIntermediate, 120, "2024-01-12"),
		seedSkill(3, "Credit Management", "Understanding and improving your credit score", DifficultyIntermediate, 120, "2024-01-14"),
		seedSkill(4, "Retirement Planning", "Plan for a secure financial future", DifficultyIntermediate, 200, "2024-01-16"),
		seedSkill(5, "Investment Strategies", "Learn advanced investment techniques and portfolio management", DifficultyAdvanced, 240, "2024-01-18"),
		seedSkill(6, "Small Business Finance", "Financial management for entrepreneurs", DifficultyAdvanced, 300, "2024-01-20"),
	}
	skills[5].Status = StatusDraft

	for i := range clients {
		clients[i].UserID = DefaultActorID
	}

	return Snapshot{
		Clients:    clients,
		Skills:     skills,
		Modules:    []Module{},
		Lessons:    []Lesson{},
		Quizzes:    []Quiz{},
		Activities: []Activity{},
	}
}

func seedSkill(n int, title, desc string, difficulty Difficulty, duration int, day string) Skill {
	return Skill{
		ID:                "skill-" + strconv.Itoa(n),
		Title:             title,
		Description:       desc,
		Difficulty:        difficulty,
		EstimatedDuration: duration,
		OrderIndex:        n,
		Status:            StatusPublished,
		UserID:            DefaultActorID,
		CreatedAt:         seedTime(day),
		UpdatedAt:         seedTime(day),
	}
}

// seedTime returns 10:00 UTC on the given day.
func seedTime(day string) time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return t.Add(10 * time.Hour)
}
