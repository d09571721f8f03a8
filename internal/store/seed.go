package store

import (
	"time"

	"somabuddy/internal/content"
	"somabuddy/internal/i18n"
	"somabuddy/internal/progress"
	"somabuddy/internal/roster"
)

// Seed returns the demo data set the prototype ships with.
func Seed() *Memory {
	return &Memory{
		students: seedStudents(),
		stories:  seedStories(),
		sessions: seedSessions(),
		patterns: seedErrorPatterns(),
		teachers: []roster.Teacher{
			{ID: 1, Name: "Ms. Wanjiku", School: "Nairobi Primary", Email: "wanjiku@school.ke"},
		},
		parents: []roster.Parent{
			{ID: 1, Name: "Mr. Kamau", Email: "kamau@email.com", Children: []int{1, 3}},
		},
	}
}

func seedStudents() []roster.Student {
	return []roster.Student{
		{ID: 1, Name: "Amina", Age: 8, Grade: 3, Level: roster.LevelBeginner, Points: 150, TotalSessions: 12, StreakDays: 5, Language: i18n.Kiswahili, AvatarColor: "#3b82f6", TeacherID: 1},
		{ID: 2, Name: "Juma", Age: 9, Grade: 4, Level: roster.LevelIntermediate, Points: 230, TotalSessions: 18, StreakDays: 3, Language: i18n.English, AvatarColor: "#8b5cf6", TeacherID: 1},
		{ID: 3, Name: "Njeri", Age: 8, Grade: 3, Level: roster.LevelBeginner, Points: 95, TotalSessions: 7, StreakDays: 2, Language: i18n.Kiswahili, AvatarColor: "#f97316", TeacherID: 1},
		{ID: 4, Name: "Baraka", Age: 10, Grade: 5, Level: roster.LevelAdvanced, Points: 410, TotalSessions: 31, StreakDays: 9, Language: i18n.English, AvatarColor: "#22c55e", TeacherID: 1},
	}
}

func seedStories() []content.Story {
	return []content.Story{
		{
			ID:      1,
			Title:   "The Brave Lion",
			TitleSw: "Simba Shujaa",
			Author:  "eKitabu",
			Text: "Once upon a time, in the wide green savanna, there lived a young lion " +
				"named Kito. Kito was smaller than the other lions, and his roar was soft " +
				"like the evening wind. The other cubs laughed at him, but Kito did not " +
				"give up. Every morning he climbed the tallest rock and practiced his roar. " +
				"One day, a hungry leopard crept toward the village goats. The big lions " +
				"were asleep, and nobody saw the danger. Kito saw it. He took a deep " +
				"breath, stood on his rock, and roared the loudest roar of his life. The " +
				"leopard jumped in fright and ran far away. From that day on, everyone " +
				"knew that courage is not about size. It lives in the heart.",
			TextSw: "Hapo zamani za kale, katika savanna pana ya kijani, aliishi simba mdogo " +
				"aliyeitwa Kito. Kito alikuwa mdogo kuliko simba wengine, na mngurumo wake " +
				"ulikuwa laini kama upepo wa jioni. Wana-simba wengine walimcheka, lakini " +
				"Kito hakukata tamaa. Kila asubuhi alipanda mwamba mrefu na kufanya mazoezi " +
				"ya kunguruma. Siku moja, chui mwenye njaa alinyemelea mbuzi wa kijiji. " +
				"Simba wakubwa walikuwa wamelala, na hakuna aliyeona hatari. Kito aliiona. " +
				"Alivuta pumzi, akasimama juu ya mwamba wake, na kunguruma mngurumo mkubwa " +
				"kuliko yote maishani mwake. Chui aliruka kwa hofu na kukimbia mbali. Tangu " +
				"siku hiyo, kila mtu alijua kwamba ujasiri si ukubwa. Unaishi moyoni.",
			Category:     "folktale",
			Level:        1,
			Points:       50,
			Duration:     "10 min",
			CBCAlignment: "English CBC Grade 3",
			Assigned:     true,
			Publisher:    "eKitabu",
		},
		{
			ID:      2,
			Title:   "The Clever Hare and the Well",
			TitleSw: "Sungura Mjanja na Kisima",
			Author:  "eKitabu",
			Text: "The dry season came, and the river turned to dust. All the animals dug " +
				"a deep well together, except Hare, who was too busy napping. The animals " +
				"agreed: whoever did not dig may not drink. But each night, Hare crept to " +
				"the well and drank his fill. Tortoise offered to keep watch. She covered " +
				"her shell with sticky gum and sat very still by the water. When Hare came " +
				"to drink, he tapped the strange stone, and his paws stuck fast. In the " +
				"morning the animals found him. Hare promised to help with every task from " +
				"then on, and he kept his word, mostly.",
			TextSw: "Kiangazi kilifika, na mto ukageuka kuwa vumbi. Wanyama wote walichimba " +
				"kisima kirefu pamoja, isipokuwa Sungura, aliyekuwa na shughuli ya kulala. " +
				"Wanyama walikubaliana: asiyechimba hatakunywa. Lakini kila usiku, Sungura " +
				"alinyemelea kisimani na kunywa maji tele. Kobe alijitolea kulinda. " +
				"Alifunika gamba lake kwa ulimbo na kukaa kimya kando ya maji. Sungura " +
				"alipokuja kunywa, aligusa jiwe lile geni, na miguu yake ikanasa. Asubuhi " +
				"wanyama walimkuta. Sungura aliahidi kusaidia kila kazi tangu hapo, na " +
				"alitimiza ahadi yake, kwa kiasi.",
			Category:     "folktale",
			Level:        1,
			Points:       50,
			Duration:     "8 min",
			CBCAlignment: "Kiswahili CBC Grade 3",
			Assigned:     true,
			Publisher:    "eKitabu",
		},
		{
			ID:     3,
			Title:  "Wangari Plants a Forest",
			Author: "Storymoja",
			Text: "Wangari loved the tall trees behind her grandmother's house. When she " +
				"grew up and came home from her studies, the trees were gone and the " +
				"stream had dried. So Wangari planted one seedling. Then ten. Then she " +
				"taught the women of her village to plant too. Some people laughed. Some " +
				"tried to stop her. Wangari kept planting. Years later, millions of trees " +
				"stood where bare hills had been, and the streams ran clear again. One " +
				"small seed, planted with patience, can change a whole country.",
			Category:     "biography",
			Level:        2,
			Points:       75,
			Duration:     "12 min",
			CBCAlignment: "English CBC Grade 4",
			Assigned:     true,
			Publisher:    "Storymoja",
		},
		{
			ID:     4,
			Title:  "The Matatu Race",
			Author: "Storymoja",
			Text: "Every morning, two matatus raced down Moi Avenue to reach the stage " +
				"first. Simba Express was fast and loud. Pole Pole was slow and careful. " +
				"One rainy Tuesday, Simba Express sped through a puddle the size of a " +
				"small lake and coughed to a stop, soaked and sulking. Pole Pole rolled " +
				"by gently, picked up every waiting passenger, and even towed Simba " +
				"Express to the garage. The drivers became friends, and from then on the " +
				"only race was to see who could greet the passengers first.",
			Category:     "adventure",
			Level:        3,
			Points:       100,
			Duration:     "15 min",
			CBCAlignment: "English CBC Grade 5",
			Assigned:     false,
			Publisher:    "Storymoja",
		},
	}
}

func seedSessions() []progress.Record {
	return []progress.Record{
		{ID: 1, RunID: "5f2b7a1e-9c64-4b6e-9f0a-3d8c2e1a7b45", StudentID: 1, StoryID: 1, Date: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), Accuracy: 85, Duration: 10 * time.Minute, PointsEarned: 50},
		{ID: 2, RunID: "c3a9e8d1-2f47-4c0b-8a6d-1e9f5b3c7d24", StudentID: 2, StoryID: 3, Date: time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC), Accuracy: 92, Duration: 11 * time.Minute, PointsEarned: 75},
		{ID: 3, RunID: "8d4f1c6a-7e25-4a9b-b3c8-6f2a9d5e1b73", StudentID: 1, StoryID: 2, Date: time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC), Accuracy: 78, Duration: 9 * time.Minute, PointsEarned: 50},
		{ID: 4, RunID: "2b9e5a7d-4c18-4f6e-a1d9-8c3b7f2e6a54", StudentID: 4, StoryID: 4, Date: time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC), Accuracy: 96, Duration: 14 * time.Minute, PointsEarned: 100},
	}
}

func seedErrorPatterns() []progress.ErrorPattern {
	return []progress.ErrorPattern{
		{Type: "vowel-swap", Frequency: 5, Examples: []string{"cat/cot", "bat/bet"}},
		{Type: "letter-reversal", Frequency: 3, Examples: []string{"b/d", "was/saw"}},
		{Type: "word-skip", Frequency: 2, Examples: []string{"the", "and"}},
	}
}
