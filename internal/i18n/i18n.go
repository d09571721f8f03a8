// Package i18n holds the English/Kiswahili message catalog for the app.
// Screens and the flow layer look copy up by key instead of embedding
// literals, so every user-facing string lives here.
package i18n

import "fmt"

// Lang identifies a supported display language.
type Lang string

const (
	English   Lang = "en"
	Kiswahili Lang = "sw"
)

// Valid reports whether l is a supported language.
func (l Lang) Valid() bool {
	return l == English || l == Kiswahili
}

// Toggle returns the other supported language.
func (l Lang) Toggle() Lang {
	if l == Kiswahili {
		return English
	}
	return Kiswahili
}

// Name returns the language's own display name.
func (l Lang) Name() string {
	if l == Kiswahili {
		return "Kiswahili"
	}
	return "English"
}

// Key identifies a catalog entry.
type Key string

const (
	AppTitle    Key = "app.title"
	AppSubtitle Key = "app.subtitle"
	AppTagline  Key = "app.tagline"
	GetStarted  Key = "app.getStarted"
	PressAnyKey Key = "app.pressAnyKey"

	RoleSelectTitle Key = "role.title"
	RoleStudent     Key = "role.student"
	RoleTeacher     Key = "role.teacher"
	RoleParent      Key = "role.parent"

	LoginTitle       Key = "login.title"
	LoginSubtitle    Key = "login.subtitle"
	LoginPlaceholder Key = "login.placeholder"
	LoginButton      Key = "login.button"
	LoginNotFound    Key = "login.notFound"
	LoginQuickAccess Key = "login.quickAccess"

	LibraryTitle    Key = "library.title"
	LibraryProgress Key = "library.progress"
	LibraryPoints   Key = "library.points"
	LibraryLevel    Key = "library.level"
	LibraryEmpty    Key = "library.empty"

	ReadingTitle   Key = "reading.title"
	ReadingPage    Key = "reading.page"
	ReadingTricky  Key = "reading.tricky"
	ReadingFinish  Key = "reading.finish"
	ReadingGiveUp  Key = "reading.giveUp"

	ProgressTitle    Key = "progress.title"
	ProgressSessions Key = "progress.sessions"
	ProgressAccuracy Key = "progress.accuracy"
	ProgressStreak   Key = "progress.streak"
	ProgressEmpty    Key = "progress.empty"

	TeacherDashTitle Key = "teacher.title"
	TeacherPatterns  Key = "teacher.patterns"
	ParentDashTitle  Key = "parent.title"

	Back Key = "nav.back"
	Quit Key = "nav.quit"
)

var catalog = map[Lang]map[Key]string{
	English: {
		AppTitle:    "Welcome to SomaBuddy",
		AppSubtitle: "Your AI Reading Companion",
		AppTagline:  "Transforming reading from a struggle into an empowering adventure",
		GetStarted:  "Get Started",
		PressAnyKey: "press any key to continue",

		RoleSelectTitle: "Who is reading today?",
		RoleStudent:     "I am a Student",
		RoleTeacher:     "I am a Teacher",
		RoleParent:      "I am a Parent",

		LoginTitle:       "Student Login",
		LoginSubtitle:    "Enter your student ID to continue",
		LoginPlaceholder: "Enter your ID",
		LoginButton:      "Start Reading",
		LoginNotFound:    "Student ID not found. Please check and try again.",
		LoginQuickAccess: "Quick Access",

		LibraryTitle:    "Story Library",
		LibraryProgress: "My Progress",
		LibraryPoints:   "points",
		LibraryLevel:    "Level",
		LibraryEmpty:    "No stories assigned yet. Check back soon!",

		ReadingTitle:  "Story Time",
		ReadingPage:   "Page",
		ReadingTricky: "mark tricky words",
		ReadingFinish: "finish story",
		ReadingGiveUp: "back to library",

		ProgressTitle:    "My Progress",
		ProgressSessions: "Sessions",
		ProgressAccuracy: "Accuracy",
		ProgressStreak:   "Day Streak",
		ProgressEmpty:    "No reading sessions yet. Pick a story to get started!",

		TeacherDashTitle: "Teacher Dashboard",
		TeacherPatterns:  "Common Error Patterns",
		ParentDashTitle:  "Parent Dashboard",

		Back: "Back",
		Quit: "Quit",
	},
	Kiswahili: {
		AppTitle:    "Karibu SomaBuddy",
		AppSubtitle: "Rafiki Wako wa Kusoma",
		AppTagline:  "Kubadilisha kusoma kuwa safari ya nguvu",
		GetStarted:  "Anza Sasa",
		PressAnyKey: "bonyeza kitufe chochote kuendelea",

		RoleSelectTitle: "Nani anasoma leo?",
		RoleStudent:     "Mimi ni Mwanafunzi",
		RoleTeacher:     "Mimi ni Mwalimu",
		RoleParent:      "Mimi ni Mzazi",

		LoginTitle:       "Kuingia kwa Mwanafunzi",
		LoginSubtitle:    "Weka nambari yako ya mwanafunzi kuendelea",
		LoginPlaceholder: "Weka nambari yako",
		LoginButton:      "Anza Kusoma",
		LoginNotFound:    "Nambari ya mwanafunzi haijapatikana. Tafadhali angalia na ujaribu tena.",
		LoginQuickAccess: "Ufikiaji wa Haraka",

		LibraryTitle:    "Maktaba ya Hadithi",
		LibraryProgress: "Maendeleo Yangu",
		LibraryPoints:   "pointi",
		LibraryLevel:    "Kiwango",
		LibraryEmpty:    "Hakuna hadithi bado. Rudi hivi karibuni!",

		ReadingTitle:  "Wakati wa Hadithi",
		ReadingPage:   "Ukurasa",
		ReadingTricky: "weka alama maneno magumu",
		ReadingFinish: "maliza hadithi",
		ReadingGiveUp: "rudi maktaba",

		ProgressTitle:    "Maendeleo Yangu",
		ProgressSessions: "Vipindi",
		ProgressAccuracy: "Usahihi",
		ProgressStreak:   "Mfululizo wa Siku",
		ProgressEmpty:    "Hakuna vipindi vya kusoma bado. Chagua hadithi kuanza!",

		TeacherDashTitle: "Dashibodi ya Mwalimu",
		TeacherPatterns:  "Makosa ya Kawaida",
		ParentDashTitle:  "Dashibodi ya Mzazi",

		Back: "Rudi",
		Quit: "Ondoka",
	},
}

// T returns the message for key in lang, falling back to English when the
// key has no translation.
func T(lang Lang, key Key) string {
	if msgs, ok := catalog[lang]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	return catalog[English][key]
}

// WelcomeBack greets a returning student by name.
func WelcomeBack(lang Lang, name string) string {
	if lang == Kiswahili {
		return fmt.Sprintf("Karibu tena, %s!", name)
	}
	return fmt.Sprintf("Welcome back, %s!", name)
}

// RoleWelcome greets a teacher or parent selected on the role screen.
func RoleWelcome(lang Lang, name string) string {
	if lang == Kiswahili {
		return fmt.Sprintf("Karibu, %s!", name)
	}
	return fmt.Sprintf("Welcome, %s!", name)
}

// SessionComplete congratulates a student on a finished story.
func SessionComplete(lang Lang, points int) string {
	if lang == Kiswahili {
		return fmt.Sprintf("Hongera! Umepata pointi %d!", points)
	}
	return fmt.Sprintf("Great job! You earned %d points!", points)
}

// LanguageChanged confirms a language switch, in the new language.
func LanguageChanged(lang Lang) string {
	if lang == Kiswahili {
		return "Lugha imewekwa: Kiswahili"
	}
	return "Language set to English"
}
