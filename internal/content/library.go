package content

// Library is the read-only story collection surfaced to screens.
type Library struct {
	stories []Story
}

// NewLibrary creates a Library over the given stories.
func NewLibrary(stories []Story) *Library {
	l := &Library{stories: make([]Story, len(stories))}
	copy(l.stories, stories)
	return l
}

// All returns every story in seed order.
func (l *Library) All() []Story {
	out := make([]Story, len(l.stories))
	copy(out, l.stories)
	return out
}

// Get returns the story with the given id.
func (l *Library) Get(id int) (Story, bool) {
	for _, s := range l.stories {
		if s.ID == id {
			return s, true
		}
	}
	return Story{}, false
}

// Assigned returns the stories assigned to students, in seed order.
func (l *Library) Assigned() []Story {
	var out []Story
	for _, s := range l.stories {
		if s.Assigned {
			out = append(out, s)
		}
	}
	return out
}

// ForLevel returns the stories at the given difficulty level.
func (l *Library) ForLevel(level int) []Story {
	var out []Story
	for _, s := range l.stories {
		if s.Level == level {
			out = append(out, s)
		}
	}
	return out
}
