package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask        string `yaml:"add_task"`
	EditTask       string `yaml:"edit_task"`
	DeleteTask     string `yaml:"delete_task"`
	TogglePriority string `yaml:"toggle_priority"`
	UndoDelete     string `yaml:"undo_delete"`

	// View
	CycleFilter string `yaml:"cycle_filter"`
	ToggleSort  string `yaml:"toggle_sort"`

	// Navigation
	PrevTask string `yaml:"prev_task"`
	NextTask string `yaml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:        "a",
		EditTask:       "e",
		DeleteTask:     "d",
		TogglePriority: "p",
		UndoDelete:     "u",

		// View
		CycleFilter: "f",
		ToggleSort:  "s",

		// Navigation
		PrevTask: "k",
		NextTask: "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.EditTask == "" {
		k.EditTask = defaults.EditTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.TogglePriority == "" {
		k.TogglePriority = defaults.TogglePriority
	}
	if k.UndoDelete == "" {
		k.UndoDelete = defaults.UndoDelete
	}
	if k.CycleFilter == "" {
		k.CycleFilter = defaults.CycleFilter
	}
	if k.ToggleSort == "" {
		k.ToggleSort = defaults.ToggleSort
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
