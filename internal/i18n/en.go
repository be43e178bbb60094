package i18n

// EnMessages English message catalog
var EnMessages = map[string]string{
	// Header / footer
	"header.title":  "MISSION CONTROL DASHBOARD",
	"header.status": "SYSTEM STATUS: ONLINE",

	// Panel titles
	"panel.todo":    "To-Do List",
	"panel.time":    "Current Time",
	"panel.date":    "Date",
	"panel.system":  "System Info",
	"panel.weather": "Weather",
	"panel.quote":   "Quote of the Day",
	"panel.fact":    "Fun Fact",
	"panel.compass": "Compass",

	// To-do
	"todo.placeholder": "Add a new task...",
	"todo.empty":       "No tasks yet!",
	"todo.remaining":   "%d remaining",

	// Weather
	"weather.placeholder": "Enter city...",
	"weather.loading":     "Loading...",
	"weather.error":       "Could not fetch weather.",
	"weather.city":        "City: %s",

	// Quote
	"quote.loading":  "Loading...",
	"quote.error":    "Could not fetch quote.",
	"quote.fallback": "offline quote",

	// System info
	"system.browser": "Browser",
	"system.os":      "OS",
	"system.screen":  "Screen",
	"system.uptime":  "Uptime",

	// Date / compass
	"date.day":          "Day",
	"compass.heading":   "Heading",
	"compass.sensor":    "sensor",
	"compass.synthetic": "simulated",

	// Weekdays, indexed like time.Weekday
	"day.0": "Sunday",
	"day.1": "Monday",
	"day.2": "Tuesday",
	"day.3": "Wednesday",
	"day.4": "Thursday",
	"day.5": "Friday",
	"day.6": "Saturday",

	// Key bindings (help line)
	"key.focus":  "switch focus",
	"key.submit": "add / set / toggle",
	"key.toggle": "toggle task",
	"key.remove": "remove task",
	"key.up":     "up",
	"key.down":   "down",
	"key.help":   "help",
	"key.quit":   "quit",

	// Help overlay (markdown)
	"help.title": "Keyboard shortcuts",
	"help.body": `# Keyboard shortcuts

| Key | Action |
|-----|--------|
| tab | cycle focus: task input, task list, city input |
| enter | add task, set city, or toggle selected task |
| space | toggle selected task |
| d / delete | remove selected task |
| j / k, ↑ / ↓ | move selection |
| ? | show or hide this help |
| ctrl+c | quit |

Tasks live only for this session.`,

	// Plain mode
	"plain.banner": "Mission Control (plain mode). Type 'help' for commands.",
	"plain.help": `Commands:
  add <text>     add a task
  toggle <n>     toggle task n
  rm <n>         remove task n
  list           list tasks
  city <name>    change weather city
  weather        show weather
  quote          show quote
  status         show clock, uptime, compass and system info
  help           show this help
  quit           exit`,
	"plain.unknown":      "Unknown command: %s",
	"plain.usage":        "Usage: %s",
	"plain.bad_index":    "No task #%s",
	"plain.added":        "Added: %s",
	"plain.removed":      "Removed: %s",
	"plain.toggled":      "Task #%d: %s",
	"plain.done":         "done",
	"plain.open":         "open",
	"plain.city_pending": "Fetching weather for %s...",
	"plain.city_same":    "Already showing %s",
	"plain.bye":          "Goodbye.",
}
