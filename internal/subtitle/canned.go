package subtitle

// CannedSubtitles is served when no caption source answers for a known id.
var CannedSubtitles = map[string][]Entry{
	"jNQXAC9IVRw": {
		{StartTime: 0, Duration: 3, Text: "Hi guys, this is my friend!"},
		{StartTime: 3, Duration: 4, Text: "This is the first video on YouTube!"},
		{StartTime: 7, Duration: 3, Text: "I'm going to be talking about..."},
		{StartTime: 10, Duration: 4, Text: "All sorts of things that happen in the world."},
		{StartTime: 14, Duration: 3, Text: "So, I hope you enjoy it!"},
	},
	"9IiTdSnmS7E": {
		{StartTime: 0, Duration: 3, Text: "Hello everyone!"},
		{StartTime: 3, Duration: 5, Text: "Welcome to our tutorial on modern web development."},
		{StartTime: 8, Duration: 6, Text: "Today we're going to learn about React and its ecosystem."},
		{StartTime: 14, Duration: 5, Text: "React is a JavaScript library for building user interfaces."},
		{StartTime: 19, Duration: 4, Text: "It was developed by Facebook and is widely used today."},
	},
}
