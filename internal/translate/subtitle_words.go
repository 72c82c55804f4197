package translate

// SubtitleWords covers the vocabulary of the canned video captions. Each
// entry carries an example sentence shown under the definition.
var SubtitleWords = []WordTranslation{
	{Word: "welcome", Translation: "欢迎", Definition: "An instance or manner of greeting someone.", Example: "Welcome to our tutorial on modern web development."},
	{Word: "video", Translation: "视频", Definition: "A recording of moving visual images.", Example: "This is the first video on YouTube!"},
	{Word: "today", Translation: "今天", Definition: "On or in the course of this present day.", Example: "Today we're going to learn about React."},
	{Word: "learn", Translation: "学习", Definition: "Gain knowledge of or skill in something by study or experience.", Example: "We learn a new word every day."},
	{Word: "about", Translation: "关于", Definition: "On the subject of; concerning.", Example: "I'm going to be talking about the world."},
	{Word: "react", Translation: "React", Definition: "A JavaScript library for building user interfaces.", Example: "React is widely used today."},
	{Word: "is", Translation: "是", Definition: "Third person singular present of be.", Example: "This is my friend."},
	{Word: "a", Translation: "一个", Definition: "Used when referring to someone or something for the first time.", Example: "React is a library."},
	{Word: "javascript", Translation: "JavaScript", Definition: "A programming language used to make web pages interactive.", Example: "React is a JavaScript library."},
	{Word: "library", Translation: "库", Definition: "A collection of reusable code that programs can call.", Example: "React is a library for building user interfaces."},
	{Word: "for", Translation: "用于", Definition: "Having the purpose of.", Example: "A library for building user interfaces."},
	{Word: "building", Translation: "构建", Definition: "The process of making or constructing something.", Example: "Building user interfaces takes practice."},
	{Word: "user", Translation: "用户", Definition: "A person who uses or operates something, especially a computer.", Example: "Every user sees the same page."},
	{Word: "interfaces", Translation: "界面", Definition: "Points where a person and a computer system meet and interact.", Example: "React builds user interfaces."},
	{Word: "everyone", Translation: "大家", Definition: "Every person.", Example: "Hello everyone!"},
	{Word: "tutorial", Translation: "教程", Definition: "A lesson that explains how to do something step by step.", Example: "Welcome to our tutorial."},
	{Word: "modern", Translation: "现代的", Definition: "Relating to the present or recent times.", Example: "Modern web development moves quickly."},
	{Word: "web", Translation: "网络", Definition: "The World Wide Web.", Example: "She builds web applications."},
	{Word: "ecosystem", Translation: "生态系统", Definition: "A network of related tools and projects around a technology.", Example: "React and its ecosystem."},
	{Word: "developed", Translation: "开发", Definition: "Created or built over a period of time.", Example: "It was developed by Facebook."},
	{Word: "widely", Translation: "广泛地", Definition: "Over a wide area or range.", Example: "It is widely used today."},
	{Word: "used", Translation: "使用", Definition: "Put into service; employed.", Example: "It is widely used today."},
	{Word: "friend", Translation: "朋友", Definition: "A person one knows well and likes.", Example: "This is my friend!"},
	{Word: "first", Translation: "第一", Definition: "Coming before all others in time or order.", Example: "This is the first video on YouTube!"},
	{Word: "things", Translation: "事情", Definition: "Objects, facts, or events that are not named.", Example: "All sorts of things happen in the world."},
}
