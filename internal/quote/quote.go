package quote

// Quote 一条名言，获取后不可变，整体替换
// Quote is immutable once fetched and replaced wholesale on refetch
type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Valid reports whether both fields are present.
func (q Quote) Valid() bool {
	return q.Content != "" && q.Author != ""
}

// DefaultFallback 返回内置的 15 条备用名言（每次返回新切片）
// DefaultFallback returns the 15 bundled fallback quotes as a fresh slice
func DefaultFallback() []Quote {
	return []Quote{
		{Content: "Success is not final, failure is not fatal: It is the courage to continue that counts.", Author: "Winston Churchill"},
		{Content: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
		{Content: "You miss 100% of the shots you don’t take.", Author: "Wayne Gretzky"},
		{Content: "Whether you think you can or you think you can’t, you’re right.", Author: "Henry Ford"},
		{Content: "The best time to plant a tree was 20 years ago. The second best time is now.", Author: "Chinese Proverb"},
		{Content: "Do what you can, with what you have, where you are.", Author: "Theodore Roosevelt"},
		{Content: "Believe you can and you’re halfway there.", Author: "Theodore Roosevelt"},
		{Content: "Act as if what you do makes a difference. It does.", Author: "William James"},
		{Content: "Happiness is not something ready made. It comes from your own actions.", Author: "Dalai Lama"},
		{Content: "Opportunities don't happen. You create them.", Author: "Chris Grosser"},
		{Content: "Don’t watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
		{Content: "Everything you’ve ever wanted is on the other side of fear.", Author: "George Addair"},
		{Content: "Dream big and dare to fail.", Author: "Norman Vaughan"},
		{Content: "It always seems impossible until it’s done.", Author: "Nelson Mandela"},
		{Content: "Start where you are. Use what you have. Do what you can.", Author: "Arthur Ashe"},
	}
}
