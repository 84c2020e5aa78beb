package content

import "strings"

// PlaceholderImage replaces media references that are missing.
const PlaceholderImage = "/static/placeholder.svg"

// Degree is an education entry.
type Degree struct {
	Title       string
	Institution string
}

// Project is a portfolio project card.
type Project struct {
	ID          int
	Title       string
	Description string
	Tags        []string
	Image       string
	GitHub      string
	Demo        string
}

// Skill is one skill with a 1-5 proficiency level.
type Skill struct {
	Name  string
	Icon  string
	Level int
	Color string
}

// Bars returns MaxLevel flags, true for every filled bar.
func (s Skill) Bars() []bool {
	bars := make([]bool, MaxLevel)
	for i := range bars {
		bars[i] = i < s.Level
	}
	return bars
}

// MaxLevel is the top of the skill scale.
const MaxLevel = 5

// SkillCategory groups skills under a tab.
type SkillCategory struct {
	Name   string
	Skills []Skill
}

// Slug returns the category name as an element id fragment.
func (c SkillCategory) Slug() string {
	return strings.ToLower(strings.ReplaceAll(c.Name, " ", "-"))
}

// Achievement is an award or certification.
type Achievement struct {
	ID          int
	Title       string
	Description string
	Icon        string
	Year        string
}

// Link is an outbound or in-page link.
type Link struct {
	Label string
	URL   string
	Icon  string
}

// ImageOr returns src, or the placeholder asset when src is empty.
func ImageOr(src string) string {
	if strings.TrimSpace(src) == "" {
		return PlaceholderImage
	}
	return src
}

var Projects = []Project{
	{
		ID:          1,
		Title:       "Eco-Navigator",
		Description: "AI-powered lifestyle tracker that provides eco-friendly recommendations and helps users reduce their carbon footprint. Features OAuth authentication and cloud-based storage.",
		Tags:        []string{"React", "Node.js", "AI", "MongoDB", "OAuth"},
		GitHub:      "https://github.com/akshat-bansal",
		Demo:        "https://eco-navigator.example.com",
	},
	{
		ID:          2,
		Title:       "Gaming Website",
		Description: "An interactive gaming platform built with responsive design principles, allowing users to discover and engage with different games.",
		Tags:        []string{"HTML", "CSS", "JavaScript", "Node.js"},
		GitHub:      "https://github.com/akshat-bansal",
		Demo:        "https://gaming.example.com",
	},
	{
		ID:          3,
		Title:       "Portfolio Website",
		Description: "A modern portfolio website (this site) built with Go, Gin and htmx to showcase my projects and skills.",
		Tags:        []string{"Go", "Gin", "htmx"},
		GitHub:      "https://github.com/akshat-bansal",
	},
}

var SkillCategories = []SkillCategory{
	{Name: "Frontend", Skills: []Skill{
		{Name: "React.js", Icon: "⚛️", Level: 5, Color: "text-blue-500"},
		{Name: "HTML5", Icon: "🌐", Level: 5},
		{Name: "CSS3", Icon: "🎨", Level: 4},
		{Name: "JavaScript", Icon: "📜", Level: 5, Color: "text-yellow-500"},
		{Name: "TypeScript", Icon: "🔷", Level: 4},
		{Name: "Tailwind CSS", Icon: "🌊", Level: 4, Color: "text-cyan-500"},
	}},
	{Name: "Backend", Skills: []Skill{
		{Name: "Node.js", Icon: "🟢", Level: 5, Color: "text-green-500"},
		{Name: "Express.js", Icon: "🔄", Level: 4},
		{Name: "RESTful APIs", Icon: "🔌", Level: 5},
		{Name: "GraphQL", Icon: "◢", Level: 3, Color: "text-pink-500"},
	}},
	{Name: "Database", Skills: []Skill{
		{Name: "MongoDB", Icon: "🍃", Level: 5, Color: "text-green-600"},
		{Name: "SQL", Icon: "💾", Level: 4},
		{Name: "Redis", Icon: "🔴", Level: 3, Color: "text-red-500"},
	}},
	{Name: "Cloud", Skills: []Skill{
		{Name: "AWS", Icon: "☁️", Level: 4, Color: "text-orange-500"},
		{Name: "Docker", Icon: "🐳", Level: 4, Color: "text-blue-500"},
		{Name: "CI/CD", Icon: "🔄", Level: 3},
	}},
	{Name: "Tools", Skills: []Skill{
		{Name: "Git", Icon: "📊", Level: 5},
		{Name: "GitHub", Icon: "🐙", Level: 5},
		{Name: "Firebase", Icon: "🔥", Level: 4, Color: "text-yellow-600"},
		{Name: "VS Code", Icon: "📝", Level: 5, Color: "text-blue-500"},
	}},
}

var Achievements = []Achievement{
	{ID: 1, Title: "Toastmasters Leadership Role", Icon: "award", Year: "2022",
		Description: "Held a leadership position in the university Toastmasters club, organizing events and mentoring new members."},
	{ID: 2, Title: "Entrepreneurship Cell Committee", Icon: "trophy", Year: "2021-2022",
		Description: "Active member of the university's Entrepreneurship Cell, helping organize startup events and workshops."},
	{ID: 3, Title: "AWS Cloud Practitioner Certification", Icon: "medal", Year: "2023",
		Description: "Earned AWS Certified Cloud Practitioner certification, demonstrating knowledge of AWS Cloud services."},
	{ID: 4, Title: "University Project Recognition", Icon: "book", Year: "2022",
		Description: "Received recognition for key university project implementing innovative solutions for real-world problems."},
}

// Contact details shown in the contact section and footer.
var (
	Email    = "akshatbansal04@gmail.com"
	Phone    = "+91 8219890171"
	Location = "Baddi, Himachal Pradesh, India"
	WhatsApp = "https://wa.me/918219890171"
	GitHub   = "https://github.com/Akshat0071"
)

var SocialLinks = []Link{
	{Label: "LinkedIn Profile", URL: "https://www.linkedin.com/in/akshat-bansal04/", Icon: "linkedin"},
	{Label: "GitHub Profile", URL: GitHub, Icon: "github"},
	{Label: "X (Twitter) Profile", URL: "https://x.com/home", Icon: "twitter"},
}

// SameAs lists the profiles published in structured data.
var SameAs = []string{
	"https://github.com/Akshat0071",
	"https://linkedin.com/in/akshatbansal-dev",
	"https://twitter.com/AkshatBansal",
}

var QuickLinks = []Link{
	{Label: "About Me", URL: "#about"},
	{Label: "Projects", URL: "#projects"},
	{Label: "Skills", URL: "#skills"},
	{Label: "Achievements", URL: "#achievements"},
	{Label: "Contact", URL: "#contact"},
}
